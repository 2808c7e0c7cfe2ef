package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// ReminderRepository bitácora append-only de recordatorios.
type ReminderRepository interface {
	Append(ctx context.Context, reminder *entity.Reminder) error
	ListBySale(ctx context.Context, merchantID, creditSaleID string) ([]entity.Reminder, error)
	CountSentSince(ctx context.Context, merchantID string, since time.Time) (int, error)
}
