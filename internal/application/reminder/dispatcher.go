// Package reminder envía recordatorios de pago por SMS para ventas a crédito vencidas
// y deja constancia de cada intento en la bitácora de recordatorios.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// OverdueWindow ventana fija del modo batch: solo ventas vencidas hace menos de 7 días.
const OverdueWindow = 7 * 24 * time.Hour

// SaleSource lectura de ventas a crédito con nombre y teléfono del cliente.
type SaleSource interface {
	ListOverdueSince(ctx context.Context, merchantID string, since time.Time) ([]entity.CreditSale, error)
	GetByID(ctx context.Context, merchantID, id string) (*entity.CreditSale, error)
}

// SettingsReader lectura de store_settings. (nil, nil) si no hay fila.
type SettingsReader interface {
	GetByMerchant(ctx context.Context, merchantID string) (*entity.StoreSettings, error)
}

// ReminderLog bitácora append-only.
type ReminderLog interface {
	Append(ctx context.Context, reminder *entity.Reminder) error
}

// ProviderError rechazo del proveedor de mensajería. Message es el texto del proveedor.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "no se pudo enviar el recordatorio"
	}
	return e.Message
}

// Unwrap permite errors.Is(err, domain.ErrProviderFailure) y llegar al error original.
func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrProviderFailure}
	}
	return []error{domain.ErrProviderFailure, e.Err}
}

// Dispatcher compone y envía recordatorios. Los envíos son secuenciales y sin reintentos.
type Dispatcher struct {
	sales     SaleSource
	settings  SettingsReader
	reminders ReminderLog
	sender    ports.MessageSender
	from      string
	now       func() time.Time
	log       zerolog.Logger
}

// Option configura un Dispatcher.
type Option func(*Dispatcher)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithLogger asigna el logger.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// NewDispatcher construye el dispatcher. from es el número remitente del proveedor.
func NewDispatcher(sales SaleSource, settings SettingsReader, reminders ReminderLog, sender ports.MessageSender, from string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sales:     sales,
		settings:  settings,
		reminders: reminders,
		sender:    sender,
		from:      from,
		now:       time.Now,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SendBatch envía un recordatorio por cada venta overdue del comercio con due_date dentro
// de los últimos 7 días. Un fallo del proveedor queda registrado como "failed" y no corta el lote.
// Devuelve la cantidad enviada.
func (d *Dispatcher) SendBatch(ctx context.Context, merchantID string) (int, error) {
	symbol := d.currencySymbol(ctx, merchantID)

	since := d.now().Add(-OverdueWindow)
	sales, err := d.sales.ListOverdueSince(ctx, merchantID, since)
	if err != nil {
		return 0, fmt.Errorf("listar ventas vencidas: %w", err)
	}
	if len(sales) == 0 {
		return 0, nil
	}

	sent := 0
	for i := range sales {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if d.deliver(ctx, merchantID, &sales[i], symbol) == nil {
			sent++
		}
	}
	d.log.Info().
		Str("merchant_id", merchantID).
		Int("eligible", len(sales)).
		Int("sent", sent).
		Msg("lote de recordatorios finalizado")
	return sent, nil
}

// SendSingle envía el recordatorio de una venta sin filtrar por estado ni fecha.
// Errores: ErrInvalidInput si falta saleID (sin tocar el backend), ErrNotFound si la venta
// no existe para el comercio, *ProviderError si el proveedor rechaza el envío.
func (d *Dispatcher) SendSingle(ctx context.Context, merchantID, saleID string) error {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return fmt.Errorf("%w: credit sale id requerido", domain.ErrInvalidInput)
	}
	sale, err := d.sales.GetByID(ctx, merchantID, saleID)
	if err != nil {
		return fmt.Errorf("obtener venta a crédito: %w", err)
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	symbol := d.currencySymbol(ctx, merchantID)
	return d.deliver(ctx, merchantID, sale, symbol)
}

// deliver envía el mensaje de una venta y agrega la fila de bitácora con el resultado.
// Un fallo al escribir la bitácora tras un envío exitoso solo se registra en el log.
func (d *Dispatcher) deliver(ctx context.Context, merchantID string, sale *entity.CreditSale, symbol string) error {
	body := ComposeMessage(sale, symbol)

	status := entity.ReminderSent
	var sendErr error
	sid, err := d.sender.Send(ctx, body, sale.CustomerPhone, d.from)
	if err != nil {
		status = entity.ReminderFailed
		sendErr = &ProviderError{Message: err.Error(), Err: err}
		d.log.Warn().Err(err).
			Str("merchant_id", merchantID).
			Str("credit_sale_id", sale.ID).
			Msg("envío de SMS fallido")
	} else {
		d.log.Debug().
			Str("merchant_id", merchantID).
			Str("credit_sale_id", sale.ID).
			Str("sid", sid).
			Msg("SMS enviado")
	}

	rem := &entity.Reminder{
		ID:           uuid.New().String(),
		MerchantID:   merchantID,
		CreditSaleID: sale.ID,
		Message:      body,
		Status:       status,
		CreatedAt:    d.now(),
	}
	if err := d.reminders.Append(ctx, rem); err != nil {
		d.log.Error().Err(err).
			Str("merchant_id", merchantID).
			Str("credit_sale_id", sale.ID).
			Str("status", status).
			Msg("registrar recordatorio")
	}
	return sendErr
}

// currencySymbol símbolo guardado por el comercio; "$" si no hay fila o falla la lectura.
func (d *Dispatcher) currencySymbol(ctx context.Context, merchantID string) string {
	if d.settings == nil {
		return entity.DefaultCurrencySymbol
	}
	s, err := d.settings.GetByMerchant(ctx, merchantID)
	if err != nil {
		d.log.Warn().Err(err).Str("merchant_id", merchantID).Msg("configuración de moneda no disponible, se usa $")
		return entity.DefaultCurrencySymbol
	}
	if s == nil || s.CurrencySymbol == "" {
		return entity.DefaultCurrencySymbol
	}
	return s.CurrencySymbol
}

// ComposeMessage texto del recordatorio: monto adeudado con dos decimales y fecha M/D/AAAA.
func ComposeMessage(sale *entity.CreditSale, symbol string) string {
	return fmt.Sprintf(
		"Dear %s, your payment of %s%s was due on %s. Please make the payment as soon as possible.",
		sale.CustomerName,
		symbol,
		sale.AmountDue().StringFixed(2),
		sale.DueDate.Format("1/2/2006"),
	)
}

// IsProviderError indica si err es un rechazo del proveedor y devuelve su mensaje.
func IsProviderError(err error) (string, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Error(), true
	}
	return "", false
}
