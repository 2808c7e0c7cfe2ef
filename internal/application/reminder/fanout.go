package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// MerchantLister comercios con ventas vencidas desde since.
type MerchantLister interface {
	ListMerchantsWithOverdue(ctx context.Context, since time.Time) ([]string, error)
}

// BatchResult resultado del lote de un comercio.
type BatchResult struct {
	MerchantID string
	Sent       int
	Err        error
}

// SendAll corre SendBatch para cada comercio con ventas vencidas en la ventana,
// con a lo sumo limit comercios en paralelo (limit <= 0 = sin tope).
// El error de un comercio queda en su BatchResult y no detiene a los demás;
// solo falla la llamada si no se pudo obtener la lista de comercios.
func (d *Dispatcher) SendAll(ctx context.Context, merchants MerchantLister, limit int) ([]BatchResult, error) {
	ids, err := merchants.ListMerchantsWithOverdue(ctx, d.now().Add(-OverdueWindow))
	if err != nil {
		return nil, fmt.Errorf("listar comercios con ventas vencidas: %w", err)
	}

	results := make([]BatchResult, len(ids))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, id := range ids {
		g.Go(func() error {
			sent, err := d.SendBatch(gctx, id)
			mu.Lock()
			results[i] = BatchResult{MerchantID: id, Sent: sent, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}
