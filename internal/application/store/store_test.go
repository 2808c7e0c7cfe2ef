package store_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/application/store"
	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const (
	merchantA = "merchant-a"
	merchantB = "merchant-b"
)

var errBackend = errors.New("backend caído")

// fakeCustomers repositorio en memoria que respeta el filtro por comercio.
type fakeCustomers struct {
	mu        sync.Mutex
	rows      []entity.Customer
	seq       int
	failList  bool
	failWrite bool
	lastQuery repository.ListQuery
}

func (f *fakeCustomers) List(_ context.Context, merchantID string, q repository.ListQuery) ([]entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q
	if f.failList {
		return nil, errBackend
	}
	var out []entity.Customer
	for _, r := range f.rows {
		if r.MerchantID == merchantID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCustomers) Create(_ context.Context, merchantID string, c *entity.Customer) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return nil, errBackend
	}
	f.seq++
	row := *c
	row.ID = string(rune('0' + f.seq))
	row.MerchantID = merchantID
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeCustomers) Update(_ context.Context, merchantID, id string, p entity.CustomerPatch) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return 0, errBackend
	}
	var n int64
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].MerchantID == merchantID {
			if p.Name != nil {
				f.rows[i].Name = *p.Name
			}
			if p.Phone != nil {
				f.rows[i].Phone = *p.Phone
			}
			n++
		}
	}
	return n, nil
}

func (f *fakeCustomers) Delete(_ context.Context, merchantID, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return 0, errBackend
	}
	kept := f.rows[:0]
	var n int64
	for _, r := range f.rows {
		if r.ID == id && r.MerchantID == merchantID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return n, nil
}

// recorder Notifier que guarda los avisos.
type recorder struct {
	got []ports.Notification
}

func (r *recorder) Notify(n ports.Notification) { r.got = append(r.got, n) }

func (r *recorder) last() ports.Notification {
	if len(r.got) == 0 {
		return ports.Notification{}
	}
	return r.got[len(r.got)-1]
}

func newStore(repo *fakeCustomers, merchantID string) (*store.CustomerStore, *recorder) {
	rec := &recorder{}
	return store.NewCustomerStore(repo, rec, merchantID), rec
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Reload
// ──────────────────────────────────────────────────────────────────────────────

func TestReload_SinFilasNoEsError(t *testing.T) {
	s, rec := newStore(&fakeCustomers{}, merchantA)

	require.NoError(t, s.Reload(context.Background()))
	assert.Empty(t, s.Items())
	assert.NotNil(t, s.Items(), "lista vacía, no nil")
	assert.Empty(t, rec.got, "una lista vacía no genera avisos")
}

func TestReload_ErrorDeLecturaSeNotificaYDevuelve(t *testing.T) {
	s, rec := newStore(&fakeCustomers{failList: true}, merchantA)

	err := s.Reload(context.Background())
	require.ErrorIs(t, err, errBackend)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "Error Fetching Customer List", rec.last().Title)
	assert.Equal(t, ports.SeverityError, rec.last().Severity)
	assert.False(t, s.Loading().Fetch)
}

func TestReload_SoloFilasDelComercio(t *testing.T) {
	repo := &fakeCustomers{rows: []entity.Customer{
		{ID: "1", MerchantID: merchantA, Name: "Zoe"},
		{ID: "2", MerchantID: merchantB, Name: "Ajena"},
		{ID: "3", MerchantID: merchantA, Name: "Ana"},
	}}
	s, _ := newStore(repo, merchantA)

	require.NoError(t, s.Reload(context.Background()))
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Ana", items[0].Name, "orden por nombre")
	assert.Equal(t, "Zoe", items[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ExitoRecargaYNotifica(t *testing.T) {
	repo := &fakeCustomers{}
	s, rec := newStore(repo, merchantA)

	created, err := s.Create(context.Background(), &entity.Customer{Name: "Ana", Phone: "+15550001"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, merchantA, created.MerchantID, "el dueño lo fija el store, no el llamador")

	items := s.Items()
	require.Len(t, items, 1, "la lista refleja el backend tras la recarga")
	assert.Equal(t, "Ana", items[0].Name)
	assert.Equal(t, "Customer Created Successfully!", rec.last().Title)
	assert.Equal(t, ports.SeveritySuccess, rec.last().Severity)
	assert.False(t, s.Loading().Save)
}

func TestCreate_FalloDejaLaListaIntacta(t *testing.T) {
	repo := &fakeCustomers{rows: []entity.Customer{{ID: "1", MerchantID: merchantA, Name: "Ana"}}}
	s, rec := newStore(repo, merchantA)
	require.NoError(t, s.Reload(context.Background()))

	repo.failWrite = true
	created, err := s.Create(context.Background(), &entity.Customer{Name: "Beto"})
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Len(t, s.Items(), 1)
	assert.Equal(t, "Error While Adding Customer", rec.last().Title)
}

func TestUpdate_IdDeOtroComercioAfectaCeroFilas(t *testing.T) {
	repo := &fakeCustomers{rows: []entity.Customer{{ID: "9", MerchantID: merchantB, Name: "Ajena"}}}
	s, rec := newStore(repo, merchantA)

	err := s.Update(context.Background(), "9", entity.CustomerPatch{Name: ptr("Hackeada")})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Ajena", repo.rows[0].Name, "la fila ajena no cambia")
	assert.Equal(t, "Error Updating Customer", rec.last().Title)
}

func TestUpdate_ExitoRecarga(t *testing.T) {
	repo := &fakeCustomers{rows: []entity.Customer{{ID: "1", MerchantID: merchantA, Name: "Ana"}}}
	s, rec := newStore(repo, merchantA)

	require.NoError(t, s.Update(context.Background(), "1", entity.CustomerPatch{Phone: ptr("+15550009")}))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "+15550009", s.Items()[0].Phone)
	assert.Equal(t, "Customer Updated Successfully!", rec.last().Title)
}

func TestUpdate_IdVacioEsEntradaInvalida(t *testing.T) {
	s, rec := newStore(&fakeCustomers{}, merchantA)
	err := s.Update(context.Background(), "", entity.CustomerPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, ports.SeverityError, rec.last().Severity)
}

func TestDelete_ExitoYFallo(t *testing.T) {
	repo := &fakeCustomers{rows: []entity.Customer{
		{ID: "1", MerchantID: merchantA, Name: "Ana"},
		{ID: "2", MerchantID: merchantB, Name: "Ajena"},
	}}
	s, rec := newStore(repo, merchantA)

	require.NoError(t, s.Delete(context.Background(), "1"))
	assert.Empty(t, s.Items())
	assert.Equal(t, "Customer deleted successfully!", rec.last().Title)

	err := s.Delete(context.Background(), "2")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.rows, 1, "la fila de otro comercio sigue ahí")
	assert.Equal(t, "Error deleting customer", rec.last().Title)
}

func TestCadaMutacionNotificaUnaVez(t *testing.T) {
	repo := &fakeCustomers{}
	s, rec := newStore(repo, merchantA)
	ctx := context.Background()

	c, err := s.Create(ctx, &entity.Customer{Name: "Ana"})
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, c.ID, entity.CustomerPatch{Name: ptr("Ana María")}))
	require.NoError(t, s.Delete(ctx, c.ID))

	assert.Len(t, rec.got, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración por entidad
// ──────────────────────────────────────────────────────────────────────────────

type fakeSales struct {
	repository.CreditSaleRepository
	lastQuery repository.ListQuery
}

func (f *fakeSales) List(_ context.Context, _ string, q repository.ListQuery) ([]entity.CreditSale, error) {
	f.lastQuery = q
	return nil, nil
}

func TestCreditSaleStore_PasaElLimite(t *testing.T) {
	repo := &fakeSales{}
	s := store.NewCreditSaleStore(repo, nil, merchantA, 5)

	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, 5, repo.lastQuery.Limit)
	assert.Empty(t, s.Items())
}
