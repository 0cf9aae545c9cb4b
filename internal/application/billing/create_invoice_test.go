package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorcel/doctorcel-api/internal/application/billing"
	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct{ byID map[string]*entity.Client }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.byID[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.byID[id], nil
}
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error                    { return nil }

type fakeWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.byID[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}
func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error   { return nil }
func (r *fakeWarehouseRepo) Delete(id string) error             { return nil }

type fakeCompanyRepo struct{ byID map[string]*entity.Company }

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.byID[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.byID[id], nil
}
func (r *fakeCompanyRepo) GetFirst() (*entity.Company, error) {
	for _, c := range r.byID {
		return c, nil
	}
	return nil, nil
}
func (r *fakeCompanyRepo) Update(c *entity.Company) error { return nil }

type fakeArticleRepo struct {
	byID map[string]*entity.Article
}

func (r *fakeArticleRepo) Create(a *entity.Article) error { r.byID[a.ID] = a; return nil }
func (r *fakeArticleRepo) GetByID(id string) (*entity.Article, error) {
	return r.byID[id], nil
}
func (r *fakeArticleRepo) List(limit, offset int) ([]*entity.Article, error) { return nil, nil }
func (r *fakeArticleRepo) CountByCategory(categoryID string) (int, error)    { return 0, nil }
func (r *fakeArticleRepo) Update(a *entity.Article) error                    { return nil }
func (r *fakeArticleRepo) IncrementSold(id string, quantity int) error {
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Sold += quantity
	return nil
}
func (r *fakeArticleRepo) Delete(id string) error { return nil }

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    []*entity.InvoiceItem
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}
func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items = append(r.items, item)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}
func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) { return nil, nil }

// fakeTxRunner ejecuta fn directamente sobre los fakes. Registra cuántas
// veces se abrió "transacción" para verificar que la validación corta antes.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	articleRepo *fakeArticleRepo
	runs        int
	failWith    error
}

func (t *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	articleRepo repository.ArticleRepository,
) error) error {
	t.runs++
	if t.failWith != nil {
		return t.failWith
	}
	return fn(t.invoiceRepo, t.articleRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type billingFixture struct {
	uc          *billing.CreateInvoiceUseCase
	txRunner    *fakeTxRunner
	invoiceRepo *fakeInvoiceRepo
	articleRepo *fakeArticleRepo
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	clientRepo := &fakeClientRepo{byID: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", Name: "Juan Pérez", Active: true},
	}}
	warehouseRepo := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{
		"wh-1": {ID: "wh-1", Name: "Sede Centro"},
	}}
	companyRepo := &fakeCompanyRepo{byID: map[string]*entity.Company{
		"co-1": {ID: "co-1", Name: "Doctor Cel"},
	}}
	articleRepo := &fakeArticleRepo{byID: map[string]*entity.Article{
		"art-1": {ID: "art-1", Name: "Pantalla iPhone 12", Price: decimal.NewFromInt(250000)},
		"art-2": {ID: "art-2", Name: "Batería Samsung A54", Price: decimal.NewFromInt(90000)},
	}}
	invoiceRepo := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	txRunner := &fakeTxRunner{invoiceRepo: invoiceRepo, articleRepo: articleRepo}

	uc := billing.NewCreateInvoiceUseCase(
		txRunner, clientRepo, companyRepo, warehouseRepo, articleRepo, invoiceRepo,
	)
	return &billingFixture{uc: uc, txRunner: txRunner, invoiceRepo: invoiceRepo, articleRepo: articleRepo}
}

func validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:    "cli-1",
		WarehouseID: "wh-1",
		ClientName:  "Juan Pérez",
		Items: []dto.InvoiceItemRequest{
			{ArticleID: "art-1", Quantity: 2, Price: decimal.NewFromInt(250000)},
			{ArticleID: "art-2", Quantity: 1, Price: decimal.NewFromInt(90000), Discount: decimal.NewFromInt(10000)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: la factura se crea con sus líneas, subtotales calculados en el
// servidor y el contador de ventas de cada artículo incrementado.
func TestCreateInvoice_CaminoFeliz(t *testing.T) {
	f := newBillingFixture(t)

	resp, err := f.uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	// subtotales: 2×250000 = 500000 y 1×90000 − 10000 = 80000
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.NewFromInt(500000)),
		"subtotal de la primera línea: %s", resp.Items[0].Subtotal)
	assert.True(t, resp.Items[1].Subtotal.Equal(decimal.NewFromInt(80000)),
		"subtotal de la segunda línea: %s", resp.Items[1].Subtotal)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(580000)),
		"total: %s", resp.Total)

	// persistencia: cabecera + 2 líneas, contadores de venta actualizados
	assert.Len(t, f.invoiceRepo.invoices, 1)
	assert.Len(t, f.invoiceRepo.items, 2)
	assert.Equal(t, 2, f.articleRepo.byID["art-1"].Sold)
	assert.Equal(t, 1, f.articleRepo.byID["art-2"].Sold)
}

// Si el ítem no trae nombre se copia el del artículo del catálogo.
func TestCreateInvoice_NombreDeLineaPorDefecto(t *testing.T) {
	f := newBillingFixture(t)

	in := validRequest()
	in.Items = in.Items[:1]
	in.Items[0].Name = ""
	resp, err := f.uc.CreateInvoice(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Pantalla iPhone 12", resp.Items[0].Name)
}

// La validación de forma recolecta TODOS los errores del payload y no escribe nada.
func TestCreateInvoice_ValidacionRecolectaTodosLosErrores(t *testing.T) {
	f := newBillingFixture(t)

	in := dto.CreateInvoiceRequest{
		// sin client_id ni warehouse_id
		Items: []dto.InvoiceItemRequest{
			{ArticleID: "", Quantity: 0, Price: decimal.Zero},
		},
	}
	_, err := f.uc.CreateInvoice(context.Background(), in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Details, 5, "debe reportar cada campo que falla: %v", verr.Details)
	assert.Contains(t, verr.Details, "client_id es requerido")
	assert.Contains(t, verr.Details, "warehouse_id es requerido")

	assert.Zero(t, f.txRunner.runs, "con errores de validación no debe abrirse transacción")
	assert.Empty(t, f.invoiceRepo.invoices)
}

// Referencias inexistentes se acumulan como mensajes distintos, uno por id.
func TestCreateInvoice_ReferenciasNoEncontradasSeAcumulan(t *testing.T) {
	f := newBillingFixture(t)

	in := validRequest()
	in.ClientID = "cli-fantasma"
	in.Items[0].ArticleID = "art-fantasma"
	_, err := f.uc.CreateInvoice(context.Background(), in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details, "cliente no encontrado: cli-fantasma")
	assert.Contains(t, verr.Details, "artículo no encontrado: art-fantasma")

	assert.Zero(t, f.txRunner.runs)
	assert.Zero(t, f.articleRepo.byID["art-2"].Sold,
		"ningún contador debe moverse si una referencia falla")
}

// Un total declarado que no cuadra con la suma de subtotales se rechaza.
func TestCreateInvoice_TotalQueNoCuadraSeRechaza(t *testing.T) {
	f := newBillingFixture(t)

	in := validRequest()
	in.Total = decimal.NewFromInt(999)
	_, err := f.uc.CreateInvoice(context.Background(), in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, f.txRunner.runs)
}

// Un descuento mayor que qty×price dejaría subtotal negativo: se rechaza.
func TestCreateInvoice_SubtotalNegativoSeRechaza(t *testing.T) {
	f := newBillingFixture(t)

	in := validRequest()
	in.Items = []dto.InvoiceItemRequest{
		{ArticleID: "art-2", Quantity: 1, Price: decimal.NewFromInt(90000), Discount: decimal.NewFromInt(100000)},
	}
	_, err := f.uc.CreateInvoice(context.Background(), in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.invoiceRepo.invoices)
}

// Si la transacción falla el error sube sin respuesta parcial.
func TestCreateInvoice_ErrorDeTransaccionSePropaga(t *testing.T) {
	f := newBillingFixture(t)
	f.txRunner.failWith = errors.New("deadlock detectado")

	resp, err := f.uc.CreateInvoice(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 1, f.txRunner.runs)
}

// No hay idempotencia: el mismo payload dos veces produce dos facturas con
// ids distintos y los contadores de venta suman dos veces.
func TestCreateInvoice_EnvioDuplicadoCreaDosFacturas(t *testing.T) {
	f := newBillingFixture(t)

	first, err := f.uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := f.uc.CreateInvoice(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.invoiceRepo.invoices, 2)
	assert.Equal(t, 4, f.articleRepo.byID["art-1"].Sold)
}

// GetInvoice devuelve ErrNotFound para un id inexistente.
func TestGetInvoice_NoExiste(t *testing.T) {
	f := newBillingFixture(t)

	_, err := f.uc.GetInvoice(context.Background(), "inv-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
