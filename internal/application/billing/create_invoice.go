package billing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// CreateInvoiceUseCase crea una factura con sus líneas e incrementa el
// contador de ventas de cada artículo en una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner      BillingTxRunner
	clientRepo    repository.ClientRepository
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	articleRepo   repository.ArticleRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	articleRepo repository.ArticleRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:      txRunner,
		clientRepo:    clientRepo,
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		articleRepo:   articleRepo,
		invoiceRepo:   invoiceRepo,
	}
}

// validateShape revisa la forma del payload y devuelve TODOS los campos que
// fallan, no solo el primero.
func validateShape(in dto.CreateInvoiceRequest) []string {
	var details []string
	if in.ClientID == "" {
		details = append(details, "client_id es requerido")
	}
	if in.WarehouseID == "" {
		details = append(details, "warehouse_id es requerido")
	}
	if len(in.Items) == 0 {
		details = append(details, "items no puede estar vacío")
	}
	for i, item := range in.Items {
		if item.ArticleID == "" {
			details = append(details, fmt.Sprintf("items[%d]: article_id es requerido", i))
		}
		if item.Quantity <= 0 {
			details = append(details, fmt.Sprintf("items[%d]: quantity debe ser mayor que cero", i))
		}
		if !item.Price.GreaterThan(decimal.Zero) {
			details = append(details, fmt.Sprintf("items[%d]: price debe ser mayor que cero", i))
		}
		if item.Discount.LessThan(decimal.Zero) {
			details = append(details, fmt.Sprintf("items[%d]: discount no puede ser negativo", i))
		}
	}
	return details
}

// CreateInvoice valida el payload y todas las referencias antes de escribir;
// los errores se recolectan y se devuelven juntos. Solo si todo resuelve se
// abre la transacción.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if details := validateShape(in); len(details) > 0 {
		return nil, domain.NewValidationError(details...)
	}

	// Resolver cliente, empresa y bodega en paralelo; los faltantes se
	// acumulan como mensajes distintos en vez de abortar en el primero.
	var (
		mu      sync.Mutex
		details []string
		wg      sync.WaitGroup
	)
	notFound := func(msg string) {
		mu.Lock()
		details = append(details, msg)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		c, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil || c == nil {
			notFound("cliente no encontrado: " + in.ClientID)
		}
	}()
	go func() {
		defer wg.Done()
		w, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil || w == nil {
			notFound("bodega no encontrada: " + in.WarehouseID)
		}
	}()
	if in.CompanyID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := uc.companyRepo.GetByID(in.CompanyID)
			if err != nil || c == nil {
				notFound("empresa no encontrada: " + in.CompanyID)
			}
		}()
	}
	wg.Wait()

	// Resolver cada artículo; un mensaje por cada id faltante.
	articlesByID := make(map[string]*entity.Article, len(in.Items))
	for _, item := range in.Items {
		if _, ok := articlesByID[item.ArticleID]; ok {
			continue
		}
		a, err := uc.articleRepo.GetByID(item.ArticleID)
		if err != nil || a == nil {
			details = append(details, "artículo no encontrado: "+item.ArticleID)
			continue
		}
		articlesByID[item.ArticleID] = a
	}

	if len(details) > 0 {
		return nil, domain.NewValidationError(details...)
	}

	// Subtotales y total se calculan en el servidor: subtotal = qty×price − discount.
	now := time.Now()
	inv := &entity.Invoice{
		ID:             uuid.New().String(),
		ClientID:       in.ClientID,
		WarehouseID:    in.WarehouseID,
		CompanyID:      in.CompanyID,
		ClientName:     in.ClientName,
		ClientDocument: in.ClientDocument,
		Notes:          in.Notes,
		CreatedAt:      now,
	}
	items := make([]*entity.InvoiceItem, 0, len(in.Items))
	var total decimal.Decimal
	for i, item := range in.Items {
		subtotal := decimal.NewFromInt(int64(item.Quantity)).Mul(item.Price).Sub(item.Discount)
		if subtotal.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("items[%d]: el subtotal no puede ser negativo", i))
		}
		name := item.Name
		if name == "" {
			name = articlesByID[item.ArticleID].Name
		}
		items = append(items, &entity.InvoiceItem{
			ID:        uuid.New().String(),
			InvoiceID: inv.ID,
			ArticleID: item.ArticleID,
			Name:      name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  item.Discount,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	if !in.Total.IsZero() && !in.Total.Equal(total) {
		return nil, domain.NewValidationError(
			fmt.Sprintf("total %s no cuadra con la suma de subtotales %s", in.Total, total))
	}
	inv.Total = total

	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		articleRepo repository.ArticleRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
			if err := articleRepo.IncrementSold(item.ArticleID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, items), nil
}

// GetInvoice obtiene una factura por ID con sus líneas.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// ListInvoices lista facturas (sin líneas) con paginación.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, nil))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		ClientID:       inv.ClientID,
		WarehouseID:    inv.WarehouseID,
		CompanyID:      inv.CompanyID,
		ClientName:     inv.ClientName,
		ClientDocument: inv.ClientDocument,
		Notes:          inv.Notes,
		Total:          inv.Total,
		Date:           inv.CreatedAt.Format("2006-01-02"),
		Items:          make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:        it.ID,
			ArticleID: it.ArticleID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Discount:  it.Discount,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
