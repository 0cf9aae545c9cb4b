package billing

import (
	"context"

	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función con repos de factura y artículos atados
// a una misma transacción. Si fn retorna error se hace rollback: la factura,
// sus líneas y los contadores de venta cambian todos o ninguno.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		articleRepo repository.ArticleRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación gráfica de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}
