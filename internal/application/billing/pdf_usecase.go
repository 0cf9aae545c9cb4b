package billing

import (
	"context"

	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
	"github.com/doctorcel/doctorcel-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica de una factura ya creada.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo, generator: generator}
}

// GenerateInvoicePDF arma el contexto (factura, líneas, emisor) y delega en el
// generador. Si la factura no referencia empresa se usa la primera registrada.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}

	var company *entity.Company
	if inv.CompanyID != "" {
		company, _ = uc.companyRepo.GetByID(inv.CompanyID)
	}
	if company == nil {
		company, _ = uc.companyRepo.GetFirst()
	}
	if company == nil {
		company = &entity.Company{Name: "Doctor Cel"}
	}

	return uc.generator.GenerateInvoicePDF(ctx, inv, company, items)
}
