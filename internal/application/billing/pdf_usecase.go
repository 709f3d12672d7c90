package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// InvoicePDFUseCase resuelve factura, organización y cliente y delega la
// generación del documento en el adaptador de PDF.
type InvoicePDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	orgRepo      repository.OrganizationRepository
	generator    InvoicePDFGenerator
}

// NewInvoicePDFUseCase construye el caso de uso.
func NewInvoicePDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	orgRepo repository.OrganizationRepository,
	generator InvoicePDFGenerator,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		orgRepo:      orgRepo,
		generator:    generator,
	}
}

// Render genera el PDF de la factura y devuelve sus bytes junto con un nombre
// de archivo sugerido.
func (uc *InvoicePDFUseCase) Render(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, "", domain.ErrNotFound
	}

	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("obtener organización: %w", err)
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil || customer == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, org, customer)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de factura %s: %w", inv.InvoiceNumber, err)
	}

	filename := inv.InvoiceNumber + ".pdf"
	return pdfBytes, filename, nil
}
