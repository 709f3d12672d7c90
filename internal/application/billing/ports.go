package billing

import (
	"context"

	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// BillingUnitOfWork ejecuta fn de forma atómica sobre facturas y transacciones.
// El cambio de estado de la factura y la emisión de su transacción de pago se
// observan juntos o no se observan: ningún lector ve el estado intermedio.
// La implementación en memoria sostiene el lock de escritura del store durante
// toda la ejecución de fn, lo que además garantiza "a lo sumo una transacción
// por transición a PAID" ante callers concurrentes.
type BillingUnitOfWork interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
// Las líneas de detalle viajan dentro de la propia factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		org *entity.Organization,
		customer *entity.Customer,
	) ([]byte, error)
}
