// Package billing contiene los casos de uso de facturación: creación de
// facturas, ciclo de vida de estados, clientes y transacciones.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	domainbilling "github.com/jhoicas/bizbuddy-api/internal/domain/billing"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// InvoiceUseCase crea facturas y aplica transiciones de estado.
// Es el único lugar donde una mutación de estado acopla un efecto secundario:
// la primera transición a PAID emite exactamente una transacción de pago.
type InvoiceUseCase struct {
	uow          BillingUnitOfWork
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	orgRepo      repository.OrganizationRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	uow BillingUnitOfWork,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	orgRepo repository.OrganizationRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		uow:          uow,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		orgRepo:      orgRepo,
	}
}

// Create crea una factura en estado DRAFT o ISSUED.
//
// Validaciones (antes de cualquier mutación; no se crea factura parcial):
//   - cliente seleccionado y existente
//   - al menos una línea; cantidad > 0 y precio unitario >= 0 por línea
//   - estado inicial DRAFT o ISSUED (vacío equivale a ISSUED)
//
// Los totales se derivan con la tarifa de impuesto vigente de la organización.
// El número de factura usa el consecutivo monotónico por organización
// (INV-<año>-<seq>); sin sufijos aleatorios, no hay colisiones posibles.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	initialStatus := entity.StatusIssued
	switch in.InitialStatus {
	case "", string(entity.StatusIssued):
	case string(entity.StatusDraft):
		initialStatus = entity.StatusDraft
	default:
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}

	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("obtener organización: %w", err)
	}

	now := time.Now()
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		category := entity.LineItemCategory(it.Category)
		if category == "" {
			category = entity.CategoryOther
		}
		if !entity.ValidCategory(category) {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.LineItem{
			ID:          uuid.New().String(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Category:    category,
			Total:       domainbilling.LineTotal(it.Quantity, it.UnitPrice),
		})
	}

	subtotal, taxAmount, total := domainbilling.Totals(items, org.TaxRate)

	inv := &entity.Invoice{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		CustomerID:     customer.ID,
		Status:         initialStatus,
		DueAt:          in.DueAt,
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		Total:          total,
		Notes:          in.Notes,
		LineItems:      items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if initialStatus == entity.StatusIssued {
		issuedAt := now
		inv.IssuedAt = &issuedAt
	}

	// Numeración y alta dentro de la unidad de trabajo: el consecutivo y la
	// factura que lo usa se reservan juntos.
	err = uc.uow.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.TransactionRepository) error {
		seq, err := invoiceRepo.NextNumber(org.ID)
		if err != nil {
			return fmt.Errorf("consecutivo de factura: %w", err)
		}
		inv.InvoiceNumber = fmt.Sprintf("INV-%d-%d", now.Year(), seq)
		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(inv, customer.FullName()), nil
}

// UpdateStatus aplica una transición de estado a la factura.
//
// Reglas:
//   - ID desconocido → domain.ErrNotFound (se expone como 404, no se descarta en silencio)
//   - transición no permitida por la tabla → domain.ErrConflict
//   - transición al estado actual (incluido PAID → PAID) → no-op sin efectos
//   - primera llegada a PAID → fija PaidAt y emite UNA transacción de pago
//     (tipo PAYMENT, monto = total de la factura, origen MANUAL)
//
// El cambio de estado y la transacción se aplican dentro de la misma unidad de
// trabajo: atómicos desde la perspectiva del caller.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, invoiceID string, newStatus entity.InvoiceStatus) (*dto.InvoiceResponse, error) {
	switch newStatus {
	case entity.StatusDraft, entity.StatusIssued, entity.StatusPaid, entity.StatusOverdue, entity.StatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Invoice
	err := uc.uow.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, txRepo repository.TransactionRepository) error {
		inv, err := invoiceRepo.GetByID(invoiceID)
		if err != nil || inv == nil {
			return domain.ErrNotFound
		}
		prev := inv.Status
		if prev == newStatus {
			updated = inv // no-op; sin efectos
			return nil
		}
		if !domainbilling.CanTransition(prev, newStatus) {
			return domain.ErrConflict
		}

		now := time.Now()
		inv.Status = newStatus
		inv.UpdatedAt = now
		if newStatus == entity.StatusIssued && inv.IssuedAt == nil {
			inv.IssuedAt = &now
		}
		if domainbilling.EmitsPayment(prev, newStatus) {
			inv.PaidAt = &now
			payment := &entity.Transaction{
				ID:             uuid.New().String(),
				OrganizationID: inv.OrganizationID,
				InvoiceID:      inv.ID,
				Type:           entity.TxPayment,
				Amount:         inv.Total,
				Source:         entity.SourceManual,
				Description:    "Payment for " + inv.InvoiceNumber,
				TransactedAt:   now,
			}
			if err := txRepo.Create(payment); err != nil {
				return fmt.Errorf("registrar pago: %w", err)
			}
		}
		if err := invoiceRepo.Update(inv); err != nil {
			return fmt.Errorf("actualizar factura: %w", err)
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(updated, uc.customerName(updated.CustomerID)), nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv, uc.customerName(inv.CustomerID)), nil
}

// List lista todas las facturas, las más recientes primero.
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, uc.toResponse(inv, uc.customerName(inv.CustomerID)))
	}
	return out, nil
}

func (uc *InvoiceUseCase) customerName(customerID string) string {
	customer, _ := uc.customerRepo.GetByID(customerID)
	if customer == nil {
		return ""
	}
	return customer.FullName()
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, customerName string) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		CustomerID:     inv.CustomerID,
		CustomerName:   customerName,
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         string(inv.Status),
		IssuedAt:       inv.IssuedAt,
		DueAt:          inv.DueAt,
		PaidAt:         inv.PaidAt,
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		Notes:          inv.Notes,
		LineItems:      make([]dto.LineItemResponse, 0, len(inv.LineItems)),
	}
	for _, li := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, dto.LineItemResponse{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Category:    string(li.Category),
			Total:       li.Total,
		})
	}
	return resp
}
