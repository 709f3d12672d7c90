package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

// TransactionUseCase registro manual y listado de transacciones.
// Las transacciones automáticas (pago al pasar una factura a PAID) las emite
// InvoiceUseCase.UpdateStatus; este caso de uso solo cubre la entrada directa.
type TransactionUseCase struct {
	repo        repository.TransactionRepository
	invoiceRepo repository.InvoiceRepository
	orgRepo     repository.OrganizationRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	repo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
	orgRepo repository.OrganizationRepository,
) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, invoiceRepo: invoiceRepo, orgRepo: orgRepo}
}

// Create registra una transacción manual (pago o reembolso).
// Si viene InvoiceID debe resolver a una factura existente.
func (uc *TransactionUseCase) Create(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txType := entity.TransactionType(in.Type)
	if txType != entity.TxPayment && txType != entity.TxRefund {
		return nil, domain.ErrInvalidInput
	}
	source := entity.TransactionSource(in.Source)
	if source == "" {
		source = entity.SourceManual
	}
	if source != entity.SourceStripe && source != entity.SourceManual {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.InvoiceID != "" {
		inv, err := uc.invoiceRepo.GetByID(in.InvoiceID)
		if err != nil || inv == nil {
			return nil, domain.ErrNotFound
		}
	}

	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		InvoiceID:      in.InvoiceID,
		Type:           txType,
		Amount:         in.Amount,
		Source:         source,
		Description:    in.Description,
		TransactedAt:   time.Now(),
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// List lista todas las transacciones, las más recientes primero.
func (uc *TransactionUseCase) List() ([]*dto.TransactionResponse, error) {
	txs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:             tx.ID,
		OrganizationID: tx.OrganizationID,
		InvoiceID:      tx.InvoiceID,
		Type:           string(tx.Type),
		Amount:         tx.Amount,
		Source:         string(tx.Source),
		Description:    tx.Description,
		TransactedAt:   tx.TransactedAt,
	}
}
