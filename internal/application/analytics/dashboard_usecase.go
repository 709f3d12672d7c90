// Package analytics contiene las vistas agregadas de solo lectura del
// dashboard. Proyecciones calculadas bajo demanda sobre las colecciones en
// memoria; sin derechos de mutación y sin caché.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/application/dto"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
	"github.com/jhoicas/bizbuddy-api/internal/domain/repository"
)

const revenueSeriesMonths = 6 // meses del gráfico de ingresos

// DashboardUseCase genera el resumen financiero del dashboard.
type DashboardUseCase struct {
	invoiceRepo repository.InvoiceRepository
	txRepo      repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoiceRepo repository.InvoiceRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{invoiceRepo: invoiceRepo, txRepo: txRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Ingreso total: suma de transacciones tipo PAYMENT (los reembolsos no
// restan). "Este mes" filtra por coincidencia de mes calendario con la fecha
// actual; no es una ventana móvil de 30 días.
func (uc *DashboardUseCase) GetSummary(now time.Time) (*dto.DashboardSummaryDTO, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TotalInvoices: len(invoices),
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.StatusPaid:
			summary.PaidInvoices++
		case entity.StatusDraft, entity.StatusIssued:
			summary.PendingInvoices++
		case entity.StatusOverdue:
			summary.OverdueInvoices++
		}
	}

	byMonth := make(map[time.Month]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != entity.TxPayment {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(tx.Amount)
		byMonth[tx.TransactedAt.Month()] = byMonth[tx.TransactedAt.Month()].Add(tx.Amount)
	}
	summary.ThisMonthRevenue = byMonth[now.Month()]

	// Serie de los últimos 6 meses, del más antiguo al actual.
	summary.RevenueSeries = make([]dto.MonthlyRevenueDTO, 0, revenueSeriesMonths)
	for i := revenueSeriesMonths - 1; i >= 0; i-- {
		// Aritmética de meses sin AddDate: evita el desborde de fin de mes
		// (31 de mayo - 1 mes caería en mayo otra vez).
		m := time.Month((int(now.Month())-1-i+24)%12 + 1)
		summary.RevenueSeries = append(summary.RevenueSeries, dto.MonthlyRevenueDTO{
			Month:   m.String()[:3],
			Revenue: byMonth[m],
		})
	}

	return summary, nil
}
