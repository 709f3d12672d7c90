package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de facturación más la serie de ingresos de los últimos seis meses.
type DashboardSummaryDTO struct {
	// Ingreso total: suma de transacciones tipo PAYMENT de toda la historia.
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	// Ingreso del mes calendario en curso (coincidencia por mes, no ventana móvil de 30 días).
	ThisMonthRevenue decimal.Decimal `json:"this_month_revenue"`

	TotalInvoices   int `json:"total_invoices"`
	PaidInvoices    int `json:"paid_invoices"`
	PendingInvoices int `json:"pending_invoices"` // DRAFT + ISSUED
	OverdueInvoices int `json:"overdue_invoices"`

	// Serie para el gráfico del dashboard, del mes más antiguo al actual.
	RevenueSeries []MonthlyRevenueDTO `json:"revenue_series"`
}

// MonthlyRevenueDTO punto de la serie mensual de ingresos.
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"` // ej. "Sep"
	Revenue decimal.Decimal `json:"revenue"`
}
