// Package billing contiene la lógica pura de facturación: cálculo de totales
// y la máquina de estados del ciclo de vida de la factura. Sin efectos
// secundarios ni dependencias de infraestructura; seguro de llamar
// concurrentemente.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// LineTotal calcula el total de una línea: cantidad × precio unitario.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Totals deriva (subtotal, impuesto, total) de las líneas y la tarifa de
// impuesto en porcentaje (ej. 8.25).
//
//	subtotal  = Σ quantity_i × unitPrice_i
//	taxAmount = subtotal × taxRate / 100
//	total     = subtotal + taxAmount
//
// Una secuencia vacía produce tres ceros. No valida cantidades ni precios
// negativos: esa responsabilidad es del caller (ver billing.InvoiceUseCase).
func Totals(items []entity.LineItem, taxRate decimal.Decimal) (subtotal, taxAmount, total decimal.Decimal) {
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item.Quantity, item.UnitPrice))
	}
	taxAmount = subtotal.Mul(taxRate).Div(cien)
	total = subtotal.Add(taxAmount)
	return subtotal, taxAmount, total
}
