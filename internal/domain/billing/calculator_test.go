package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizbuddy-api/internal/domain/billing"
	"github.com/jhoicas/bizbuddy-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del calculador puro de totales. Los montos de referencia corresponden
// a los dos escenarios de facturación del taller de demostración:
//
//	A) ECU Remapping 1×800 + Air Filter 2×200  @ 8.25%  → 1200 / 99 / 1299
//	B) Coilovers 1×1500 + KW V3 Kit 1×2000      @ 8.25%  → 3500 / 288.75 / 3788.75
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLineTotal(t *testing.T) {
	total := billing.LineTotal(dec("2"), dec("200"))
	assert.True(t, dec("400").Equal(total), "2 × 200 debe dar 400, obtuvo %s", total)

	fractional := billing.LineTotal(dec("1.5"), dec("80"))
	assert.True(t, dec("120").Equal(fractional), "cantidades fraccionarias deben multiplicar exacto")
}

func TestTotals_EscenarioTaller(t *testing.T) {
	items := []entity.LineItem{
		{Description: "ECU Remapping", Quantity: dec("1"), UnitPrice: dec("800"), Category: entity.CategoryLabor, Total: dec("800")},
		{Description: "Air Filter", Quantity: dec("2"), UnitPrice: dec("200"), Category: entity.CategoryParts, Total: dec("400")},
	}

	subtotal, taxAmount, total := billing.Totals(items, dec("8.25"))

	assert.True(t, dec("1200").Equal(subtotal), "subtotal esperado 1200, obtuvo %s", subtotal)
	assert.True(t, dec("99").Equal(taxAmount), "impuesto esperado 99, obtuvo %s", taxAmount)
	assert.True(t, dec("1299").Equal(total), "total esperado 1299, obtuvo %s", total)
}

func TestTotals_ImpuestoConCentavos(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Coilover Installation", Quantity: dec("1"), UnitPrice: dec("1500"), Category: entity.CategoryLabor, Total: dec("1500")},
		{Description: "KW V3 Coilover Kit", Quantity: dec("1"), UnitPrice: dec("2000"), Category: entity.CategoryParts, Total: dec("2000")},
	}

	subtotal, taxAmount, total := billing.Totals(items, dec("8.25"))

	assert.True(t, dec("3500").Equal(subtotal))
	assert.True(t, dec("288.75").Equal(taxAmount), "el impuesto debe conservar centavos exactos, obtuvo %s", taxAmount)
	assert.True(t, dec("3788.75").Equal(total))
}

func TestTotals_SinLineas(t *testing.T) {
	subtotal, taxAmount, total := billing.Totals(nil, dec("8.25"))

	assert.True(t, subtotal.IsZero(), "sin líneas el subtotal debe ser cero")
	assert.True(t, taxAmount.IsZero(), "sin líneas el impuesto debe ser cero")
	assert.True(t, total.IsZero(), "sin líneas el total debe ser cero")
}

func TestTotals_TarifaCero(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Diagnóstico", Quantity: dec("1"), UnitPrice: dec("100"), Total: dec("100")},
	}

	subtotal, taxAmount, total := billing.Totals(items, decimal.Zero)

	assert.True(t, dec("100").Equal(subtotal))
	assert.True(t, taxAmount.IsZero())
	assert.True(t, dec("100").Equal(total), "con tarifa cero el total es igual al subtotal")
}

// El calculador es permisivo: no valida signos. La validación de entradas vive
// en el caso de uso de creación de facturas.
func TestTotals_EsPermisivoConNegativos(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Ajuste", Quantity: dec("1"), UnitPrice: dec("-50"), Total: billing.LineTotal(dec("1"), dec("-50"))},
	}

	subtotal, _, total := billing.Totals(items, dec("10"))

	assert.True(t, dec("-50").Equal(subtotal), "el calculador propaga montos negativos sin error")
	assert.True(t, dec("-55").Equal(total))
}
