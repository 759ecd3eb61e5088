package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineTotal calcula el total bruto de una línea: Precio * Cantidad.
func LineTotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// ApplyDiscount descuenta un porcentaje sobre un total (servicio de dominio).
// Total - (Total * Porcentaje / 100). El porcentaje no se valida: valores fuera de
// [0,100] producen totales mayores al bruto o negativos.
func ApplyDiscount(total, percent decimal.Decimal) decimal.Decimal {
	return total.Sub(total.Mul(percent).Div(hundred))
}

// TaxAmount calcula el impuesto sobre el subtotal con una tasa expresada en porcentaje (5 = 5%).
func TaxAmount(subtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ratePercent).Div(hundred)
}

// GrandTotal suma subtotal e impuesto.
func GrandTotal(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}
