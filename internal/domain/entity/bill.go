package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate tasa de impuesto por defecto de la factura (porcentaje).
var DefaultTaxRate = decimal.NewFromInt(5)

// BillItem línea de factura: referencia no propietaria al producto (por Key) y cantidad pedida.
// Precio y descuento se leen del inventario al calcular, no al agregar.
type BillItem struct {
	ProductKey string
	Quantity   int
}

// Bill factura transitoria de una sesión de cobro.
type Bill struct {
	ID        string
	TaxRate   decimal.Decimal // porcentaje, ej. 5 = 5%
	Items     []BillItem
	CreatedAt time.Time
}

// NewBill crea una factura vacía con la tasa indicada.
func NewBill(id string, taxRate decimal.Decimal, now time.Time) *Bill {
	return &Bill{ID: id, TaxRate: taxRate, CreatedAt: now}
}

// AddItem agrega una línea al final. No descuenta inventario.
func (b *Bill) AddItem(productKey string, qty int) {
	b.Items = append(b.Items, BillItem{ProductKey: productKey, Quantity: qty})
}

// Clear vacía las líneas de la factura.
func (b *Bill) Clear() {
	b.Items = nil
}

func (b *Bill) IsEmpty() bool {
	return len(b.Items) == 0
}
