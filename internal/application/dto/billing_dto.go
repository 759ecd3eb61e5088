package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillLineResponse línea de factura resuelta contra el inventario.
// Stale = true si el producto fue eliminado después de agregarlo; su total es 0.
type BillLineResponse struct {
	ProductID   int
	ProductName string
	Quantity    int
	Total       decimal.Decimal
	Stale       bool
}

// BillResponse factura detallada con subtotal, impuesto y total.
type BillResponse struct {
	ID         string
	Date       time.Time
	Lines      []BillLineResponse
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// IsEmpty indica el estado "factura sin ítems".
func (r *BillResponse) IsEmpty() bool {
	return len(r.Lines) == 0
}
