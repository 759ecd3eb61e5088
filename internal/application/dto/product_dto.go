package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para agregar un producto al inventario.
// Discounted = true crea la variante con descuento usando DiscountPercent.
type CreateProductRequest struct {
	ID              int
	Name            string
	Price           decimal.Decimal
	Quantity        int
	Discounted      bool
	DiscountPercent decimal.Decimal
}

// UpdateProductRequest entrada para actualizar un producto (la variante y el descuento no cambian).
type UpdateProductRequest struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Key             string
	ID              int
	Name            string
	Price           decimal.Decimal
	Quantity        int
	Kind            string
	DiscountPercent decimal.Decimal
	Summary         string // línea lista para mostrar
}

// ProductListResponse listado ordenado del inventario.
type ProductListResponse struct {
	Items []ProductResponse
}

// IsEmpty indica el estado "inventario vacío".
func (r *ProductListResponse) IsEmpty() bool {
	return len(r.Items) == 0
}
