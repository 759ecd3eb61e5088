package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain/pricing"
)

// ProductKind distingue las variantes de producto del catálogo.
type ProductKind int

// Variantes de producto.
const (
	ProductKindRegular    ProductKind = iota + 1 // precio de lista
	ProductKindDiscounted                        // precio con descuento porcentual
)

// String devuelve el nombre legible de la variante.
func (k ProductKind) String() string {
	switch k {
	case ProductKindRegular:
		return "regular"
	case ProductKindDiscounted:
		return "descuento"
	default:
		return fmt.Sprintf("ProductKind(%d)", int(k))
	}
}

// Product representa una entrada del catálogo en memoria.
// ID lo asigna quien crea el producto y no se exige único; Key es la llave estable
// del inventario con la que las líneas de factura resuelven el producto.
type Product struct {
	Key             string
	ID              int
	Name            string
	Price           decimal.Decimal // precio unitario
	Quantity        int             // existencias disponibles
	Kind            ProductKind
	DiscountPercent decimal.Decimal // solo aplica a ProductKindDiscounted
}

// NewProduct construye un producto de precio regular.
func NewProduct(id int, name string, price decimal.Decimal, qty int) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: qty,
		Kind:     ProductKindRegular,
	}
}

// NewDiscountedProduct construye un producto con descuento porcentual (sin validar rango).
func NewDiscountedProduct(id int, name string, price decimal.Decimal, qty int, discount decimal.Decimal) *Product {
	return &Product{
		ID:              id,
		Name:            name,
		Price:           price,
		Quantity:        qty,
		Kind:            ProductKindDiscounted,
		DiscountPercent: discount,
	}
}

func (p *Product) Rename(name string)            { p.Name = name }
func (p *Product) Reprice(price decimal.Decimal) { p.Price = price }
func (p *Product) Restock(qty int)               { p.Quantity = qty }

// IsDiscounted indica si el producto aplica descuento al total.
func (p *Product) IsDiscounted() bool {
	return p.Kind == ProductKindDiscounted
}

// CalculateTotal devuelve el total a cobrar por qty unidades según la variante.
func (p *Product) CalculateTotal(qty int) decimal.Decimal {
	total := pricing.LineTotal(p.Price, qty)
	switch p.Kind {
	case ProductKindDiscounted:
		return pricing.ApplyDiscount(total, p.DiscountPercent)
	default:
		return total
	}
}

// Describe devuelve el resumen de una línea usado en los listados.
func (p *Product) Describe() string {
	s := fmt.Sprintf("ID: %d | Nombre: %s | Precio: $%s | Cantidad: %d",
		p.ID, p.Name, p.Price.StringFixed(2), p.Quantity)
	if p.IsDiscounted() {
		s += " | Descuento: " + p.DiscountPercent.String() + "%"
	}
	return s
}
