package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateTotal_Regular(t *testing.T) {
	p := entity.NewProduct(1, "Pen", dec("10.0"), 5)

	for qty := 0; qty <= 7; qty++ {
		want := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		assert.True(t, p.CalculateTotal(qty).Equal(want), "qty=%d", qty)
	}
}

func TestCalculateTotal_Discounted(t *testing.T) {
	mug := entity.NewDiscountedProduct(2, "Mug", dec("20.0"), 10, dec("10"))
	assert.Equal(t, "36.00", mug.CalculateTotal(2).StringFixed(2))

	zero := entity.NewDiscountedProduct(3, "Cup", dec("20.0"), 10, decimal.Zero)
	regular := entity.NewProduct(3, "Cup", dec("20.0"), 10)
	assert.True(t, zero.CalculateTotal(4).Equal(regular.CalculateTotal(4)),
		"con descuento 0 debe coincidir con la fórmula base")

	full := entity.NewDiscountedProduct(4, "Free", dec("20.0"), 10, dec("100"))
	assert.True(t, full.CalculateTotal(4).IsZero(), "con descuento 100 el total es 0")
}

func TestCalculateTotal_DiscountOutOfRange(t *testing.T) {
	p := entity.NewDiscountedProduct(5, "Raro", dec("10"), 1, dec("120"))
	assert.True(t, p.CalculateTotal(1).IsNegative())
}

func TestSetters(t *testing.T) {
	p := entity.NewProduct(1, "Pen", dec("10"), 5)
	p.Rename("Lápiz")
	p.Reprice(dec("12.5"))
	p.Restock(9)

	assert.Equal(t, "Lápiz", p.Name)
	assert.True(t, p.Price.Equal(dec("12.5")))
	assert.Equal(t, 9, p.Quantity)
	assert.Equal(t, 1, p.ID)
}

func TestDescribe(t *testing.T) {
	p := entity.NewProduct(1, "Pen", dec("10"), 5)
	assert.Equal(t, "ID: 1 | Nombre: Pen | Precio: $10.00 | Cantidad: 5", p.Describe())

	d := entity.NewDiscountedProduct(2, "Mug", dec("20"), 10, dec("12.5"))
	assert.Equal(t, "ID: 2 | Nombre: Mug | Precio: $20.00 | Cantidad: 10 | Descuento: 12.5%", d.Describe())
}

func TestProductKindString(t *testing.T) {
	assert.Equal(t, "regular", entity.ProductKindRegular.String())
	assert.Equal(t, "descuento", entity.ProductKindDiscounted.String())
	assert.Equal(t, "ProductKind(9)", entity.ProductKind(9).String())
}
