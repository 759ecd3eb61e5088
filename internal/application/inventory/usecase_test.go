package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/application/inventory"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUseCase() *inventory.UseCase {
	return inventory.NewUseCase(memory.NewProductRepository())
}

func pen() dto.CreateProductRequest {
	return dto.CreateProductRequest{ID: 1, Name: "Pen", Price: dec("10.0"), Quantity: 5}
}

func TestAddThenFind_DevuelveLosMismosCampos(t *testing.T) {
	uc := newUseCase()
	added, err := uc.Add(pen())
	require.NoError(t, err)
	assert.NotEmpty(t, added.Key, "Add debe asignar una llave estable")

	found, err := uc.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, found.ID)
	assert.Equal(t, "Pen", found.Name)
	assert.True(t, found.Price.Equal(dec("10")))
	assert.Equal(t, 5, found.Quantity)
	assert.Equal(t, "regular", found.Kind)
	assert.Equal(t, added.Key, found.Key)
}

func TestAdd_VarianteConDescuento(t *testing.T) {
	uc := newUseCase()
	out, err := uc.Add(dto.CreateProductRequest{
		ID: 2, Name: "Mug", Price: dec("20"), Quantity: 10,
		Discounted: true, DiscountPercent: dec("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "descuento", out.Kind)
	assert.Contains(t, out.Summary, "Descuento: 10%")
}

func TestAdd_PermiteIDsDuplicados(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Add(dto.CreateProductRequest{ID: 1, Name: "Primero", Price: dec("1"), Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Add(dto.CreateProductRequest{ID: 1, Name: "Segundo", Price: dec("2"), Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, uc.Count())
	found, err := uc.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Primero", found.Name, "la búsqueda devuelve la primera coincidencia")

	require.NoError(t, uc.Delete(1))
	found, err = uc.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Segundo", found.Name, "Delete elimina solo la primera coincidencia")
}

func TestDelete_ExistenteReduceEnUno(t *testing.T) {
	uc := newUseCase()
	_, _ = uc.Add(pen())
	_, _ = uc.Add(dto.CreateProductRequest{ID: 2, Name: "Mug", Price: dec("20"), Quantity: 10})
	before := uc.Count()

	require.NoError(t, uc.Delete(1))

	assert.Equal(t, before-1, uc.Count())
	_, err := uc.FindByID(1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Inexistente(t *testing.T) {
	uc := newUseCase()
	_, _ = uc.Add(pen())

	assert.ErrorIs(t, uc.Delete(42), domain.ErrNotFound)
	assert.Equal(t, 1, uc.Count())
}

func TestUpdate_SobrescribeEnSitio(t *testing.T) {
	uc := newUseCase()
	_, _ = uc.Add(pen())
	_, _ = uc.Add(dto.CreateProductRequest{ID: 2, Name: "Mug", Price: dec("20"), Quantity: 10})

	out, err := uc.Update(1, dto.UpdateProductRequest{Name: "Pluma", Price: dec("12.5"), Quantity: 8})
	require.NoError(t, err)
	assert.Equal(t, "Pluma", out.Name)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Pluma", list.Items[0].Name, "la posición no cambia")
	assert.True(t, list.Items[0].Price.Equal(dec("12.5")))
	assert.Equal(t, 8, list.Items[0].Quantity)
}

func TestUpdate_InexistenteNoModifica(t *testing.T) {
	uc := newUseCase()
	_, _ = uc.Add(pen())
	before, err := uc.List()
	require.NoError(t, err)

	_, err = uc.Update(99, dto.UpdateProductRequest{Name: "X", Price: dec("1"), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestList_VacioYOrden(t *testing.T) {
	uc := newUseCase()
	list, err := uc.List()
	require.NoError(t, err)
	assert.True(t, list.IsEmpty())

	for i, name := range []string{"C", "A", "B"} {
		_, err := uc.Add(dto.CreateProductRequest{ID: 10 - i, Name: name, Price: dec("1"), Quantity: 1})
		require.NoError(t, err)
	}
	list, err = uc.List()
	require.NoError(t, err)
	require.False(t, list.IsEmpty())
	got := []string{list.Items[0].Name, list.Items[1].Name, list.Items[2].Name}
	assert.Equal(t, []string{"C", "A", "B"}, got)
}
