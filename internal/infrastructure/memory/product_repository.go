package memory

import (
	"fmt"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
// Es el único dueño de los productos: un slice ordenado más un índice Key -> posición.
// No es seguro para uso concurrente; la aplicación corre en una sola goroutine.
type ProductRepo struct {
	products []*entity.Product
	byKey    map[string]int
}

// NewProductRepository construye un inventario vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{byKey: make(map[string]int)}
}

// Create agrega el producto al final del inventario. Key es obligatoria y única.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product == nil || product.Key == "" {
		return domain.ErrInvalidInput
	}
	if _, exists := r.byKey[product.Key]; exists {
		return fmt.Errorf("create product: key %s duplicada: %w", product.Key, domain.ErrInvalidInput)
	}
	r.byKey[product.Key] = len(r.products)
	r.products = append(r.products, product)
	return nil
}

// GetByID busca linealmente y devuelve la primera coincidencia.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// GetByKey resuelve un producto por su llave estable.
func (r *ProductRepo) GetByKey(key string) (*entity.Product, error) {
	i, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	return r.products[i], nil
}

// Update reemplaza la entrada con la misma Key, conservando su posición.
func (r *ProductRepo) Update(product *entity.Product) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	i, ok := r.byKey[product.Key]
	if !ok {
		return domain.ErrNotFound
	}
	r.products[i] = product
	return nil
}

// Delete elimina la entrada con la Key indicada; las posteriores se desplazan.
func (r *ProductRepo) Delete(key string) error {
	i, ok := r.byKey[key]
	if !ok {
		return domain.ErrNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	delete(r.byKey, key)
	for j := i; j < len(r.products); j++ {
		r.byKey[r.products[j].Key] = j
	}
	return nil
}

// List devuelve los productos en orden de inserción. El slice es una copia; los productos no.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepo) Count() int {
	return len(r.products)
}
