package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// ProductRepository define el puerto del inventario de productos (DIP).
// El orden de inserción se conserva; los IDs pueden repetirse y las búsquedas por ID
// devuelven la primera coincidencia. GetBy* devuelven (nil, nil) si no hay coincidencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int) (*entity.Product, error)
	GetByKey(key string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(key string) error
	List() ([]*entity.Product, error)
	Count() int
}
