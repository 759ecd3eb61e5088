package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
)

// UseCase casos de uso CRUD del inventario en memoria.
// Los IDs los asigna quien llama y no se exige unicidad: se opera sobre la primera coincidencia.
type UseCase struct {
	repo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Add agrega un producto al final del inventario. Siempre tiene éxito salvo fallo del repositorio.
func (uc *UseCase) Add(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	if in.Discounted {
		product = entity.NewDiscountedProduct(in.ID, in.Name, in.Price, in.Quantity, in.DiscountPercent)
	} else {
		product = entity.NewProduct(in.ID, in.Name, in.Price, in.Quantity)
	}
	product.Key = uuid.New().String()
	if err := uc.repo.Create(product); err != nil {
		return nil, fmt.Errorf("agregar producto %d: %w", in.ID, err)
	}
	return ToProductResponse(product), nil
}

// FindByID devuelve la primera coincidencia o domain.ErrNotFound.
func (uc *UseCase) FindByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update sobrescribe nombre, precio y cantidad de la primera coincidencia.
// Si el ID no existe devuelve domain.ErrNotFound y el inventario queda intacto.
func (uc *UseCase) Update(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	product.Rename(in.Name)
	product.Reprice(in.Price)
	product.Restock(in.Quantity)
	if err := uc.repo.Update(product); err != nil {
		return nil, fmt.Errorf("actualizar producto %d: %w", id, err)
	}
	return ToProductResponse(product), nil
}

// Delete elimina la primera coincidencia; las entradas siguientes se desplazan.
func (uc *UseCase) Delete(id int) error {
	product, err := uc.find(id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(product.Key); err != nil {
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	return nil
}

// List devuelve el inventario en orden de inserción. Un listado vacío no es error.
func (uc *UseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Count número de productos en inventario.
func (uc *UseCase) Count() int {
	return uc.repo.Count()
}

func (uc *UseCase) find(id int) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ToProductResponse adapta la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Key:             p.Key,
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Quantity:        p.Quantity,
		Kind:            p.Kind.String(),
		DiscountPercent: p.DiscountPercent,
		Summary:         p.Describe(),
	}
}
