package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID carga también CategoryName y SKUCount (denormalizados).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	NameExistsInCategory(name, categoryID string) (bool, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
