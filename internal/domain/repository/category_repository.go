package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	NameExists(name string) (bool, error)
	List(limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	CountProducts(id string) (int, error)
	Delete(id string) error
}
