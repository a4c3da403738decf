package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// SKURepository define el puerto de persistencia para SKU (DIP).
// withProduct carga ProductName y CategoryName (denormalizados).
type SKURepository interface {
	Create(sku *entity.SKU) error
	GetByID(id string, withProduct bool) (*entity.SKU, error)
	ColorSizeExists(productID, color, size string) (bool, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.SKU, error)
	Update(sku *entity.SKU) error
	Delete(id string) error
}
