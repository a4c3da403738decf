package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, incluyendo las reglas
// cruzadas contra Category y SKU: categoría existente y activa, nombre único
// dentro de la categoría, filtro de contenido de la descripción, y bloqueo
// de cambio de categoría o eliminación mientras el producto posea SKUs.
type ProductUseCase struct {
	tx   TxRunner
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{tx: tx, repo: repo}
}

// Create crea un producto contra una categoría existente y activa.
// Orden de chequeos: categoría existe → categoría activa → nombre duplicado
// → filtro de descripción. Gana el primero que falla.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := catalog.ValidateProductName(&in.Name); err != nil {
		return nil, err
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, _ repository.SKURepository) error {
		category, err := categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return catalog.NewResourceNotFound("Category", in.CategoryID)
		}
		if !category.Active {
			return catalog.NewCategoryNotActive(category.ID, category.Name)
		}
		exists, err := productRepo.NameExistsInCategory(in.Name, category.ID)
		if err != nil {
			return err
		}
		if exists {
			return catalog.NewDuplicateNameInCategory(in.Name, category.ID)
		}
		if err := catalog.CheckDescription(in.Name, in.Description); err != nil {
			return err
		}
		now := time.Now()
		product := &entity.Product{
			ID:          uuid.New().String(),
			CategoryID:  category.ID,
			Name:        in.Name,
			Description: derefString(in.Description),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		product.CategoryName = category.Name
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un producto por ID (con nombre de categoría y conteo de SKUs).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, catalog.NewResourceNotFound("Product", id)
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación; categoryID vacío lista todos.
func (uc *ProductUseCase) List(categoryID string, limit, offset int) (*dto.ProductListResponse, error) {
	var list []*entity.Product
	var err error
	if categoryID != "" {
		list, err = uc.repo.ListByCategory(categoryID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un producto (reemplazo completo). Orden de chequeos:
// producto existe → categoría destino existe → categoría destino activa →
// cambio de categoría bloqueado si posee SKUs → nombre duplicado en la
// categoría destino → filtro de descripción.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := catalog.ValidateProductName(&in.Name); err != nil {
		return nil, err
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, _ repository.SKURepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return catalog.NewResourceNotFound("Product", id)
		}
		category, err := categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return catalog.NewResourceNotFound("Category", in.CategoryID)
		}
		if !category.Active {
			return catalog.NewCategoryNotActive(category.ID, category.Name)
		}
		if category.ID != product.CategoryID && product.SKUCount > 0 {
			return catalog.NewCategoryChangeWithSKUs(product.ID, product.SKUCount)
		}
		if in.Name != product.Name {
			exists, err := productRepo.NameExistsInCategory(in.Name, category.ID)
			if err != nil {
				return err
			}
			if exists {
				return catalog.NewDuplicateNameInCategory(in.Name, category.ID)
			}
		}
		if err := catalog.CheckDescription(in.Name, in.Description); err != nil {
			return err
		}
		product.CategoryID = category.ID
		product.Name = in.Name
		product.Description = derefString(in.Description)
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		product.CategoryName = category.Name
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto. Falla si aún posee SKUs.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.CategoryRepository, productRepo repository.ProductRepository, _ repository.SKURepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return catalog.NewResourceNotFound("Product", id)
		}
		if product.SKUCount > 0 {
			return catalog.NewHasActiveSKUs(product.ID, product.SKUCount)
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Name:         p.Name,
		Description:  p.Description,
		SKUCount:     p.SKUCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
