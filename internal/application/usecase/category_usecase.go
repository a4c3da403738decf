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

// CategoryUseCase casos de uso CRUD para categorías. Las mutaciones corren
// dentro de una transacción (TxRunner) para que el chequeo de unicidad y la
// escritura sean atómicos.
type CategoryUseCase struct {
	tx   TxRunner
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(tx TxRunner, repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{tx: tx, repo: repo}
}

// Create crea una categoría. Name es único a nivel global; Active por
// defecto true.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository, _ repository.SKURepository) error {
		exists, err := categoryRepo.NameExists(in.Name)
		if err != nil {
			return err
		}
		if exists {
			return catalog.NewDuplicateCategoryName(in.Name)
		}
		active := true
		if in.Active != nil {
			active = *in.Active
		}
		now := time.Now()
		category := &entity.Category{
			ID:        uuid.New().String(),
			Name:      in.Name,
			Active:    active,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(category); err != nil {
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, catalog.NewResourceNotFound("Category", id)
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre y/o flag Active. Desactivar una categoría es
// siempre válido: el flag solo bloquea asociaciones nuevas de productos,
// no las existentes.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository, _ repository.SKURepository) error {
		category, err := categoryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return catalog.NewResourceNotFound("Category", id)
		}
		if in.Name != nil && *in.Name != category.Name {
			exists, err := categoryRepo.NameExists(*in.Name)
			if err != nil {
				return err
			}
			if exists {
				return catalog.NewDuplicateCategoryName(*in.Name)
			}
			category.Name = *in.Name
		}
		if in.Active != nil {
			category.Active = *in.Active
		}
		category.UpdatedAt = time.Now()
		if err := categoryRepo.Update(category); err != nil {
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una categoría. Falla si aún posee productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository, _ repository.SKURepository) error {
		category, err := categoryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return catalog.NewResourceNotFound("Category", id)
		}
		count, err := categoryRepo.CountProducts(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return catalog.NewCategoryHasProducts(id, count)
		}
		return categoryRepo.Delete(id)
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Active:       c.Active,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
