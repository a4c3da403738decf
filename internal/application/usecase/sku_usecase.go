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

// SKUUseCase casos de uso CRUD para SKUs: existencia del producto dueño y
// unicidad del par (color, talla) dentro del producto.
type SKUUseCase struct {
	tx   TxRunner
	repo repository.SKURepository
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(tx TxRunner, repo repository.SKURepository) *SKUUseCase {
	return &SKUUseCase{tx: tx, repo: repo}
}

// Create crea un SKU contra un producto existente. Orden de chequeos:
// producto existe → (color, talla) no duplicado en el producto.
func (uc *SKUUseCase) Create(ctx context.Context, in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if err := catalog.ValidatePrice(&in.Price); err != nil {
		return nil, err
	}
	if err := catalog.ValidateStockQuantity(&in.Stock); err != nil {
		return nil, err
	}
	var out *dto.SKUResponse
	err := uc.tx.Run(ctx, func(_ repository.CategoryRepository, productRepo repository.ProductRepository, skuRepo repository.SKURepository) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return catalog.NewResourceNotFound("Product", in.ProductID)
		}
		exists, err := skuRepo.ColorSizeExists(product.ID, in.Color, in.Size)
		if err != nil {
			return err
		}
		if exists {
			return catalog.NewDuplicateColorAndSize(product.ID, in.Color, in.Size)
		}
		now := time.Now()
		sku := &entity.SKU{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Color:     in.Color,
			Size:      in.Size,
			Price:     in.Price,
			Stock:     in.Stock,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := skuRepo.Create(sku); err != nil {
			return err
		}
		sku.ProductName = product.Name
		sku.CategoryName = product.CategoryName
		out = toSKUResponse(sku)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un SKU por ID con su producto y categoría.
func (uc *SKUUseCase) GetByID(id string) (*dto.SKUResponse, error) {
	sku, err := uc.repo.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, catalog.NewResourceNotFound("SKU", id)
	}
	return toSKUResponse(sku), nil
}

// ListByProduct lista los SKUs de un producto con paginación.
func (uc *SKUUseCase) ListByProduct(productID string, limit, offset int) (*dto.SKUListResponse, error) {
	list, err := uc.repo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SKUResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSKUResponse(s))
	}
	return &dto.SKUListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un SKU. Si product_id cambia, el SKU se reasigna: el
// producto destino debe existir y el par (color, talla) no puede chocar con
// los SKUs del destino. Si product_id no cambia, no se repite el chequeo de
// unicidad aunque color/talla cambien.
func (uc *SKUUseCase) Update(ctx context.Context, id string, in dto.UpdateSKURequest) (*dto.SKUResponse, error) {
	if err := catalog.ValidatePrice(&in.Price); err != nil {
		return nil, err
	}
	if err := catalog.ValidateStockQuantity(&in.Stock); err != nil {
		return nil, err
	}
	var out *dto.SKUResponse
	err := uc.tx.Run(ctx, func(_ repository.CategoryRepository, productRepo repository.ProductRepository, skuRepo repository.SKURepository) error {
		sku, err := skuRepo.GetByID(id, true)
		if err != nil {
			return err
		}
		if sku == nil {
			return catalog.NewResourceNotFound("SKU", id)
		}
		productName := sku.ProductName
		categoryName := sku.CategoryName
		if in.ProductID != sku.ProductID {
			product, err := productRepo.GetByID(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return catalog.NewResourceNotFound("Product", in.ProductID)
			}
			exists, err := skuRepo.ColorSizeExists(product.ID, in.Color, in.Size)
			if err != nil {
				return err
			}
			if exists {
				return catalog.NewDuplicateColorAndSize(product.ID, in.Color, in.Size)
			}
			sku.ProductID = product.ID
			productName = product.Name
			categoryName = product.CategoryName
		}
		sku.Color = in.Color
		sku.Size = in.Size
		sku.Price = in.Price
		sku.Stock = in.Stock
		sku.UpdatedAt = time.Now()
		if err := skuRepo.Update(sku); err != nil {
			return err
		}
		sku.ProductName = productName
		sku.CategoryName = categoryName
		out = toSKUResponse(sku)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un SKU por ID.
func (uc *SKUUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.CategoryRepository, _ repository.ProductRepository, skuRepo repository.SKURepository) error {
		sku, err := skuRepo.GetByID(id, false)
		if err != nil {
			return err
		}
		if sku == nil {
			return catalog.NewResourceNotFound("SKU", id)
		}
		return skuRepo.Delete(id)
	})
}

func toSKUResponse(s *entity.SKU) *dto.SKUResponse {
	if s == nil {
		return nil
	}
	return &dto.SKUResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		CategoryName: s.CategoryName,
		Color:        s.Color,
		Size:         s.Size,
		Price:        s.Price,
		Stock:        s.Stock,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
