package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementación del puerto SKURepository sobre PostgreSQL
// (usable con pool o tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador de persistencia para SKUs.
// Pasar pool o tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// Create persiste un nuevo SKU.
func (r *SKURepo) Create(sku *entity.SKU) error {
	query := `
		INSERT INTO skus (id, product_id, color, size, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.ProductID, sku.Color, sku.Size, sku.Price, sku.Stock,
		sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Fallback de concurrencia: el constraint único (product_id, color, size)
			// gana la carrera contra el chequeo previo.
			return catalog.NewDuplicateColorAndSize(sku.ProductID, sku.Color, sku.Size)
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID. Con withProduct carga también el nombre
// del producto y de su categoría (denormalizados para display).
func (r *SKURepo) GetByID(id string, withProduct bool) (*entity.SKU, error) {
	var s entity.SKU
	var err error
	if withProduct {
		query := `
			SELECT s.id, s.product_id, s.color, s.size, s.price, s.stock, s.created_at, s.updated_at,
			       p.name, c.name
			FROM skus s
			JOIN products p ON p.id = s.product_id
			JOIN categories c ON c.id = p.category_id
			WHERE s.id = $1`
		err = r.q.QueryRow(context.Background(), query, id).Scan(
			&s.ID, &s.ProductID, &s.Color, &s.Size, &s.Price, &s.Stock, &s.CreatedAt, &s.UpdatedAt,
			&s.ProductName, &s.CategoryName,
		)
	} else {
		query := `
			SELECT id, product_id, color, size, price, stock, created_at, updated_at
			FROM skus WHERE id = $1`
		err = r.q.QueryRow(context.Background(), query, id).Scan(
			&s.ID, &s.ProductID, &s.Color, &s.Size, &s.Price, &s.Stock, &s.CreatedAt, &s.UpdatedAt,
		)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// ColorSizeExists verifica si ya existe un SKU con ese (color, talla) para
// el producto.
func (r *SKURepo) ColorSizeExists(productID, color, size string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM skus WHERE product_id = $1 AND color = $2 AND size = $3)`,
		productID, color, size,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sku color/size exists: %w", err)
	}
	return exists, nil
}

// ListByProduct lista los SKUs de un producto con paginación.
func (r *SKURepo) ListByProduct(productID string, limit, offset int) ([]*entity.SKU, error) {
	query := `
		SELECT s.id, s.product_id, s.color, s.size, s.price, s.stock, s.created_at, s.updated_at,
		       p.name, c.name
		FROM skus s
		JOIN products p ON p.id = s.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE s.product_id = $1 ORDER BY s.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Color, &s.Size, &s.Price, &s.Stock,
			&s.CreatedAt, &s.UpdatedAt, &s.ProductName, &s.CategoryName); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un SKU existente (incluye reasignación de producto).
func (r *SKURepo) Update(sku *entity.SKU) error {
	query := `
		UPDATE skus SET product_id = $2, color = $3, size = $4, price = $5, stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.ProductID, sku.Color, sku.Size, sku.Price, sku.Stock, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.NewDuplicateColorAndSize(sku.ProductID, sku.Color, sku.Size)
		}
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// Delete elimina un SKU por ID.
func (r *SKURepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}
