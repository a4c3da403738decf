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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para
// productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.category_id, p.name, p.description, p.created_at, p.updated_at,
	       c.name,
	       (SELECT count(*) FROM skus s WHERE s.product_id = p.id)
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Fallback de concurrencia: el constraint único (category_id, name)
			// gana la carrera contra el chequeo previo.
			return catalog.NewDuplicateNameInCategory(product.Name, product.CategoryID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con nombre de categoría y conteo de SKUs.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.SKUCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// NameExistsInCategory verifica si ya existe un producto con ese nombre en
// la categoría.
func (r *ProductRepo) NameExistsInCategory(name, categoryID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM products WHERE name = $1 AND category_id = $2)`,
		name, categoryID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product name exists: %w", err)
	}
	return exists, nil
}

// ListByCategory lista productos de una categoría con paginación.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.category_id = $1 ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return scanProducts(rows)
}

// List lista todos los productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := productSelect + ` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// Update actualiza un producto existente (nombre, descripción y categoría).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.NewDuplicateNameInCategory(product.Name, product.CategoryID)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SKUCount); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
