package usecase_test

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// fakeStore store en memoria compartido por los repos fake. Reproduce el
// comportamiento de los adaptadores PostgreSQL: nil cuando no existe y
// campos denormalizados calculados al leer.
type fakeStore struct {
	categories map[string]*entity.Category
	products   map[string]*entity.Product
	skus       map[string]*entity.SKU
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: map[string]*entity.Category{},
		products:   map[string]*entity.Product{},
		skus:       map[string]*entity.SKU{},
	}
}

func (s *fakeStore) addCategory(id, name string, active bool) *entity.Category {
	c := &entity.Category{ID: id, Name: name, Active: active}
	s.categories[id] = c
	return c
}

func (s *fakeStore) addProduct(id, categoryID, name, description string) *entity.Product {
	p := &entity.Product{ID: id, CategoryID: categoryID, Name: name, Description: description}
	s.products[id] = p
	return p
}

func (s *fakeStore) addSKU(id, productID, color, size string) *entity.SKU {
	sku := &entity.SKU{ID: id, ProductID: productID, Color: color, Size: size,
		Price: decimal.NewFromInt(10), Stock: 1}
	s.skus[id] = sku
	return sku
}

func (s *fakeStore) countProducts(categoryID string) int {
	n := 0
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (s *fakeStore) countSKUs(productID string) int {
	n := 0
	for _, sk := range s.skus {
		if sk.ProductID == productID {
			n++
		}
	}
	return n
}

// ── Repos fake ───────────────────────────────────────────────────────────────

type fakeCategoryRepo struct{ s *fakeStore }

var _ repository.CategoryRepository = fakeCategoryRepo{}

func (r fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.ProductCount = r.s.countProducts(id)
	return &cp, nil
}

func (r fakeCategoryRepo) NameExists(name string) (bool, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var list []*entity.Category
	for id := range r.s.categories {
		c, _ := r.GetByID(id)
		list = append(list, c)
	}
	return list, nil
}

func (r fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r fakeCategoryRepo) CountProducts(id string) (int, error) {
	return r.s.countProducts(id), nil
}

func (r fakeCategoryRepo) Delete(id string) error {
	delete(r.s.categories, id)
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = fakeProductRepo{}

func (r fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if c, ok := r.s.categories[p.CategoryID]; ok {
		cp.CategoryName = c.Name
	}
	cp.SKUCount = r.s.countSKUs(id)
	return &cp, nil
}

func (r fakeProductRepo) NameExistsInCategory(name, categoryID string) (bool, error) {
	for _, p := range r.s.products {
		if p.Name == name && p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for id, p := range r.s.products {
		if p.CategoryID == categoryID {
			cp, _ := r.GetByID(id)
			list = append(list, cp)
		}
	}
	return list, nil
}

func (r fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for id := range r.s.products {
		cp, _ := r.GetByID(id)
		list = append(list, cp)
	}
	return list, nil
}

func (r fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeSKURepo struct{ s *fakeStore }

var _ repository.SKURepository = fakeSKURepo{}

func (r fakeSKURepo) Create(sku *entity.SKU) error {
	cp := *sku
	r.s.skus[sku.ID] = &cp
	return nil
}

func (r fakeSKURepo) GetByID(id string, withProduct bool) (*entity.SKU, error) {
	sku, ok := r.s.skus[id]
	if !ok {
		return nil, nil
	}
	cp := *sku
	if withProduct {
		if p, ok := r.s.products[sku.ProductID]; ok {
			cp.ProductName = p.Name
			if c, ok := r.s.categories[p.CategoryID]; ok {
				cp.CategoryName = c.Name
			}
		}
	}
	return &cp, nil
}

func (r fakeSKURepo) ColorSizeExists(productID, color, size string) (bool, error) {
	for _, sku := range r.s.skus {
		if sku.ProductID == productID && sku.Color == color && sku.Size == size {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeSKURepo) ListByProduct(productID string, limit, offset int) ([]*entity.SKU, error) {
	var list []*entity.SKU
	for id, sku := range r.s.skus {
		if sku.ProductID == productID {
			cp, _ := r.GetByID(id, true)
			list = append(list, cp)
		}
	}
	return list, nil
}

func (r fakeSKURepo) Update(sku *entity.SKU) error {
	cp := *sku
	r.s.skus[sku.ID] = &cp
	return nil
}

func (r fakeSKURepo) Delete(id string) error {
	delete(r.s.skus, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos fake
// (sin transacción real).
type fakeTxRunner struct{ s *fakeStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	skuRepo repository.SKURepository,
) error) error {
	return fn(fakeCategoryRepo{r.s}, fakeProductRepo{r.s}, fakeSKURepo{r.s})
}
