package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	SKUUC      *usecase.SKUUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas admiten cualquier rol
// autenticado; las mutaciones exigen admin o editor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleEditor)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Put("/:id", canWrite, categoryHandler.Update)
	categories.Delete("/:id", canWrite, categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)

	// SKUs
	skus := protected.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Get("/", skuHandler.ListByProduct)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Post("/", canWrite, skuHandler.Create)
	skus.Put("/:id", canWrite, skuHandler.Update)
	skus.Delete("/:id", canWrite, skuHandler.Delete)
}
