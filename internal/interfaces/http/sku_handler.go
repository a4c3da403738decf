package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// SKUHandler maneja las peticiones HTTP para SKU.
type SKUHandler struct {
	uc *usecase.SKUUseCase
}

// NewSKUHandler construye el handler.
func NewSKUHandler(uc *usecase.SKUUseCase) *SKUHandler {
	return &SKUHandler{uc: uc}
}

// Create godoc
// @Summary      Crear SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSKURequest  true  "Datos del SKU"
// @Success      201   {object}  dto.SKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *SKUHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSKURequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Color == "" || in.Size == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, color y size son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener SKU por ID
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del SKU"
// @Success      200  {object}  dto.SKUResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [get]
func (h *SKUHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar SKUs de un producto
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true   "ID del producto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.SKUListResponse
// @Router       /api/skus [get]
func (h *SKUHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.ListByProduct(productID, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del SKU"
// @Param        body  body  dto.UpdateSKURequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [put]
func (h *SKUHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateSKURequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Color == "" || in.Size == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, color y size son requeridos"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar SKU
// @Tags         skus
// @Security     Bearer
// @Param        id  path  string  true  "ID del SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [delete]
func (h *SKUHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
