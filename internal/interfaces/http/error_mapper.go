package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

// StatusForKind mapea cada kind de la taxonomía a un status HTTP. El switch
// es exhaustivo sobre la taxonomía cerrada; un kind desconocido es un bug y
// cae en 500.
func StatusForKind(kind catalog.Kind) int {
	switch kind {
	case catalog.KindResourceNotFound:
		return fiber.StatusNotFound
	case catalog.KindDuplicateCategoryName,
		catalog.KindDuplicateNameInCategory,
		catalog.KindDuplicateColorAndSize,
		catalog.KindCategoryHasProducts,
		catalog.KindHasActiveSKUs,
		catalog.KindCategoryChangeWithSKUs,
		catalog.KindCategoryNotActive,
		catalog.KindInsufficientStock,
		catalog.KindInvalidPriceUpdate:
		return fiber.StatusConflict
	case catalog.KindInvalidDescription, catalog.KindInvalidFormat:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// writeDomainError traduce un error del dominio a la respuesta HTTP.
// Errores fuera de la taxonomía (fallas del store) responden 500.
func writeDomainError(c *fiber.Ctx, err error) error {
	var derr *catalog.Error
	if !errors.As(err, &derr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	code := derr.Code
	if code == "" {
		code = string(derr.Kind)
	}
	return c.Status(StatusForKind(derr.Kind)).JSON(dto.ErrorResponse{
		Code:    code,
		Message: derr.Message,
		Fields:  derr.Fields,
	})
}
