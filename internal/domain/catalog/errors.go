// Package catalog contiene las reglas de dominio del catálogo
// (Category → Product → SKU): validadores de campo, el filtro de contenido
// de descripciones y la taxonomía cerrada de errores de negocio.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Severity clasifica la gravedad de una violación de regla de negocio.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Kind identifica la regla de negocio violada. La taxonomía es cerrada:
// el caller puede hacer switch exhaustivo sobre estos valores.
type Kind string

const (
	KindResourceNotFound        Kind = "RESOURCE_NOT_FOUND"
	KindDuplicateCategoryName   Kind = "DUPLICATE_CATEGORY_NAME"
	KindCategoryHasProducts     Kind = "CATEGORY_HAS_PRODUCTS"
	KindDuplicateNameInCategory Kind = "DUPLICATE_NAME_IN_CATEGORY"
	KindCategoryNotActive       Kind = "CATEGORY_NOT_ACTIVE"
	KindHasActiveSKUs           Kind = "HAS_ACTIVE_SKUS"
	KindCategoryChangeWithSKUs  Kind = "CATEGORY_CHANGE_WITH_SKUS"
	KindInvalidDescription      Kind = "INVALID_DESCRIPTION_FORMAT"
	KindInvalidFormat           Kind = "INVALID_FORMAT"
	KindDuplicateColorAndSize   Kind = "DUPLICATE_COLOR_AND_SIZE"
	KindInsufficientStock       Kind = "INSUFFICIENT_STOCK"
	KindInvalidPriceUpdate      Kind = "INVALID_PRICE_UPDATE"
)

// Códigos estables por regla. KindResourceNotFound y KindInvalidFormat no
// llevan código propio: el caller los identifica por Kind.
const (
	CodeDuplicateCategoryName   = "CAT_001"
	CodeCategoryHasProducts     = "CAT_002"
	CodeDuplicateNameInCategory = "PROD_001"
	CodeCategoryNotActive       = "PROD_002"
	CodeHasActiveSKUs           = "PROD_003"
	CodeCategoryChangeWithSKUs  = "PROD_004"
	CodeInvalidDescription      = "PROD_005"
	CodeDuplicateColorAndSize   = "SKU_001"
	CodeInsufficientStock       = "SKU_002"
	CodeInvalidPriceUpdate      = "SKU_003"
)

// Error es el valor de error estructurado que producen los checkers de
// invariantes. Transporta datos suficientes (entidad, campo, valor, umbrales)
// para que el caller arme un mensaje de cara al usuario.
type Error struct {
	Kind     Kind
	Code     string // vacío para los kinds sin código estable
	Severity Severity
	Message  string
	Fields   map[string]any
}

// Error implementa la interfaz error.
func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
}

// NewResourceNotFound indica que la entidad referenciada (Category, Product
// o SKU) no existe en el store.
func NewResourceNotFound(entityName, id string) *Error {
	return &Error{
		Kind:     KindResourceNotFound,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s con id %s no encontrado", entityName, id),
		Fields:   map[string]any{"entity": entityName, "id": id},
	}
}

// NewDuplicateCategoryName indica colisión de nombre de categoría a nivel global.
func NewDuplicateCategoryName(name string) *Error {
	return &Error{
		Kind:     KindDuplicateCategoryName,
		Code:     CodeDuplicateCategoryName,
		Severity: SeverityError,
		Message:  fmt.Sprintf("ya existe una categoría con el nombre %q", name),
		Fields:   map[string]any{"name": name},
	}
}

// NewCategoryHasProducts indica que la categoría no puede eliminarse
// porque aún posee productos.
func NewCategoryHasProducts(categoryID string, count int) *Error {
	return &Error{
		Kind:     KindCategoryHasProducts,
		Code:     CodeCategoryHasProducts,
		Severity: SeverityError,
		Message:  fmt.Sprintf("la categoría %s no puede eliminarse: posee %d producto(s)", categoryID, count),
		Fields:   map[string]any{"category_id": categoryID, "product_count": count},
	}
}

// NewDuplicateNameInCategory indica colisión de nombre de producto dentro
// de una categoría.
func NewDuplicateNameInCategory(name, categoryID string) *Error {
	return &Error{
		Kind:     KindDuplicateNameInCategory,
		Code:     CodeDuplicateNameInCategory,
		Severity: SeverityError,
		Message:  fmt.Sprintf("ya existe un producto con el nombre %q en la categoría %s", name, categoryID),
		Fields:   map[string]any{"name": name, "category_id": categoryID},
	}
}

// NewCategoryNotActive indica que la categoría destino está inactiva al
// momento de crear o actualizar un producto.
func NewCategoryNotActive(categoryID, categoryName string) *Error {
	return &Error{
		Kind:     KindCategoryNotActive,
		Code:     CodeCategoryNotActive,
		Severity: SeverityError,
		Message:  fmt.Sprintf("la categoría %q está inactiva y no admite productos", categoryName),
		Fields:   map[string]any{"category_id": categoryID, "category_name": categoryName},
	}
}

// NewHasActiveSKUs indica que el producto no puede eliminarse porque posee SKUs.
func NewHasActiveSKUs(productID string, count int) *Error {
	return &Error{
		Kind:     KindHasActiveSKUs,
		Code:     CodeHasActiveSKUs,
		Severity: SeverityError,
		Message:  fmt.Sprintf("el producto %s no puede eliminarse: posee %d SKU(s)", productID, count),
		Fields:   map[string]any{"product_id": productID, "sku_count": count},
	}
}

// NewCategoryChangeWithSKUs indica un intento de reasignar la categoría
// de un producto que aún posee SKUs.
func NewCategoryChangeWithSKUs(productID string, count int) *Error {
	return &Error{
		Kind:     KindCategoryChangeWithSKUs,
		Code:     CodeCategoryChangeWithSKUs,
		Severity: SeverityError,
		Message:  fmt.Sprintf("el producto %s no puede cambiar de categoría: posee %d SKU(s)", productID, count),
		Fields:   map[string]any{"product_id": productID, "sku_count": count},
	}
}

// NewInvalidDescription indica que la descripción no pasó el filtro de
// contenido. reason detalla cuál chequeo falló.
func NewInvalidDescription(reason string) *Error {
	return &Error{
		Kind:     KindInvalidDescription,
		Code:     CodeInvalidDescription,
		Severity: SeverityError,
		Message:  reason,
		Fields:   map[string]any{"field": "description"},
	}
}

// NewInvalidFormat indica que un campo individual no cumple su formato
// (precio, nombre, stock).
func NewInvalidFormat(field, reason string) *Error {
	return &Error{
		Kind:     KindInvalidFormat,
		Severity: SeverityError,
		Message:  reason,
		Fields:   map[string]any{"field": field},
	}
}

// NewDuplicateColorAndSize indica colisión del par (color, talla) dentro
// de un producto.
func NewDuplicateColorAndSize(productID, color, size string) *Error {
	return &Error{
		Kind:     KindDuplicateColorAndSize,
		Code:     CodeDuplicateColorAndSize,
		Severity: SeverityError,
		Message:  fmt.Sprintf("ya existe un SKU con color %q y talla %q para el producto %s", color, size, productID),
		Fields:   map[string]any{"product_id": productID, "color": color, "size": size},
	}
}

// NewInsufficientStock está definido para un futuro flujo de descuento de
// stock; ninguna operación actual lo produce.
func NewInsufficientStock(skuID string, requested, available int) *Error {
	return &Error{
		Kind:     KindInsufficientStock,
		Code:     CodeInsufficientStock,
		Severity: SeverityError,
		Message:  fmt.Sprintf("stock insuficiente para el SKU %s: solicitado %d, disponible %d", skuID, requested, available),
		Fields:   map[string]any{"sku_id": skuID, "requested": requested, "available": available},
	}
}

// NewInvalidPriceUpdate está definido para una futura regla que rechace
// caídas de precio mayores al 50%; ninguna operación actual lo produce.
func NewInvalidPriceUpdate(current, proposed decimal.Decimal) *Error {
	return &Error{
		Kind:     KindInvalidPriceUpdate,
		Code:     CodeInvalidPriceUpdate,
		Severity: SeverityError,
		Message:  fmt.Sprintf("reducción de precio inválida: de %s a %s supera el 50%%", current.String(), proposed.String()),
		Fields:   map[string]any{"current_price": current.String(), "proposed_price": proposed.String()},
	}
}
