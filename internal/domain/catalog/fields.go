package catalog

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Límites de stock por SKU.
const (
	MinStock = 0
	MaxStock = 999999
)

// productNamePattern: inicia con letra; solo letras, dígitos, espacios,
// guiones y paréntesis; termina en letra, dígito o paréntesis de cierre.
var productNamePattern = regexp.MustCompile(`^[A-Za-z](?:[A-Za-z0-9 ()-]*[A-Za-z0-9)])?$`)

// ValidatePrice verifica que el precio sea mayor que cero y tenga como
// máximo 2 decimales. nil es válido: la presencia del campo se exige
// aguas arriba como required.
func ValidatePrice(price *decimal.Decimal) error {
	if price == nil {
		return nil
	}
	if !price.IsPositive() {
		return NewInvalidFormat("price", "el precio debe ser mayor que 0")
	}
	if !price.Equal(price.Round(2)) {
		return NewInvalidFormat("price", "el precio admite máximo 2 decimales")
	}
	return nil
}

// ValidateProductName verifica el formato del nombre de producto:
// caracteres permitidos, inicio/fin válidos y sin secuencias
// "  ", "--", "()" ni ")(". nil es válido (required aguas arriba).
func ValidateProductName(name *string) error {
	if name == nil {
		return nil
	}
	n := *name
	if !productNamePattern.MatchString(n) {
		return NewInvalidFormat("name", "el nombre debe iniciar con letra, terminar en letra, dígito o ')' y contener solo letras, dígitos, espacios, guiones y paréntesis")
	}
	if strings.Contains(n, "  ") || strings.Contains(n, "--") ||
		strings.Contains(n, "()") || strings.Contains(n, ")(") {
		return NewInvalidFormat("name", "el nombre no admite espacios dobles, guiones dobles, paréntesis vacíos ni ')('")
	}
	return nil
}

// ValidateStockQuantity verifica que el stock esté en el rango 0..999999.
// nil es válido (required aguas arriba).
func ValidateStockQuantity(stock *int) error {
	if stock == nil {
		return nil
	}
	if *stock < MinStock || *stock > MaxStock {
		return NewInvalidFormat("stock", "el stock debe estar entre 0 y 999999")
	}
	return nil
}
