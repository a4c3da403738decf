package catalog

import (
	"strings"
	"unicode/utf8"
)

// Palabras en el nombre del producto que lo marcan como "tipo especial":
// estos productos exigen descripción obligatoria.
var specialTypeKeywords = []string{"set", "kit", "bundle", "collection"}

// Palabras clave SQL rechazadas dentro de la descripción.
var sqlKeywords = []string{"select", "insert", "update", "delete", "drop", "union"}

// Longitud máxima de la descripción (ya recortada).
const maxDescriptionLength = 1000

// Mensajes del filtro de contenido. Cada chequeo reporta su propia razón;
// gana el primero que falla.
const (
	reasonRequiredForSpecial = "la descripción es obligatoria para productos tipo set, kit, bundle o collection"
	reasonTooLong            = "la descripción supera la longitud máxima de 1000 caracteres"
	reasonHarmfulContent     = "la descripción contiene HTML o contenido potencialmente dañino"
	reasonSQLContent         = "la descripción contiene palabras clave SQL o caracteres inválidos"
	reasonTooFewWords        = "la descripción debe contener al menos 3 palabras"
	reasonRepeatedChars      = "la descripción contiene caracteres repetidos en exceso"
)

// IsSpecialTypeProduct indica si el nombre corresponde a un producto tipo
// set/kit/bundle/collection (búsqueda case-insensitive).
func IsSpecialTypeProduct(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range specialTypeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CheckDescription aplica el filtro heurístico de contenido sobre la
// descripción de un producto. Los chequeos corren en orden fijo y gana el
// primero que falla:
//
//  1. productos tipo especial exigen descripción no vacía
//  2. descripción ausente o en blanco pasa para el resto (campo opcional)
//  3. longitud máxima
//  4. HTML / esquemas peligrosos
//  5. palabras clave SQL y caracteres inválidos
//  6. mínimo 3 palabras
//  7. caracteres repetidos más de 4 veces consecutivas
func CheckDescription(name string, description *string) error {
	special := IsSpecialTypeProduct(name)

	if special && (description == nil || strings.TrimSpace(*description) == "") {
		return NewInvalidDescription(reasonRequiredForSpecial)
	}
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	// El límite cuenta caracteres (runes), no bytes: las tildes no recortan
	// el espacio disponible.
	if utf8.RuneCountInString(trimmed) > maxDescriptionLength {
		return NewInvalidDescription(reasonTooLong)
	}
	if strings.ContainsAny(trimmed, "<>") ||
		strings.Contains(trimmed, "javascript:") || strings.Contains(trimmed, "data:") {
		return NewInvalidDescription(reasonHarmfulContent)
	}
	lower := strings.ToLower(trimmed)
	for _, kw := range sqlKeywords {
		if strings.Contains(lower, kw) {
			return NewInvalidDescription(reasonSQLContent)
		}
	}
	if strings.ContainsAny(trimmed, `'";`) {
		return NewInvalidDescription(reasonSQLContent)
	}
	if len(strings.Fields(trimmed)) < 3 {
		return NewInvalidDescription(reasonTooFewWords)
	}
	if hasExcessiveRepeats(trimmed, 4) {
		return NewInvalidDescription(reasonRepeatedChars)
	}
	return nil
}

// hasExcessiveRepeats detecta cualquier carácter repetido más de max veces
// consecutivas.
func hasExcessiveRepeats(s string, max int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run > max {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
