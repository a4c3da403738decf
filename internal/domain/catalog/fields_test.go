package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

// requireInvalidFormat verifica que err sea un *catalog.Error con kind
// INVALID_FORMAT sobre el campo esperado.
func requireInvalidFormat(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var derr *catalog.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, catalog.KindInvalidFormat, derr.Kind)
	assert.Equal(t, field, derr.Fields["field"])
}

func TestValidatePrice(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return &v
	}

	tests := []struct {
		name    string
		price   *decimal.Decimal
		wantErr bool
	}{
		{"nil es válido (required aguas arriba)", nil, false},
		{"entero positivo", d("1"), false},
		{"dos decimales", d("10.00"), false},
		{"un decimal", d("0.5"), false},
		{"tres decimales", d("10.005"), true},
		{"cero", d("0"), true},
		{"negativo", d("-5.00"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.ValidatePrice(tt.price)
			if tt.wantErr {
				requireInvalidFormat(t, err, "price")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProductName(t *testing.T) {
	s := func(v string) *string { return &v }

	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{"nil es válido (required aguas arriba)", nil, false},
		{"nombre simple", s("Camiseta Basica"), false},
		{"una sola letra", s("A"), false},
		{"con dígitos y guion", s("Kit-2 Rojo"), false},
		{"termina en paréntesis de cierre", s("Camiseta (Edicion Limitada)"), false},
		{"termina en dígito", s("Modelo 2024"), false},
		{"inicia con dígito", s("2Camisetas"), true},
		{"inicia con espacio", s(" Camiseta"), true},
		{"termina en guion", s("Camiseta-"), true},
		{"termina en espacio", s("Camiseta "), true},
		{"carácter no permitido", s("Camiseta!"), true},
		{"espacio doble", s("Camiseta  Basica"), true},
		{"guion doble", s("Camiseta--Basica"), true},
		{"paréntesis vacíos", s("Camiseta ()"), true},
		{"paréntesis adyacentes invertidos", s("Caja (A)(B)"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.ValidateProductName(tt.value)
			if tt.wantErr {
				requireInvalidFormat(t, err, "name")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStockQuantity(t *testing.T) {
	n := func(v int) *int { return &v }

	assert.NoError(t, catalog.ValidateStockQuantity(nil))
	assert.NoError(t, catalog.ValidateStockQuantity(n(0)))
	assert.NoError(t, catalog.ValidateStockQuantity(n(999999)))
	requireInvalidFormat(t, catalog.ValidateStockQuantity(n(-1)), "stock")
	requireInvalidFormat(t, catalog.ValidateStockQuantity(n(1000000)), "stock")
}

func TestValidatePrice_NoEsErrorGenerico(t *testing.T) {
	v := decimal.RequireFromString("10.005")
	err := catalog.ValidatePrice(&v)
	var derr *catalog.Error
	require.True(t, errors.As(err, &derr))
	assert.Empty(t, derr.Code, "INVALID_FORMAT no lleva código estable")
}
