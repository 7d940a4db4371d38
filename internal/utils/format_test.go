package utils

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantJSON  string
		wantInt   bool
		wantFloat float64
	}{
		{name: "recorta cero final", input: "1.50", wantJSON: "1.5", wantInt: false, wantFloat: 1.5},
		{name: "entero con decimales nulos", input: "2.00", wantJSON: "2", wantInt: true, wantFloat: 2},
		{name: "varios ceros finales", input: "0.1000", wantJSON: "0.1", wantInt: false, wantFloat: 0.1},
		{name: "entero simple", input: int64(42), wantJSON: "42", wantInt: true, wantFloat: 42},
		{name: "flotante exacto", input: 1234.5, wantJSON: "1234.5", wantInt: false, wantFloat: 1234.5},
		{name: "cero", input: "0", wantJSON: "0", wantInt: true, wantFloat: 0},
		{name: "negativo con ceros", input: "-3.1400", wantJSON: "-3.14", wantInt: false, wantFloat: -3.14},
		{name: "precio grande", input: "98750000.000", wantJSON: "98750000", wantInt: true, wantFloat: 98750000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FormatNumber(tt.input)
			require.NoError(t, err)

			raw, err := json.Marshal(n)
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, string(raw))
			assert.Equal(t, tt.wantInt, n.IsInteger())
			assert.Equal(t, tt.wantFloat, n.Float64())
		})
	}
}

func TestFormatNumberPreservesMagnitude(t *testing.T) {
	inputs := []string{"1.50", "2.00", "0.1000", "123456789.000000001", "-0.5000"}
	for _, input := range inputs {
		original, err := decimal.NewFromString(input)
		require.NoError(t, err)

		n, err := FormatNumber(input)
		require.NoError(t, err)
		assert.True(t, n.Decimal().Equal(original), "el valor de %s no debe cambiar", input)
	}
}

func TestFormatNumberInvalidInput(t *testing.T) {
	_, err := FormatNumber("no-es-un-numero")
	assert.Error(t, err)

	_, err = FormatNumber(struct{}{})
	assert.Error(t, err)
}

func TestFormatDecimal(t *testing.T) {
	d := decimal.RequireFromString("7.250")
	n := FormatDecimal(d)
	assert.Equal(t, "7.25", n.String())

	p := NumberPtr(d)
	require.NotNil(t, p)
	assert.Equal(t, "7.25", p.String())
}
