package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Number es un valor numérico que se serializa sin ceros sobrantes:
// como entero cuando el valor es matemáticamente entero, y como
// flotante recortado en caso contrario. La magnitud nunca cambia,
// solo su forma de presentación.
type Number struct {
	value decimal.Decimal
}

// FormatNumber normaliza un valor numérico (o una cadena numérica)
// usando decimales exactos para evitar errores de punto flotante.
// El único caso de error es una cadena que no representa un número.
func FormatNumber(value any) (Number, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return Number{value: v}, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Number{}, fmt.Errorf("valor no numérico %q: %v", v, err)
		}
		return Number{value: d}, nil
	case float64:
		return Number{value: decimal.NewFromFloat(v)}, nil
	case float32:
		return Number{value: decimal.NewFromFloat32(v)}, nil
	case int:
		return Number{value: decimal.NewFromInt(int64(v))}, nil
	case int64:
		return Number{value: decimal.NewFromInt(v)}, nil
	default:
		return Number{}, fmt.Errorf("tipo no numérico: %T", value)
	}
}

// FormatDecimal es la variante directa para valores ya decimales.
func FormatDecimal(d decimal.Decimal) Number {
	return Number{value: d}
}

// NumberPtr devuelve un puntero al número formateado, útil para
// campos que pueden estar ausentes en las respuestas.
func NumberPtr(d decimal.Decimal) *Number {
	n := FormatDecimal(d)
	return &n
}

// IsInteger indica si el valor es matemáticamente entero.
func (n Number) IsInteger() bool {
	return n.value.IsInteger()
}

// Decimal devuelve el valor exacto subyacente.
func (n Number) Decimal() decimal.Decimal {
	return n.value
}

// Float64 devuelve la aproximación flotante del valor.
func (n Number) Float64() float64 {
	f, _ := n.value.Float64()
	return f
}

// String devuelve la representación recortada ("2.00" -> "2", "1.50" -> "1.5").
func (n Number) String() string {
	return n.value.String()
}

// MarshalJSON serializa el número como literal JSON sin ceros sobrantes.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.value.String()), nil
}
