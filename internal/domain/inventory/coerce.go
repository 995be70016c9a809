package inventory

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToNonNegativeNumber convierte cualquier valor recibido del almacén o del cliente
// en un número >= 0. nil, NaN, ±Inf, negativos, textos no numéricos y tipos
// desconocidos devuelven 0 (fail-soft: la UI siempre debe poder mostrar un número).
func ToNonNegativeNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case decimal.Decimal:
		f = n.InexactFloat64()
	case *float64:
		if n == nil {
			return 0
		}
		f = *n
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// CoerceDayMap aplica ToNonNegativeNumber a cada valor de un mapa día→cantidad
// tal como llega del almacén (map[string]any). Entradas no convertibles quedan en 0.
func CoerceDayMap(raw any) map[string]float64 {
	out := map[string]float64{}
	switch m := raw.(type) {
	case map[string]any:
		for k, v := range m {
			out[k] = ToNonNegativeNumber(v)
		}
	case map[string]float64:
		for k, v := range m {
			out[k] = ToNonNegativeNumber(v)
		}
	case map[string]int64:
		for k, v := range m {
			out[k] = ToNonNegativeNumber(v)
		}
	}
	return out
}

func sumDay(m map[string]float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(decimal.NewFromFloat(ToNonNegativeNumber(v)))
	}
	return total
}

var (
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
	minInt64Dec = decimal.NewFromInt(math.MinInt64)
)

// floorInt64 floor de d saturado al rango de int64.
func floorInt64(d decimal.Decimal) int64 {
	f := d.Floor()
	switch {
	case f.GreaterThan(maxInt64Dec):
		return math.MaxInt64
	case f.LessThan(minInt64Dec):
		return math.MinInt64
	}
	return f.IntPart()
}
