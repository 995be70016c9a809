package inventory

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Valores por defecto del estimador de consumo.
const (
	DefaultWindowSize   = 3
	DefaultFallbackMean = 10
)

// TrailingMean promedio (floor) de los últimos windowSize meses con consumo > 0.
// Las claves YYYY-MM se ordenan lexicográficamente, que equivale al orden cronológico.
// Meses con valor <= 0 se consideran "sin registro", no "demanda cero".
// Sin historial utilizable devuelve fallback.
func TrailingMean(record *entity.MonthlyConsumptionRecord, windowSize int, fallback int64) int64 {
	if record == nil || len(record.Months) == 0 {
		return fallback
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	keys := make([]string, 0, len(record.Months))
	for k := range record.Months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > windowSize {
		keys = keys[len(keys)-windowSize:]
	}

	sum := decimal.Zero
	n := 0
	for _, k := range keys {
		v := ToNonNegativeNumber(record.Months[k])
		if v <= 0 {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(v))
		n++
	}
	if n == 0 {
		return fallback
	}
	return floorInt64(sum.Div(decimal.NewFromInt(int64(n))))
}

// RestockNeed cantidad a reponer: max(0, promedio − stock).
func RestockNeed(mean, currentStock int64) int64 {
	if currentStock < 0 && mean > math.MaxInt64+currentStock {
		return math.MaxInt64
	}
	if need := mean - currentStock; need > 0 {
		return need
	}
	return 0
}

// NeedsAttention el ítem requiere atención cuando stock <= promedio de consumo.
func NeedsAttention(currentStock, mean int64) bool {
	return currentStock <= mean
}
