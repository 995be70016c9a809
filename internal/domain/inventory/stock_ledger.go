package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// DefaultMinStock umbral de stock bajo cuando el ítem no define MinStock.
const DefaultMinStock = 10

// Estados de stock (partición: todo ítem cae exactamente en uno).
const (
	StatusShortage  = "shortage"
	StatusLowStock  = "low_stock"
	StatusAvailable = "available"
)

// Classification resultado de clasificar un ítem.
type Classification struct {
	CurrentStock int64
	IsShortage   bool // stock <= 0
	IsLowStock   bool // 0 < stock <= umbral
	IsAvailable  bool // stock > 0
}

// Status devuelve el estado único del ítem.
func (c Classification) Status() string {
	switch {
	case c.IsShortage:
		return StatusShortage
	case c.IsLowStock:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}

// Stats conteos agregados de una lista de ítems con nombre.
type Stats struct {
	TotalItems int
	Shortages  int
	Available  int
	LowStock   int
}

// ComputeCurrentStock = floor(apertura + Σ entradas − Σ dispensado).
// Usa floor (no redondeo) para subestimar el stock ante cantidades fraccionarias.
// Puede ser negativo (déficit). Un ítem nil devuelve 0; fuera del rango de int64 satura.
func ComputeCurrentStock(item *entity.InventoryItem) int64 {
	if item == nil {
		return 0
	}
	total := decimal.NewFromFloat(ToNonNegativeNumber(item.Opening)).
		Add(sumDay(item.DailyIncoming)).
		Sub(sumDay(item.DailyDispense))
	return floorInt64(total)
}

// ClassifyStock deriva shortage / low stock / available a partir del stock actual.
// El umbral es item.MinStock si existe; si no, minStockDefault.
func ClassifyStock(item *entity.InventoryItem, minStockDefault float64) Classification {
	stock := ComputeCurrentStock(item)
	threshold := ToNonNegativeNumber(minStockDefault)
	if item != nil && item.MinStock != nil {
		threshold = ToNonNegativeNumber(*item.MinStock)
	}
	return Classification{
		CurrentStock: stock,
		IsShortage:   stock <= 0,
		IsAvailable:  stock > 0,
		IsLowStock:   stock > 0 && float64(stock) <= threshold,
	}
}

// AggregateStats cuenta ítems por estado ignorando filas sin nombre.
func AggregateStats(items []entity.InventoryItem, minStockDefault float64) Stats {
	var s Stats
	for i := range items {
		if !IsNamed(&items[i]) {
			continue
		}
		s.TotalItems++
		c := ClassifyStock(&items[i], minStockDefault)
		if c.IsShortage {
			s.Shortages++
		}
		if c.IsAvailable {
			s.Available++
		}
		if c.IsLowStock {
			s.LowStock++
		}
	}
	return s
}

// IsNamed indica si el ítem no es una fila de marcador.
func IsNamed(item *entity.InventoryItem) bool {
	return item != nil && strings.TrimSpace(item.Name) != ""
}

// TotalIncoming suma de entradas del período.
func TotalIncoming(item *entity.InventoryItem) decimal.Decimal {
	if item == nil {
		return decimal.Zero
	}
	return sumDay(item.DailyIncoming)
}

// TotalDispensed suma de lo dispensado en el período.
func TotalDispensed(item *entity.InventoryItem) decimal.Decimal {
	if item == nil {
		return decimal.Zero
	}
	return sumDay(item.DailyDispense)
}
