package inventory_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func item(name string, opening float64, incoming, dispense map[string]float64) *entity.InventoryItem {
	it := entity.NewInventoryItem(name)
	it.Opening = opening
	for k, v := range incoming {
		it.DailyIncoming[k] = v
	}
	for k, v := range dispense {
		it.DailyDispense[k] = v
	}
	return &it
}

func ptr(f float64) *float64 { return &f }

// ──────────────────────────────────────────────────────────────────────────────
// ToNonNegativeNumber
// ──────────────────────────────────────────────────────────────────────────────

func TestToNonNegativeNumber_Tabla(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"int64", int64(42), 42},
		{"uint8", uint8(3), 3},
		{"texto numérico", " 15 ", 15},
		{"texto decimal", "2.75", 2.75},
		{"texto inválido", "abc", 0},
		{"texto vacío", "", 0},
		{"negativo", -4.0, 0},
		{"texto negativo", "-3", 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
		{"bool", true, 0},
		{"json.Number", json.Number("9"), 9},
		{"decimal", decimal.NewFromFloat(1.5), 1.5},
		{"puntero nil", (*float64)(nil), 0},
		{"puntero", ptr(8), 8},
		{"mapa", map[string]any{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ToNonNegativeNumber(tc.in))
		})
	}
}

func TestCoerceDayMap_ValoresMixtos(t *testing.T) {
	got := inventory.CoerceDayMap(map[string]any{"01": "5", "02": int64(3), "03": nil, "04": "x", "05": -2.0})
	assert.Equal(t, map[string]float64{"01": 5, "02": 3, "03": 0, "04": 0, "05": 0}, got)

	assert.Empty(t, inventory.CoerceDayMap(nil))
	assert.Empty(t, inventory.CoerceDayMap("no es un mapa"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeCurrentStock
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeCurrentStock_ItemNil(t *testing.T) {
	assert.Equal(t, int64(0), inventory.ComputeCurrentStock(nil))
}

func TestComputeCurrentStock_FloorNoRedondeo(t *testing.T) {
	it := item("Amoxicilina", 10.9, map[string]float64{"01": 0.05}, nil)
	assert.Equal(t, int64(10), inventory.ComputeCurrentStock(it), "10.95 debe quedar en 10")

	neg := item("Ibuprofeno", 0, nil, map[string]float64{"01": 0.5})
	assert.Equal(t, int64(-1), inventory.ComputeCurrentStock(neg), "floor(-0.5) = -1")
}

func TestComputeCurrentStock_SinDerivaFlotante(t *testing.T) {
	// 0.1 + 0.2 − 0.3 en float64 da un valor negativo minúsculo; el resultado debe ser 0.
	it := item("Paracetamol", 0.1, map[string]float64{"01": 0.2}, map[string]float64{"02": 0.3})
	assert.Equal(t, int64(0), inventory.ComputeCurrentStock(it))
}

func TestComputeCurrentStock_CamposInvalidosSonCero(t *testing.T) {
	it := &entity.InventoryItem{
		Name:          "Loratadina",
		Opening:       math.NaN(),
		DailyIncoming: map[string]float64{"01": math.Inf(1), "02": 4},
		DailyDispense: map[string]float64{"01": -10},
	}
	assert.Equal(t, int64(4), inventory.ComputeCurrentStock(it))
}

func TestComputeCurrentStock_SaturaFueraDeRango(t *testing.T) {
	cases := []struct {
		name     string
		opening  float64
		dispense float64
		want     int64
	}{
		{"1e19", 1e19, 0, math.MaxInt64},
		{"1e20", 1e20, 0, math.MaxInt64},
		{"1e300", 1e300, 0, math.MaxInt64},
		{"déficit 1e300", 0, 1e300, math.MinInt64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := item("Grande", tc.opening, nil, map[string]float64{"01": tc.dispense})
			assert.Equal(t, tc.want, inventory.ComputeCurrentStock(it))
		})
	}

	c := inventory.ClassifyStock(item("Grande", 1e19, nil, nil), inventory.DefaultMinStock)
	assert.False(t, c.IsShortage)
	assert.True(t, c.IsAvailable)
	assert.Equal(t, inventory.StatusAvailable, c.Status())
}

// Propiedad: linealidad respecto de la apertura.
func TestComputeCurrentStock_Lineal(t *testing.T) {
	bases := []*entity.InventoryItem{
		item("A", 0, nil, nil),
		item("B", 20.7, map[string]float64{"01": 5}, map[string]float64{"03": 12.2}),
		item("C", 3, nil, map[string]float64{"01": 10}),
	}
	for _, base := range bases {
		for _, k := range []int64{0, 1, 7, 100} {
			shifted := base.Clone()
			shifted.Opening = base.Opening + float64(k)
			assert.Equal(t,
				inventory.ComputeCurrentStock(base)+k,
				inventory.ComputeCurrentStock(&shifted),
				"item %s, k=%d", base.Name, k)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStock
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: todo ítem cae exactamente en uno de {shortage, low stock, disponible holgado}.
func TestClassifyStock_Particion(t *testing.T) {
	for opening := 0.0; opening <= 30; opening++ {
		for _, minStock := range []*float64{nil, ptr(0), ptr(5), ptr(25)} {
			it := item("X", opening, nil, map[string]float64{"01": 3})
			it.MinStock = minStock
			c := inventory.ClassifyStock(it, inventory.DefaultMinStock)

			comfortable := c.IsAvailable && !c.IsLowStock
			count := 0
			for _, b := range []bool{c.IsShortage, c.IsLowStock, comfortable} {
				if b {
					count++
				}
			}
			require.Equal(t, 1, count, "opening=%v minStock=%v", opening, minStock)
			assert.Equal(t, c.IsAvailable, !c.IsShortage)
			if c.IsLowStock {
				assert.True(t, c.IsAvailable, "low stock implica disponible")
			}
		}
	}
}

func TestClassifyStock_StockCeroEsShortage(t *testing.T) {
	it := item("X", 5, nil, map[string]float64{"01": 5})
	c := inventory.ClassifyStock(it, inventory.DefaultMinStock)
	assert.Equal(t, int64(0), c.CurrentStock)
	assert.True(t, c.IsShortage)
	assert.False(t, c.IsLowStock)
	assert.False(t, c.IsAvailable)
	assert.Equal(t, inventory.StatusShortage, c.Status())
}

func TestClassifyStock_UmbralPorDefectoYPropio(t *testing.T) {
	it := item("X", 10, nil, nil)
	assert.True(t, inventory.ClassifyStock(it, inventory.DefaultMinStock).IsLowStock, "10 <= 10")

	it.MinStock = ptr(5)
	c := inventory.ClassifyStock(it, inventory.DefaultMinStock)
	assert.False(t, c.IsLowStock)
	assert.Equal(t, inventory.StatusAvailable, c.Status())

	assert.False(t, inventory.ClassifyStock(nil, inventory.DefaultMinStock).IsAvailable)
}

// Escenario: 20 + 5 − 3 − 22 = 0 → shortage.
func TestClassifyStock_EscenarioShortage(t *testing.T) {
	it := item("Omeprazol", 20, map[string]float64{"01": 5}, map[string]float64{"01": 3, "02": 22})
	assert.Equal(t, int64(0), inventory.ComputeCurrentStock(it))

	c := inventory.ClassifyStock(it, inventory.DefaultMinStock)
	assert.True(t, c.IsShortage)
	assert.False(t, c.IsAvailable)
	assert.False(t, c.IsLowStock)
}

// Escenario: 100 − 95 = 5 con minStock 10 → low stock.
func TestClassifyStock_EscenarioLowStock(t *testing.T) {
	it := item("Metformina", 100, nil, map[string]float64{"01": 95})
	it.MinStock = ptr(10)

	c := inventory.ClassifyStock(it, inventory.DefaultMinStock)
	assert.Equal(t, int64(5), c.CurrentStock)
	assert.True(t, c.IsLowStock)
	assert.False(t, c.IsShortage)
	assert.Equal(t, inventory.StatusLowStock, c.Status())
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateStats
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateStats_ListaVacia(t *testing.T) {
	assert.Equal(t, inventory.Stats{}, inventory.AggregateStats(nil, inventory.DefaultMinStock))
}

func TestAggregateStats_SoloMarcadores(t *testing.T) {
	items := []entity.InventoryItem{
		entity.NewInventoryItem(""),
		entity.NewInventoryItem("   "),
	}
	s := inventory.AggregateStats(items, inventory.DefaultMinStock)
	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, inventory.Stats{}, s)
}

func TestAggregateStats_Conteos(t *testing.T) {
	items := []entity.InventoryItem{
		*item("shortage", 0, nil, nil),
		*item("low", 5, nil, nil),
		*item("ok", 50, nil, nil),
		*item("", 50, nil, nil),
	}
	s := inventory.AggregateStats(items, inventory.DefaultMinStock)
	assert.Equal(t, inventory.Stats{TotalItems: 3, Shortages: 1, Available: 2, LowStock: 1}, s)

	// El orden no afecta el resultado.
	reversed := []entity.InventoryItem{items[3], items[2], items[1], items[0]}
	assert.Equal(t, s, inventory.AggregateStats(reversed, inventory.DefaultMinStock))
}

// ──────────────────────────────────────────────────────────────────────────────
// StockValue y umbrales de farmacia
// ──────────────────────────────────────────────────────────────────────────────

func TestStockValue(t *testing.T) {
	it := item("X", 4, nil, nil)
	it.UnitPrice = 2.5
	assert.True(t, decimal.NewFromInt(10).Equal(inventory.StockValue(it)))

	it.DailyDispense["01"] = 10
	assert.True(t, inventory.StockValue(it).IsZero(), "stock negativo vale cero")
}

func TestHighShortage(t *testing.T) {
	assert.False(t, inventory.HighShortage(inventory.Stats{}, inventory.DefaultHighShortageRatio))
	assert.False(t, inventory.HighShortage(inventory.Stats{TotalItems: 10, LowStock: 2}, 0.2), "2 no supera 2")
	assert.True(t, inventory.HighShortage(inventory.Stats{TotalItems: 10, LowStock: 3}, 0.2))
}

func TestAttendanceAlert(t *testing.T) {
	assert.InDelta(t, 75.0, inventory.AttendanceRate(3, 4), 0.0001)
	assert.Equal(t, 0.0, inventory.AttendanceRate(0, 0))
	assert.True(t, inventory.AttendanceAlert(75, 4, inventory.DefaultAttendanceAlertThreshold))
	assert.False(t, inventory.AttendanceAlert(80, 5, inventory.DefaultAttendanceAlertThreshold))
	assert.False(t, inventory.AttendanceAlert(0, 0, inventory.DefaultAttendanceAlertThreshold), "sin registros no alerta")
}
