package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

func record(months map[string]float64) *entity.MonthlyConsumptionRecord {
	return &entity.MonthlyConsumptionRecord{ItemName: "X", Months: months}
}

func TestTrailingMean_SinHistorialDevuelveFallback(t *testing.T) {
	assert.Equal(t, int64(10), inventory.TrailingMean(record(map[string]float64{}), 3, inventory.DefaultFallbackMean))
	assert.Equal(t, int64(10), inventory.TrailingMean(nil, 3, inventory.DefaultFallbackMean))
	assert.Equal(t, int64(7), inventory.TrailingMean(record(nil), 3, 7))
}

func TestTrailingMean_IgnoraCerosYNegativos(t *testing.T) {
	r := record(map[string]float64{"2024-01": 0, "2024-02": 0, "2024-03": 5})
	assert.Equal(t, int64(5), inventory.TrailingMean(r, 3, 10))

	allZero := record(map[string]float64{"2024-01": 0, "2024-02": -3})
	assert.Equal(t, int64(10), inventory.TrailingMean(allZero, 3, 10))
}

func TestTrailingMean_Escenario(t *testing.T) {
	r := record(map[string]float64{"2024-04": 12, "2024-05": 8, "2024-06": 10})
	assert.Equal(t, int64(10), inventory.TrailingMean(r, 3, 10))
}

func TestTrailingMean_SoloUltimosMeses(t *testing.T) {
	r := record(map[string]float64{
		"2023-11": 1000,
		"2023-12": 1000,
		"2024-01": 4,
		"2024-02": 5,
		"2024-03": 7,
	})
	// floor((4+5+7)/3) = 5; los meses de 2023 quedan fuera de la ventana.
	assert.Equal(t, int64(5), inventory.TrailingMean(r, 3, 10))
	// Ventana inválida usa la de por defecto.
	assert.Equal(t, int64(5), inventory.TrailingMean(r, 0, 10))
}

func TestTrailingMean_MenosMesesQueVentana(t *testing.T) {
	r := record(map[string]float64{"2024-05": 3, "2024-06": 4})
	assert.Equal(t, int64(3), inventory.TrailingMean(r, 3, 10), "floor(7/2) sin rellenar con ceros")
}

func TestTrailingMean_OrdenCronologicoEntreAnios(t *testing.T) {
	r := record(map[string]float64{"2023-12": 30, "2024-01": 6, "2024-02": 0})
	assert.Equal(t, int64(6), inventory.TrailingMean(r, 2, 10), "últimos dos: 2024-01 y 2024-02 (cero descartado)")
}

func TestTrailingMean_SaturaFueraDeRango(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), inventory.TrailingMean(record(map[string]float64{"2024-01": 1e300}), 3, 10))
	assert.Equal(t, int64(math.MaxInt64), inventory.TrailingMean(record(map[string]float64{"2024-01": 1e19, "2024-02": 3e19}), 3, 10))
}

func TestRestockNeed_SinDesbordamiento(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), inventory.RestockNeed(math.MaxInt64, -5))
	assert.Equal(t, int64(math.MaxInt64), inventory.RestockNeed(math.MaxInt64, math.MinInt64))
	assert.Equal(t, int64(0), inventory.RestockNeed(math.MaxInt64, math.MaxInt64))
}

func TestRestockNeedYNeedsAttention(t *testing.T) {
	assert.Equal(t, int64(7), inventory.RestockNeed(10, 3))
	assert.Equal(t, int64(0), inventory.RestockNeed(10, 15))
	assert.Equal(t, int64(12), inventory.RestockNeed(10, -2))

	assert.True(t, inventory.NeedsAttention(10, 10))
	assert.True(t, inventory.NeedsAttention(-1, 0))
	assert.False(t, inventory.NeedsAttention(11, 10))
}
