package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

func TestNeedsRestock_OrdenYPrioridad(t *testing.T) {
	store := newMemStore()
	store.put(tnt, ph, month,
		stocked("Ibuprofeno", 2, 0),  // promedio 10 (sin historial) → need 8
		stocked("Amoxicilina", 4, 0), // promedio 12 → need 8
		stocked("Loratadina", 30, 0), // promedio 10 → no requiere
		stocked("Omeprazol", 10, 0),  // promedio 10 → need 0, stock == promedio
		entity.NewInventoryItem(""),
	)
	consumption := &memConsumption{history: entity.ConsumptionHistory{
		"Amoxicilina": {ItemName: "Amoxicilina", Months: map[string]float64{"2024-03": 12, "2024-04": 12, "2024-05": 12}},
	}}
	uc := inventory.NewRestockUseCase(store, consumption, inventory.DefaultSettings())

	got, err := uc.NeedsRestock(context.Background(), tnt, ph, month)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Amoxicilina", got[0].Name, "empate en need se ordena por nombre")
	assert.Equal(t, int64(8), got[0].Need)
	assert.Equal(t, int64(12), got[0].TrailingMean)
	assert.Equal(t, 1, got[0].Priority)

	assert.Equal(t, "Ibuprofeno", got[1].Name)
	assert.Equal(t, int64(10), got[1].TrailingMean)
	assert.Equal(t, 2, got[1].Priority)

	assert.Equal(t, "Omeprazol", got[2].Name)
	assert.Equal(t, int64(0), got[2].Need)
	assert.Equal(t, 3, got[2].Priority)
}

func TestNeedsRestock_HojaVacia(t *testing.T) {
	uc := inventory.NewRestockUseCase(newMemStore(), &memConsumption{}, inventory.DefaultSettings())
	got, err := uc.NeedsRestock(context.Background(), tnt, ph, month)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNeedsRestock_FallbackConfigurable(t *testing.T) {
	store := newMemStore()
	store.put(tnt, ph, month, stocked("A", 3, 0))
	settings := inventory.DefaultSettings()
	settings.FallbackMean = 2
	uc := inventory.NewRestockUseCase(store, &memConsumption{}, settings)

	got, err := uc.NeedsRestock(context.Background(), tnt, ph, month)
	require.NoError(t, err)
	assert.Empty(t, got, "stock 3 > promedio 2")
}
