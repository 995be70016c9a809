package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

func TestValidMonth(t *testing.T) {
	assert.True(t, entity.ValidMonth("2024-02"))
	assert.False(t, entity.ValidMonth("2024-2"))
	assert.False(t, entity.ValidMonth("2024-13"))
	assert.False(t, entity.ValidMonth("02-2024"))
	assert.False(t, entity.ValidMonth(""))
}

func TestDayLabels(t *testing.T) {
	assert.Len(t, entity.DayLabels("2024-02"), 29, "2024 es bisiesto")
	assert.Len(t, entity.DayLabels("2023-02"), 28)
	assert.Equal(t, "01", entity.DayLabels("2024-04")[0])
	assert.Equal(t, "30", entity.DayLabels("2024-04")[29])
	assert.Empty(t, entity.DayLabels("inválido"))
}

func TestValidDayLabel(t *testing.T) {
	assert.True(t, entity.ValidDayLabel("2024-01", "31"))
	assert.False(t, entity.ValidDayLabel("2024-04", "31"))
	assert.False(t, entity.ValidDayLabel("2024-04", "00"))
	assert.False(t, entity.ValidDayLabel("2024-04", "1"))
	assert.False(t, entity.ValidDayLabel("2024-04", "a1"))
	assert.False(t, entity.ValidDayLabel("xx", "01"))
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10", entity.CurrentMonth(now))
}

func TestInventoryItemClone_NoCompartenMapas(t *testing.T) {
	minStock := 4.0
	a := entity.NewInventoryItem("X")
	a.DailyIncoming["01"] = 3
	a.MinStock = &minStock

	b := a.Clone()
	b.DailyIncoming["01"] = 99
	*b.MinStock = 1

	assert.Equal(t, 3.0, a.DailyIncoming["01"])
	assert.Equal(t, 4.0, *a.MinStock)
}
