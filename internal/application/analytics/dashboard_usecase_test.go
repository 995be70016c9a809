package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type pharmacyList struct {
	items []*entity.Pharmacy
	err   error
}

func (p *pharmacyList) Create(context.Context, *entity.Pharmacy) error { return nil }
func (p *pharmacyList) GetByID(context.Context, string, string) (*entity.Pharmacy, error) {
	return nil, domain.ErrNotFound
}
func (p *pharmacyList) Update(context.Context, *entity.Pharmacy) error { return nil }
func (p *pharmacyList) List(context.Context, string) ([]*entity.Pharmacy, error) {
	return p.items, p.err
}
func (p *pharmacyList) Delete(context.Context, string, string) error { return nil }

type sheetsByPharmacy struct {
	items map[string][]entity.InventoryItem
	errs  map[string]error
}

func (s *sheetsByPharmacy) FetchItems(_ context.Context, _, pharmacyID, _ string) ([]entity.InventoryItem, error) {
	if err := s.errs[pharmacyID]; err != nil {
		return nil, err
	}
	return s.items[pharmacyID], nil
}

func (s *sheetsByPharmacy) SaveItems(context.Context, *entity.InventorySheet) (inventory.SaveResult, error) {
	return inventory.SaveResult{}, nil
}

func withStock(name string, opening, price float64) entity.InventoryItem {
	it := entity.NewInventoryItem(name)
	it.Opening = opening
	it.UnitPrice = price
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_TotalesYFaltanteAlto(t *testing.T) {
	pharmacies := &pharmacyList{items: []*entity.Pharmacy{
		{ID: "p2", Name: "Norte"},
		{ID: "p1", Name: "Centro"},
	}}
	sheets := &sheetsByPharmacy{items: map[string][]entity.InventoryItem{
		"p1": {withStock("A", 50, 2), withStock("B", 50, 1), withStock("C", 50, 0), withStock("D", 50, 0), withStock("E", 5, 0)},
		"p2": {withStock("A", 0, 0), withStock("B", 3, 1)},
	}}
	uc := analytics.NewDashboardUseCase(pharmacies, sheets, inventory.DefaultSettings(), logger.NewNop())

	sum, err := uc.GetSummary(context.Background(), "owner-1", "2024-06")
	require.NoError(t, err)
	require.Len(t, sum.Pharmacies, 2)

	assert.Equal(t, "Centro", sum.Pharmacies[0].Name)
	assert.False(t, sum.Pharmacies[0].Stats.HighShortage, "1 de 5 no supera el 20 %")
	assert.True(t, sum.Pharmacies[1].Stats.HighShortage, "1 de 2 supera el 20 %")

	assert.Equal(t, 7, sum.Totals.TotalItems)
	assert.Equal(t, 1, sum.Totals.Shortages)
	assert.Equal(t, 2, sum.Totals.LowStock)
	assert.Equal(t, 1, sum.HighShortageCount)
	assert.Equal(t, "153", sum.TotalValue.String())
}

func TestGetSummary_FallaDeUnaHojaNoCortaElResumen(t *testing.T) {
	pharmacies := &pharmacyList{items: []*entity.Pharmacy{{ID: "p1", Name: "A"}, {ID: "p2", Name: "B"}}}
	sheets := &sheetsByPharmacy{
		items: map[string][]entity.InventoryItem{"p1": {withStock("X", 20, 0)}},
		errs:  map[string]error{"p2": errors.New("timeout")},
	}
	uc := analytics.NewDashboardUseCase(pharmacies, sheets, inventory.DefaultSettings(), logger.NewNop())

	sum, err := uc.GetSummary(context.Background(), "owner-1", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Totals.TotalItems)
	assert.Empty(t, sum.Pharmacies[0].Error)
	assert.Equal(t, "timeout", sum.Pharmacies[1].Error)
}

func TestGetSummary_Validaciones(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&pharmacyList{}, &sheetsByPharmacy{}, inventory.DefaultSettings(), logger.NewNop())

	_, err := uc.GetSummary(context.Background(), "", "2024-06")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = uc.GetSummary(context.Background(), "owner-1", "junio")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sum, err := uc.GetSummary(context.Background(), "owner-1", "2024-06")
	require.NoError(t, err)
	assert.Empty(t, sum.Pharmacies)
}
