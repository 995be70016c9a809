package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

type onePharmacy struct{ p *entity.Pharmacy }

func (o onePharmacy) Create(context.Context, *entity.Pharmacy) error { return nil }
func (o onePharmacy) GetByID(_ context.Context, tenantID, id string) (*entity.Pharmacy, error) {
	if o.p == nil || o.p.ID != id || o.p.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return o.p, nil
}
func (o onePharmacy) Update(context.Context, *entity.Pharmacy) error { return nil }
func (o onePharmacy) List(context.Context, string) ([]*entity.Pharmacy, error) {
	return []*entity.Pharmacy{o.p}, nil
}
func (o onePharmacy) Delete(context.Context, string, string) error { return nil }

type sheetOf []entity.InventoryItem

func (s sheetOf) FetchItems(context.Context, string, string, string) ([]entity.InventoryItem, error) {
	return s, nil
}
func (s sheetOf) SaveItems(context.Context, *entity.InventorySheet) (inventory.SaveResult, error) {
	return inventory.SaveResult{}, nil
}

type captureGenerator struct{ data report.InventoryReportData }

func (g *captureGenerator) GenerateInventoryPDF(_ context.Context, d report.InventoryReportData) ([]byte, error) {
	g.data = d
	return []byte("%PDF-1.3"), nil
}

type captureArchive struct {
	object string
	err    error
}

func (a *captureArchive) Upload(_ context.Context, object, _ string, _ []byte) error {
	a.object = object
	return a.err
}

func TestMonthlyInventoryPDF_GeneraYArchiva(t *testing.T) {
	it := entity.NewInventoryItem("A")
	it.Opening = 3
	gen := &captureGenerator{}
	arch := &captureArchive{err: errors.New("bucket caído")}
	uc := report.NewUseCase(
		onePharmacy{p: &entity.Pharmacy{ID: "p1", TenantID: "owner-1", Name: "Farmacia Central Ñ"}},
		sheetOf{it}, gen, arch, inventory.DefaultSettings(), logger.NewNop())

	pdf, name, err := uc.MonthlyInventoryPDF(context.Background(), "owner-1", "p1", "2024-06")
	require.NoError(t, err, "un fallo del bucket no se propaga")
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, "inventario_farmacia-central_2024-06.pdf", name)
	assert.Equal(t, "reports/owner-1/p1/inventario_farmacia-central_2024-06.pdf", arch.object)

	assert.Equal(t, 1, gen.data.View.Stats.LowStock)
	assert.Equal(t, "2024-06", gen.data.Month)
}

func TestMonthlyInventoryPDF_FarmaciaAjena(t *testing.T) {
	uc := report.NewUseCase(
		onePharmacy{p: &entity.Pharmacy{ID: "p1", TenantID: "owner-1"}},
		sheetOf{}, &captureGenerator{}, nil, inventory.DefaultSettings(), logger.NewNop())

	_, _, err := uc.MonthlyInventoryPDF(context.Background(), "owner-2", "p1", "2024-06")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, _, err = uc.MonthlyInventoryPDF(context.Background(), "owner-1", "p1", "06-2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
