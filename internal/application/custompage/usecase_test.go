package custompage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/custompage"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

type memPages struct{ byID map[string]*entity.CustomPage }

func newMemPages() *memPages { return &memPages{byID: map[string]*entity.CustomPage{}} }

func (m *memPages) Create(_ context.Context, p *entity.CustomPage) error {
	m.byID[p.ID] = p
	return nil
}
func (m *memPages) GetByID(_ context.Context, tenantID, id string) (*entity.CustomPage, error) {
	p, ok := m.byID[id]
	if !ok || p.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	cp := *p
	cp.Items = inventory.CloneItems(p.Items)
	return &cp, nil
}
func (m *memPages) List(_ context.Context, tenantID, pharmacyID string) ([]*entity.CustomPage, error) {
	var out []*entity.CustomPage
	for _, p := range m.byID {
		if p.TenantID == tenantID && (pharmacyID == "" || p.PharmacyID == pharmacyID) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m *memPages) SaveItems(_ context.Context, p *entity.CustomPage) error {
	m.byID[p.ID] = p
	return nil
}
func (m *memPages) Delete(_ context.Context, _, id string) error {
	delete(m.byID, id)
	return nil
}

type queueingWriter struct{ saved int }

func (w *queueingWriter) SaveItems(context.Context, *entity.CustomPage) (inventory.SaveResult, error) {
	w.saved++
	return inventory.SaveResult{Queued: true}, nil
}

func TestCreateYGet_ClasificaIgualQueInventario(t *testing.T) {
	uc := custompage.NewUseCase(newMemPages(), nil, inventory.DefaultSettings())
	ctx := context.Background()

	page, err := uc.Create(ctx, "owner-1", dto.CreatePageRequest{
		PharmacyID: "p1",
		Title:      "Refrigerados",
		Month:      "2024-06",
		Items: []dto.ItemInput{
			{Name: "Insulina", Opening: 20, DailyIncoming: map[string]dto.FlexNumber{"01": 5},
				DailyDispense: map[string]dto.FlexNumber{"01": 3, "02": 22}},
			{Name: "Vacuna", Opening: 100, DailyDispense: map[string]dto.FlexNumber{"01": 95}},
		},
	})
	require.NoError(t, err)

	got, err := uc.Get(ctx, "owner-1", page.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.True(t, got.Items[0].IsShortage)
	assert.Equal(t, int64(0), got.Items[0].CurrentStock)
	assert.True(t, got.Items[1].IsLowStock)
	assert.Equal(t, int64(5), got.Items[1].CurrentStock)
	assert.Equal(t, 2, got.Stats.TotalItems)
}

func TestCreate_MesPorDefectoYValidaciones(t *testing.T) {
	uc := custompage.NewUseCase(newMemPages(), nil, inventory.DefaultSettings())
	ctx := context.Background()

	page, err := uc.Create(ctx, "owner-1", dto.CreatePageRequest{PharmacyID: "p1", Title: "Varios"})
	require.NoError(t, err)
	assert.Equal(t, entity.CurrentMonth(time.Now().UTC()), page.Month)

	_, err = uc.Create(ctx, "owner-1", dto.CreatePageRequest{PharmacyID: "p1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, "owner-1", dto.CreatePageRequest{PharmacyID: "p1", Title: "X",
		Items: []dto.ItemInput{{Name: "A"}, {Name: "A"}}})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, "", dto.CreatePageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestReplaceItems_UsaElEscritorYMarcaEncolado(t *testing.T) {
	pages := newMemPages()
	writer := &queueingWriter{}
	uc := custompage.NewUseCase(pages, writer, inventory.DefaultSettings())
	ctx := context.Background()

	page, err := uc.Create(ctx, "owner-1", dto.CreatePageRequest{PharmacyID: "p1", Title: "X", Month: "2024-02"})
	require.NoError(t, err)

	it := entity.NewInventoryItem("A")
	it.Opening = 50
	out, err := uc.ReplaceItems(ctx, "owner-1", page.ID, []entity.InventoryItem{it})
	require.NoError(t, err)
	assert.True(t, out.Queued)
	assert.Equal(t, 1, writer.saved)
	assert.Equal(t, 1, out.Stats.Available)

	bad := entity.NewInventoryItem("B")
	bad.DailyDispense["30"] = 1
	_, err = uc.ReplaceItems(ctx, "owner-1", page.ID, []entity.InventoryItem{bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "febrero no tiene día 30")
}

func TestListYDelete(t *testing.T) {
	uc := custompage.NewUseCase(newMemPages(), nil, inventory.DefaultSettings())
	ctx := context.Background()
	b, err := uc.Create(ctx, "owner-1", dto.CreatePageRequest{PharmacyID: "p1", Title: "B", Month: "2024-06"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "owner-1", dto.CreatePageRequest{PharmacyID: "p1", Title: "A", Month: "2024-06"})
	require.NoError(t, err)

	list, err := uc.List(ctx, "owner-1", "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)

	require.NoError(t, uc.Delete(ctx, "owner-1", b.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "owner-1", b.ID), domain.ErrNotFound)
	_, err = uc.Get(ctx, "otro", list[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
