package inventory_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	sheets   map[string][]entity.InventoryItem
	saved    []*entity.InventorySheet
	fetchErr error
	saveErr  error
	queued   bool
}

func newMemStore() *memStore {
	return &memStore{sheets: map[string][]entity.InventoryItem{}}
}

func key(tenantID, pharmacyID, month string) string {
	return tenantID + "/" + pharmacyID + "/" + month
}

func (m *memStore) put(tenantID, pharmacyID, month string, items ...entity.InventoryItem) {
	m.sheets[key(tenantID, pharmacyID, month)] = items
}

func (m *memStore) FetchItems(_ context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return inventory.CloneItems(m.sheets[key(tenantID, pharmacyID, month)]), nil
}

func (m *memStore) SaveItems(_ context.Context, sheet *entity.InventorySheet) (inventory.SaveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return inventory.SaveResult{}, m.saveErr
	}
	m.sheets[key(sheet.TenantID, sheet.PharmacyID, sheet.Month)] = inventory.CloneItems(sheet.Items)
	m.saved = append(m.saved, sheet)
	return inventory.SaveResult{Queued: m.queued}, nil
}

// txStore memStore con lectura-modificación-escritura atómica.
type txStore struct {
	*memStore
	updates int
}

func (s *txStore) UpdateItems(_ context.Context, sheet *entity.InventorySheet, fn repository.ItemsUpdateFunc) (inventory.SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	k := key(sheet.TenantID, sheet.PharmacyID, sheet.Month)
	items, err := fn(inventory.CloneItems(s.sheets[k]))
	if err != nil {
		return inventory.SaveResult{}, err
	}
	sheet.Items = items
	s.sheets[k] = inventory.CloneItems(items)
	s.saved = append(s.saved, sheet)
	return inventory.SaveResult{Queued: s.queued}, nil
}

// memRepo repository.InventoryRepository sin transacciones.
type memRepo struct {
	sheets map[string][]entity.InventoryItem
}

func (r *memRepo) FetchItems(_ context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	return inventory.CloneItems(r.sheets[key(tenantID, pharmacyID, month)]), nil
}

func (r *memRepo) SaveItems(_ context.Context, sheet *entity.InventorySheet) error {
	r.sheets[key(sheet.TenantID, sheet.PharmacyID, sheet.Month)] = inventory.CloneItems(sheet.Items)
	return nil
}

// txRepo memRepo que además ofrece repository.InventoryUpdater.
type txRepo struct {
	memRepo
	updates int
}

func (r *txRepo) UpdateItems(ctx context.Context, sheet *entity.InventorySheet, fn repository.ItemsUpdateFunc) error {
	r.updates++
	current, _ := r.FetchItems(ctx, sheet.TenantID, sheet.PharmacyID, sheet.Month)
	items, err := fn(current)
	if err != nil {
		return err
	}
	sheet.Items = items
	return r.SaveItems(ctx, sheet)
}

type memConsumption struct {
	history entity.ConsumptionHistory
	err     error
}

func (m *memConsumption) History(context.Context, string) (entity.ConsumptionHistory, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.history == nil {
		return entity.ConsumptionHistory{}, nil
	}
	return m.history, nil
}

func (m *memConsumption) MergeMonths(_ context.Context, _ string, rec entity.MonthlyConsumptionRecord) error {
	if m.history == nil {
		m.history = entity.ConsumptionHistory{}
	}
	m.history[rec.ItemName] = rec
	return nil
}

func stocked(name string, opening float64, dispensed float64) entity.InventoryItem {
	it := entity.NewInventoryItem(name)
	it.Opening = opening
	if dispensed > 0 {
		it.DailyDispense["01"] = dispensed
	}
	return it
}
