package offline_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPending struct {
	mu   sync.Mutex
	seq  int64
	rows map[string]*entity.PendingWrite
}

func newMemPending() *memPending { return &memPending{rows: map[string]*entity.PendingWrite{}} }

func (m *memPending) Append(_ context.Context, w *entity.PendingWrite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cp := *w
	cp.Seq = m.seq
	m.rows[w.ID] = &cp
	return nil
}

func (m *memPending) ListPending(_ context.Context, limit int) ([]*entity.PendingWrite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.PendingWrite, 0, len(m.rows))
	for _, w := range m.rows {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memPending) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memPending) MarkFailed(_ context.Context, id, lastError string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.rows[id]; ok {
		w.Attempts++
		w.LastError = lastError
	}
	return nil
}

func (m *memPending) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func (m *memPending) HasPending(_ context.Context, target *entity.PendingWrite) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.rows {
		if w.TargetKey() == target.TargetKey() {
			return true, nil
		}
	}
	return false, nil
}

// remoteSheets almacén remoto simulado que puede estar caído.
type remoteSheets struct {
	mu     sync.Mutex
	down   bool
	sheets map[string][]entity.InventoryItem
	writes int
	txs    int
}

func newRemote() *remoteSheets { return &remoteSheets{sheets: map[string][]entity.InventoryItem{}} }

func sheetKey(tenantID, pharmacyID, month string) string {
	return tenantID + "/" + pharmacyID + "/" + month
}

func (r *remoteSheets) setDown(down bool) {
	r.mu.Lock()
	r.down = down
	r.mu.Unlock()
}

func (r *remoteSheets) FetchItems(_ context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return nil, domain.ErrStoreUnavailable
	}
	return r.sheets[sheetKey(tenantID, pharmacyID, month)], nil
}

func (r *remoteSheets) SaveItems(_ context.Context, s *entity.InventorySheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return domain.ErrStoreUnavailable
	}
	r.writes++
	r.sheets[sheetKey(s.TenantID, s.PharmacyID, s.Month)] = s.Items
	return nil
}

// UpdateItems transacción simulada: lee y escribe bajo el mismo lock.
func (r *remoteSheets) UpdateItems(_ context.Context, s *entity.InventorySheet, fn repository.ItemsUpdateFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return domain.ErrStoreUnavailable
	}
	r.txs++
	k := sheetKey(s.TenantID, s.PharmacyID, s.Month)
	items, err := fn(append([]entity.InventoryItem(nil), r.sheets[k]...))
	if err != nil {
		return err
	}
	s.Items = items
	r.writes++
	r.sheets[k] = items
	return nil
}

func (r *remoteSheets) Ping(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return domain.ErrStoreUnavailable
	}
	return nil
}

type memCache struct {
	sheets map[string][]entity.InventoryItem
}

func newMemCache() *memCache { return &memCache{sheets: map[string][]entity.InventoryItem{}} }

func (c *memCache) GetSheet(_ context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, bool, error) {
	items, ok := c.sheets[sheetKey(tenantID, pharmacyID, month)]
	return items, ok, nil
}

func (c *memCache) PutSheet(_ context.Context, s *entity.InventorySheet) error {
	c.sheets[sheetKey(s.TenantID, s.PharmacyID, s.Month)] = s.Items
	return nil
}

type memPages struct {
	down  bool
	saved map[string][]entity.InventoryItem
}

func (p *memPages) Create(context.Context, *entity.CustomPage) error { return nil }
func (p *memPages) GetByID(context.Context, string, string) (*entity.CustomPage, error) {
	return nil, domain.ErrNotFound
}
func (p *memPages) List(context.Context, string, string) ([]*entity.CustomPage, error) {
	return nil, nil
}
func (p *memPages) SaveItems(_ context.Context, page *entity.CustomPage) error {
	if p.down {
		return domain.ErrStoreUnavailable
	}
	if p.saved == nil {
		p.saved = map[string][]entity.InventoryItem{}
	}
	p.saved[page.ID] = page.Items
	return nil
}
func (p *memPages) Delete(context.Context, string, string) error { return nil }

func named(name string, opening float64) entity.InventoryItem {
	it := entity.NewInventoryItem(name)
	it.Opening = opening
	return it
}
