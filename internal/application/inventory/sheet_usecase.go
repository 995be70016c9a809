// Package inventory contiene los casos de uso sobre las hojas de inventario mensuales:
// lectura con estado de stock derivado, edición de ítems y lista de reposición.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/tenant"
)

// SheetUseCase lectura y edición de la hoja de inventario de una farmacia para un mes.
// Toda edición lee la lista, la modifica y la persiste completa (reemplazo, no parche).
// Las ediciones concurrentes de una misma hoja no se pisan entre sí.
type SheetUseCase struct {
	store    SheetStore
	settings Settings
	now      func() time.Time
	locks    *sheetLocks
}

// NewSheetUseCase construye el caso de uso.
func NewSheetUseCase(store SheetStore, settings Settings) *SheetUseCase {
	return &SheetUseCase{store: store, settings: settings.normalized(), now: time.Now, locks: newSheetLocks()}
}

// GetSheet devuelve la hoja con filas clasificadas y estadísticas. Sin datos = hoja vacía.
func (uc *SheetUseCase) GetSheet(ctx context.Context, tenantID, pharmacyID, month string) (*dto.SheetDTO, error) {
	if err := ValidateScope(tenantID, pharmacyID, month); err != nil {
		return nil, err
	}
	items, err := uc.store.FetchItems(ctx, tenantID, pharmacyID, month)
	if err != nil {
		return nil, fmt.Errorf("inventario: leer hoja: %w", err)
	}
	return uc.toDTO(pharmacyID, month, items), nil
}

// Stats estadísticas agregadas de la hoja.
func (uc *SheetUseCase) Stats(ctx context.Context, tenantID, pharmacyID, month string) (*dto.StatsDTO, error) {
	if err := ValidateScope(tenantID, pharmacyID, month); err != nil {
		return nil, err
	}
	items, err := uc.store.FetchItems(ctx, tenantID, pharmacyID, month)
	if err != nil {
		return nil, fmt.Errorf("inventario: leer hoja: %w", err)
	}
	st := StatsOf(items, uc.settings)
	return &st, nil
}

// AddItem agrega un ítem con todas las cantidades en cero.
func (uc *SheetUseCase) AddItem(ctx context.Context, tenantID, pharmacyID, month, name string) (*dto.SheetDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, tenantID, pharmacyID, month, func(items []entity.InventoryItem) ([]entity.InventoryItem, error) {
		if indexOf(items, name) >= 0 {
			return nil, domain.ErrDuplicate
		}
		return append(items, entity.NewInventoryItem(name)), nil
	})
}

// UpdateItem aplica los campos presentes en patch al ítem indicado.
func (uc *SheetUseCase) UpdateItem(ctx context.Context, tenantID, pharmacyID, month, name string, patch dto.UpdateItemRequest) (*dto.SheetDTO, error) {
	return uc.mutate(ctx, tenantID, pharmacyID, month, func(items []entity.InventoryItem) ([]entity.InventoryItem, error) {
		i := indexOf(items, name)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		if err := ApplyPatch(items, i, patch); err != nil {
			return nil, err
		}
		return items, nil
	})
}

// RecordMovement fija la cantidad recibida o dispensada de un día.
func (uc *SheetUseCase) RecordMovement(ctx context.Context, tenantID, pharmacyID, month string, req dto.MovementRequest) (*dto.SheetDTO, error) {
	if !entity.ValidDayLabel(month, req.Day) {
		return nil, domain.ErrInvalidInput
	}
	if req.Type != dto.MovementIncoming && req.Type != dto.MovementDispense {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(ctx, tenantID, pharmacyID, month, func(items []entity.InventoryItem) ([]entity.InventoryItem, error) {
		i := indexOf(items, req.ItemName)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		target := items[i].DailyIncoming
		if req.Type == dto.MovementDispense {
			target = items[i].DailyDispense
		}
		if q := req.Quantity.Float64(); q > 0 {
			target[req.Day] = q
		} else {
			delete(target, req.Day)
		}
		return items, nil
	})
}

// RemoveItem elimina el ítem de la hoja.
func (uc *SheetUseCase) RemoveItem(ctx context.Context, tenantID, pharmacyID, month, name string) (*dto.SheetDTO, error) {
	return uc.mutate(ctx, tenantID, pharmacyID, month, func(items []entity.InventoryItem) ([]entity.InventoryItem, error) {
		i := indexOf(items, name)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

// ReplaceItems persiste la lista completa enviada por el cliente.
// Se admiten filas de marcador (nombre vacío); los nombres no vacíos deben ser únicos.
func (uc *SheetUseCase) ReplaceItems(ctx context.Context, tenantID, pharmacyID, month string, items []entity.InventoryItem) (*dto.SheetDTO, error) {
	if err := ValidateScope(tenantID, pharmacyID, month); err != nil {
		return nil, err
	}
	if err := ValidateItems(month, items); err != nil {
		return nil, err
	}
	return uc.save(ctx, tenantID, pharmacyID, month, items)
}

// mutate aplica fn sobre una copia de la lista actual y guarda el resultado.
// Las ediciones de una misma hoja se serializan en el proceso; si el almacén ofrece
// SheetUpdater, la lectura y la escritura además van en una sola transacción.
func (uc *SheetUseCase) mutate(
	ctx context.Context,
	tenantID, pharmacyID, month string,
	fn func([]entity.InventoryItem) ([]entity.InventoryItem, error),
) (*dto.SheetDTO, error) {
	if err := ValidateScope(tenantID, pharmacyID, month); err != nil {
		return nil, err
	}
	unlock := uc.locks.lock(tenantID + "/" + pharmacyID + "/" + month)
	defer unlock()

	var fnErr error
	apply := func(current []entity.InventoryItem) ([]entity.InventoryItem, error) {
		items, err := fn(CloneItems(current))
		fnErr = err
		return items, err
	}

	sheet := uc.newSheet(ctx, tenantID, pharmacyID, month, nil)
	if up, ok := uc.store.(SheetUpdater); ok {
		res, err := up.UpdateItems(ctx, sheet, apply)
		if fnErr != nil {
			return nil, fnErr
		}
		if err != nil {
			return nil, fmt.Errorf("inventario: actualizar hoja: %w", err)
		}
		return uc.saved(pharmacyID, month, sheet.Items, res), nil
	}

	current, err := uc.store.FetchItems(ctx, tenantID, pharmacyID, month)
	if err != nil {
		return nil, fmt.Errorf("inventario: leer hoja: %w", err)
	}
	items, err := apply(current)
	if err != nil {
		return nil, err
	}
	sheet.Items = items
	return uc.persist(ctx, sheet)
}

func (uc *SheetUseCase) save(ctx context.Context, tenantID, pharmacyID, month string, items []entity.InventoryItem) (*dto.SheetDTO, error) {
	unlock := uc.locks.lock(tenantID + "/" + pharmacyID + "/" + month)
	defer unlock()
	return uc.persist(ctx, uc.newSheet(ctx, tenantID, pharmacyID, month, items))
}

func (uc *SheetUseCase) persist(ctx context.Context, sheet *entity.InventorySheet) (*dto.SheetDTO, error) {
	res, err := uc.store.SaveItems(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("inventario: guardar hoja: %w", err)
	}
	return uc.saved(sheet.PharmacyID, sheet.Month, sheet.Items, res), nil
}

func (uc *SheetUseCase) newSheet(ctx context.Context, tenantID, pharmacyID, month string, items []entity.InventoryItem) *entity.InventorySheet {
	return &entity.InventorySheet{
		TenantID:   tenantID,
		PharmacyID: pharmacyID,
		Month:      month,
		Items:      items,
		UpdatedAt:  uc.now().UTC(),
		UpdatedBy:  tenant.UserFrom(ctx),
	}
}

func (uc *SheetUseCase) saved(pharmacyID, month string, items []entity.InventoryItem, res SaveResult) *dto.SheetDTO {
	out := uc.toDTO(pharmacyID, month, items)
	out.Queued = res.Queued
	return out
}

func (uc *SheetUseCase) toDTO(pharmacyID, month string, items []entity.InventoryItem) *dto.SheetDTO {
	v := BuildView(items, uc.settings)
	return &dto.SheetDTO{
		PharmacyID: pharmacyID,
		Month:      month,
		Items:      v.Rows,
		Stats:      v.Stats,
		TotalValue: v.TotalValue,
	}
}

// sheetLocks mutex por hoja; la entrada se libera cuando nadie la espera.
type sheetLocks struct {
	mu sync.Mutex
	m  map[string]*sheetLock
}

type sheetLock struct {
	sync.Mutex
	refs int
}

func newSheetLocks() *sheetLocks {
	return &sheetLocks{m: map[string]*sheetLock{}}
}

func (l *sheetLocks) lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.m[key]
	if !ok {
		e = &sheetLock{}
		l.m[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.Lock()
	return func() {
		e.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, key)
		}
		l.mu.Unlock()
	}
}
