package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

var (
	_ inventory.SheetStore   = (*InventoryStore)(nil)
	_ inventory.SheetUpdater = (*InventoryStore)(nil)
)

// StatusNotifier recibe el aviso de que el almacén dejó de responder (lo implementa Monitor).
type StatusNotifier interface {
	MarkOffline()
}

// InventoryStore decora el repositorio remoto de hojas con caché local y cola offline.
// Implementa inventory.SheetStore.
type InventoryStore struct {
	remote   repository.InventoryRepository
	cache    repository.SheetCache
	queue    *Queue
	notifier StatusNotifier
	log      *logger.Logger
}

// NewInventoryStore construye el decorador. notifier puede ser nil.
func NewInventoryStore(
	remote repository.InventoryRepository,
	cache repository.SheetCache,
	queue *Queue,
	notifier StatusNotifier,
	log *logger.Logger,
) *InventoryStore {
	return &InventoryStore{remote: remote, cache: cache, queue: queue, notifier: notifier, log: log}
}

// FetchItems lee del almacén y refresca el caché. Si el almacén no responde devuelve
// la copia local (vacía si no hay). Si hay escrituras encoladas para la hoja, la copia
// local es la versión más reciente y se prefiere a la remota.
func (s *InventoryStore) FetchItems(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	items, err := s.remote.FetchItems(ctx, tenantID, pharmacyID, month)
	if err != nil {
		if !isUnavailable(err) {
			return nil, err
		}
		s.markOffline()
		cached, _, cerr := s.cache.GetSheet(ctx, tenantID, pharmacyID, month)
		if cerr != nil {
			s.log.Error().Err(cerr).Msg("offline: no se pudo leer el caché local")
			return nil, err
		}
		if cached == nil {
			cached = []entity.InventoryItem{}
		}
		return cached, nil
	}

	target := &entity.PendingWrite{TenantID: tenantID, Kind: entity.PendingInventoryReplace, PharmacyID: pharmacyID, Month: month}
	if pending, perr := s.queue.HasPending(ctx, target); perr == nil && pending {
		if cached, ok, cerr := s.cache.GetSheet(ctx, tenantID, pharmacyID, month); cerr == nil && ok {
			return cached, nil
		}
	}

	sheet := &entity.InventorySheet{TenantID: tenantID, PharmacyID: pharmacyID, Month: month, Items: items}
	if cerr := s.cache.PutSheet(ctx, sheet); cerr != nil {
		s.log.Warn().Err(cerr).Str("pharmacy_id", pharmacyID).Str("month", month).
			Msg("offline: no se pudo refrescar el caché local")
	}
	return items, nil
}

// SaveItems escribe en el almacén; si no responde (o ya hay escrituras encoladas para la
// hoja) encola la lista completa y actualiza el caché. El llamador recibe Queued = true.
func (s *InventoryStore) SaveItems(ctx context.Context, sheet *entity.InventorySheet) (inventory.SaveResult, error) {
	target := &entity.PendingWrite{
		TenantID:   sheet.TenantID,
		Kind:       entity.PendingInventoryReplace,
		PharmacyID: sheet.PharmacyID,
		Month:      sheet.Month,
	}
	pending, err := s.queue.HasPending(ctx, target)
	if err != nil {
		return inventory.SaveResult{}, fmt.Errorf("offline: consultar cola: %w", err)
	}
	if !pending {
		err := s.remote.SaveItems(ctx, sheet)
		if err == nil {
			s.putCache(ctx, sheet)
			return inventory.SaveResult{}, nil
		}
		if !isUnavailable(err) {
			return inventory.SaveResult{}, err
		}
		s.markOffline()
	}

	payload, err := json.Marshal(sheet.Items)
	if err != nil {
		return inventory.SaveResult{}, fmt.Errorf("offline: serializar ítems: %w", err)
	}
	target.Payload = payload
	target.CreatedAt = sheet.UpdatedAt
	if err := s.queue.Enqueue(ctx, target); err != nil {
		return inventory.SaveResult{}, err
	}
	s.putCache(ctx, sheet)
	return inventory.SaveResult{Queued: true}, nil
}

// UpdateItems edita la hoja dentro de una transacción remota cuando el almacén responde
// y no hay escrituras encoladas para ella; si no, aplica fn sobre la copia local y encola.
func (s *InventoryStore) UpdateItems(ctx context.Context, sheet *entity.InventorySheet, fn repository.ItemsUpdateFunc) (inventory.SaveResult, error) {
	target := &entity.PendingWrite{
		TenantID:   sheet.TenantID,
		Kind:       entity.PendingInventoryReplace,
		PharmacyID: sheet.PharmacyID,
		Month:      sheet.Month,
	}
	pending, err := s.queue.HasPending(ctx, target)
	if err != nil {
		return inventory.SaveResult{}, fmt.Errorf("offline: consultar cola: %w", err)
	}
	if up, ok := s.remote.(repository.InventoryUpdater); ok && !pending {
		err := up.UpdateItems(ctx, sheet, fn)
		if err == nil {
			s.putCache(ctx, sheet)
			return inventory.SaveResult{}, nil
		}
		if !isUnavailable(err) {
			return inventory.SaveResult{}, err
		}
		s.markOffline()
	}

	current, err := s.FetchItems(ctx, sheet.TenantID, sheet.PharmacyID, sheet.Month)
	if err != nil {
		return inventory.SaveResult{}, err
	}
	items, err := fn(current)
	if err != nil {
		return inventory.SaveResult{}, err
	}
	sheet.Items = items
	return s.SaveItems(ctx, sheet)
}

func (s *InventoryStore) putCache(ctx context.Context, sheet *entity.InventorySheet) {
	if err := s.cache.PutSheet(ctx, sheet); err != nil {
		s.log.Warn().Err(err).Str("pharmacy_id", sheet.PharmacyID).Str("month", sheet.Month).
			Msg("offline: no se pudo actualizar el caché local")
	}
}

func (s *InventoryStore) markOffline() {
	if s.notifier != nil {
		s.notifier.MarkOffline()
	}
}

func isUnavailable(err error) bool {
	return errors.Is(err, domain.ErrStoreUnavailable)
}
