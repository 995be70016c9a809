package offline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// PageStore escritura de ítems de páginas personalizadas con cola offline.
// Implementa custompage.ItemsWriter.
type PageStore struct {
	remote   repository.CustomPageRepository
	queue    *Queue
	notifier StatusNotifier
}

// NewPageStore construye el escritor.
func NewPageStore(remote repository.CustomPageRepository, queue *Queue, notifier StatusNotifier) *PageStore {
	return &PageStore{remote: remote, queue: queue, notifier: notifier}
}

// SaveItems mismo contrato que InventoryStore.SaveItems, para una página.
func (s *PageStore) SaveItems(ctx context.Context, page *entity.CustomPage) (inventory.SaveResult, error) {
	target := &entity.PendingWrite{
		TenantID:   page.TenantID,
		Kind:       entity.PendingPageReplace,
		PharmacyID: page.PharmacyID,
		Month:      page.Month,
		PageID:     page.ID,
	}
	pending, err := s.queue.HasPending(ctx, target)
	if err != nil {
		return inventory.SaveResult{}, fmt.Errorf("offline: consultar cola: %w", err)
	}
	if !pending {
		err := s.remote.SaveItems(ctx, page)
		if err == nil {
			return inventory.SaveResult{}, nil
		}
		if !isUnavailable(err) {
			return inventory.SaveResult{}, err
		}
		if s.notifier != nil {
			s.notifier.MarkOffline()
		}
	}

	payload, err := json.Marshal(page.Items)
	if err != nil {
		return inventory.SaveResult{}, fmt.Errorf("offline: serializar ítems: %w", err)
	}
	target.Payload = payload
	target.CreatedAt = page.UpdatedAt
	if err := s.queue.Enqueue(ctx, target); err != nil {
		return inventory.SaveResult{}, err
	}
	return inventory.SaveResult{Queued: true}, nil
}
