package offline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// NewApplier ApplyFunc que reproduce cada tipo de escritura contra su repositorio remoto.
func NewApplier(sheets repository.InventoryRepository, pages repository.CustomPageRepository) ApplyFunc {
	return func(ctx context.Context, w *entity.PendingWrite) error {
		var items []entity.InventoryItem
		if err := json.Unmarshal(w.Payload, &items); err != nil {
			return fmt.Errorf("payload inválido: %w", err)
		}
		switch w.Kind {
		case entity.PendingInventoryReplace:
			return sheets.SaveItems(ctx, &entity.InventorySheet{
				TenantID:   w.TenantID,
				PharmacyID: w.PharmacyID,
				Month:      w.Month,
				Items:      items,
				UpdatedAt:  w.CreatedAt,
			})
		case entity.PendingPageReplace:
			return pages.SaveItems(ctx, &entity.CustomPage{
				ID:         w.PageID,
				TenantID:   w.TenantID,
				PharmacyID: w.PharmacyID,
				Month:      w.Month,
				Items:      items,
				UpdatedAt:  w.CreatedAt,
			})
		default:
			return fmt.Errorf("tipo de escritura desconocido: %q", w.Kind)
		}
	}
}
