package inventory

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SaveResult resultado de una escritura completa de la hoja.
// Queued = true cuando el almacén no respondió y la escritura quedó en la cola offline.
type SaveResult struct {
	Queued bool
}

// SheetStore lectura y reemplazo de hojas de inventario tal como lo ven los casos de uso.
// Lo implementa offline.InventoryStore (con cola) o DirectStore (sin cola).
type SheetStore interface {
	FetchItems(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error)
	SaveItems(ctx context.Context, sheet *entity.InventorySheet) (SaveResult, error)
}

// SheetUpdater lo implementan los SheetStore capaces de leer, modificar y guardar la hoja
// sin que otra escritura se intercale. Al terminar sin error, sheet.Items es la lista guardada.
type SheetUpdater interface {
	UpdateItems(ctx context.Context, sheet *entity.InventorySheet, fn repository.ItemsUpdateFunc) (SaveResult, error)
}

// DirectStore adapta un InventoryRepository remoto sin cola offline.
type DirectStore struct {
	Repo repository.InventoryRepository
}

// FetchItems delega en el repositorio.
func (s DirectStore) FetchItems(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	return s.Repo.FetchItems(ctx, tenantID, pharmacyID, month)
}

// SaveItems delega en el repositorio; nunca encola.
func (s DirectStore) SaveItems(ctx context.Context, sheet *entity.InventorySheet) (SaveResult, error) {
	return SaveResult{}, s.Repo.SaveItems(ctx, sheet)
}

// UpdateItems usa la transacción del repositorio si la ofrece; si no, lee y reemplaza.
func (s DirectStore) UpdateItems(ctx context.Context, sheet *entity.InventorySheet, fn repository.ItemsUpdateFunc) (SaveResult, error) {
	if up, ok := s.Repo.(repository.InventoryUpdater); ok {
		return SaveResult{}, up.UpdateItems(ctx, sheet, fn)
	}
	current, err := s.Repo.FetchItems(ctx, sheet.TenantID, sheet.PharmacyID, sheet.Month)
	if err != nil {
		return SaveResult{}, err
	}
	items, err := fn(current)
	if err != nil {
		return SaveResult{}, err
	}
	sheet.Items = items
	return SaveResult{}, s.Repo.SaveItems(ctx, sheet)
}
