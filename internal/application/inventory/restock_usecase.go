package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	domaininv "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// RestockUseCase genera la lista de reposición de una hoja.
// Compara el stock actual de cada ítem con su promedio de consumo de los últimos meses.
type RestockUseCase struct {
	store       SheetStore
	consumption repository.ConsumptionRepository
	settings    Settings
}

// NewRestockUseCase construye el caso de uso de reposición.
func NewRestockUseCase(store SheetStore, consumption repository.ConsumptionRepository, settings Settings) *RestockUseCase {
	return &RestockUseCase{
		store:       store,
		consumption: consumption,
		settings:    settings.normalized(),
	}
}

// NeedsRestock devuelve los ítems con stock <= promedio de consumo, ordenados por
// mayor necesidad y luego por nombre. Un ítem sin historial usa el promedio de respaldo.
func (uc *RestockUseCase) NeedsRestock(ctx context.Context, tenantID, pharmacyID, month string) ([]dto.RestockItemDTO, error) {
	if err := ValidateScope(tenantID, pharmacyID, month); err != nil {
		return nil, err
	}

	// 1. Ítems de la hoja
	items, err := uc.store.FetchItems(ctx, tenantID, pharmacyID, month)
	if err != nil {
		return nil, fmt.Errorf("reposición: leer hoja: %w", err)
	}
	if len(items) == 0 {
		return []dto.RestockItemDTO{}, nil
	}

	// 2. Historial de consumo del tenant
	history, err := uc.consumption.History(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("reposición: historial de consumo: %w", err)
	}

	// 3. Filtrar los que requieren atención
	out := make([]dto.RestockItemDTO, 0, len(items))
	for i := range items {
		it := &items[i]
		if !domaininv.IsNamed(it) {
			continue
		}
		name := strings.TrimSpace(it.Name)
		mean := uc.settings.FallbackMean
		if rec, ok := history[name]; ok {
			mean = domaininv.TrailingMean(&rec, uc.settings.ConsumptionWindow, uc.settings.FallbackMean)
		}
		stock := domaininv.ComputeCurrentStock(it)
		if !domaininv.NeedsAttention(stock, mean) {
			continue
		}
		out = append(out, dto.RestockItemDTO{
			Name:         name,
			CurrentStock: stock,
			TrailingMean: mean,
			Need:         domaininv.RestockNeed(mean, stock),
		})
	}

	// 4. Ordenar: mayor necesidad primero, empate por nombre
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Need != out[j].Need {
			return out[i].Need > out[j].Need
		}
		return out[i].Name < out[j].Name
	})

	// 5. Asignar prioridad (1 = más urgente)
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
