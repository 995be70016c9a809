package inventory

import (
	"strings"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ValidateScope valida tenant, farmacia y mes de una hoja.
func ValidateScope(tenantID, pharmacyID, month string) error {
	if strings.TrimSpace(tenantID) == "" {
		return domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(pharmacyID) == "" || !entity.ValidMonth(month) {
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateItems nombres no vacíos únicos y etiquetas de día válidas para el mes.
func ValidateItems(month string, items []entity.InventoryItem) error {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		name := strings.TrimSpace(items[i].Name)
		if name != "" {
			if _, dup := seen[name]; dup {
				return domain.ErrDuplicate
			}
			seen[name] = struct{}{}
		}
		for day := range items[i].DailyIncoming {
			if !entity.ValidDayLabel(month, day) {
				return domain.ErrInvalidInput
			}
		}
		for day := range items[i].DailyDispense {
			if !entity.ValidDayLabel(month, day) {
				return domain.ErrInvalidInput
			}
		}
	}
	return nil
}

// CloneItems copia profunda de la lista.
func CloneItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

// ApplyPatch aplica los campos presentes de patch a items[i].
func ApplyPatch(items []entity.InventoryItem, i int, patch dto.UpdateItemRequest) error {
	it := &items[i]
	if patch.Name != nil {
		newName := strings.TrimSpace(*patch.Name)
		if newName == "" {
			return domain.ErrInvalidInput
		}
		if j := indexOf(items, newName); j >= 0 && j != i {
			return domain.ErrDuplicate
		}
		it.Name = newName
	}
	if patch.Opening != nil {
		it.Opening = patch.Opening.Float64()
	}
	if patch.UnitPrice != nil {
		it.UnitPrice = patch.UnitPrice.Float64()
	}
	if patch.ClearMinStock {
		it.MinStock = nil
	} else if patch.MinStock != nil {
		m := patch.MinStock.Float64()
		it.MinStock = &m
	}
	if it.DailyIncoming == nil {
		it.DailyIncoming = map[string]float64{}
	}
	if it.DailyDispense == nil {
		it.DailyDispense = map[string]float64{}
	}
	return nil
}

func indexOf(items []entity.InventoryItem, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1
	}
	for i := range items {
		if strings.TrimSpace(items[i].Name) == name {
			return i
		}
	}
	return -1
}
