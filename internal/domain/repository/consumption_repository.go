package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ConsumptionRepository historial de consumo mensual por ítem (DIP).
type ConsumptionRepository interface {
	// History devuelve todo el historial del tenant; sin documentos devuelve un mapa vacío.
	History(ctx context.Context, tenantID string) (entity.ConsumptionHistory, error)
	// MergeMonths suma los meses dados al registro del ítem (lo crea si no existe).
	MergeMonths(ctx context.Context, tenantID string, record entity.MonthlyConsumptionRecord) error
}
