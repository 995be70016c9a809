package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// AttendanceRepository registros de asistencia; un documento por farmacéutico y fecha.
type AttendanceRepository interface {
	Upsert(ctx context.Context, record *entity.AttendanceRecord) error
	// ListByMonth registros de la farmacia cuya fecha cae en el mes YYYY-MM.
	ListByMonth(ctx context.Context, tenantID, pharmacyID, month string) ([]*entity.AttendanceRecord, error)
}
