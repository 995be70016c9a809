// Package attendance registra la asistencia diaria de los farmacéuticos y
// calcula el resumen mensual con su alerta.
package attendance

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase asistencia de farmacéuticos.
type UseCase struct {
	records     repository.AttendanceRepository
	pharmacists repository.PharmacistRepository
	threshold   float64
	now         func() time.Time
}

// NewUseCase construye el caso de uso. threshold <= 0 usa el umbral por defecto (80 %).
func NewUseCase(records repository.AttendanceRepository, pharmacists repository.PharmacistRepository, threshold float64) *UseCase {
	if threshold <= 0 {
		threshold = domaininv.DefaultAttendanceAlertThreshold
	}
	return &UseCase{records: records, pharmacists: pharmacists, threshold: threshold, now: time.Now}
}

// Record guarda (o reemplaza) el registro del farmacéutico para la fecha.
func (uc *UseCase) Record(ctx context.Context, tenantID string, req dto.RecordAttendanceRequest) (*dto.AttendanceDTO, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if req.PharmacistID == "" || req.PharmacyID == "" || !entity.ValidAttendanceStatus(req.Status) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.pharmacists.GetByID(ctx, tenantID, req.PharmacistID)
	if err != nil {
		return nil, err
	}
	if p.PharmacyID != req.PharmacyID {
		return nil, domain.ErrInvalidInput
	}

	rec := &entity.AttendanceRecord{
		ID:           req.PharmacistID + "_" + req.Date,
		TenantID:     tenantID,
		PharmacyID:   req.PharmacyID,
		PharmacistID: req.PharmacistID,
		Date:         req.Date,
		Status:       req.Status,
		CheckIn:      req.CheckIn,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.records.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("asistencia: guardar: %w", err)
	}
	return &dto.AttendanceDTO{
		ID:           rec.ID,
		PharmacyID:   rec.PharmacyID,
		PharmacistID: rec.PharmacistID,
		Date:         rec.Date,
		Status:       rec.Status,
		CheckIn:      rec.CheckIn,
	}, nil
}

// MonthlySummary conteos por farmacéutico de la farmacia en el mes.
// Los farmacéuticos sin registros aparecen con total 0 y sin alerta.
func (uc *UseCase) MonthlySummary(ctx context.Context, tenantID, pharmacyID, month string) ([]dto.AttendanceSummaryDTO, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if pharmacyID == "" || !entity.ValidMonth(month) {
		return nil, domain.ErrInvalidInput
	}

	staff, err := uc.pharmacists.ListByPharmacy(ctx, tenantID, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("asistencia: farmacéuticos: %w", err)
	}
	records, err := uc.records.ListByMonth(ctx, tenantID, pharmacyID, month)
	if err != nil {
		return nil, fmt.Errorf("asistencia: registros: %w", err)
	}

	byID := make(map[string]*dto.AttendanceSummaryDTO, len(staff))
	for _, p := range staff {
		byID[p.ID] = &dto.AttendanceSummaryDTO{PharmacistID: p.ID, Name: p.Name}
	}
	for _, r := range records {
		if !strings.HasPrefix(r.Date, month) {
			continue
		}
		s, ok := byID[r.PharmacistID]
		if !ok {
			s = &dto.AttendanceSummaryDTO{PharmacistID: r.PharmacistID}
			byID[r.PharmacistID] = s
		}
		switch r.Status {
		case entity.AttendancePresent:
			s.Present++
		case entity.AttendanceLate:
			s.Late++
		case entity.AttendanceAbsent:
			s.Absent++
		default:
			continue
		}
		s.Total++
	}

	out := make([]dto.AttendanceSummaryDTO, 0, len(byID))
	for _, s := range byID {
		s.Rate = domaininv.AttendanceRate(s.Present+s.Late, s.Total)
		s.Alert = domaininv.AttendanceAlert(s.Rate, s.Total, uc.threshold)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].PharmacistID < out[j].PharmacistID
	})
	return out, nil
}
