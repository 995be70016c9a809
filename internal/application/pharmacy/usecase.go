// Package pharmacy administra farmacias y farmacéuticos del tenant.
package pharmacy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// AttendanceSummarizer resumen mensual de asistencia (lo implementa attendance.UseCase).
type AttendanceSummarizer interface {
	MonthlySummary(ctx context.Context, tenantID, pharmacyID, month string) ([]dto.AttendanceSummaryDTO, error)
}

// AdminUseCase CRUD de farmacias y farmacéuticos, y la vista de detalle de una farmacia.
type AdminUseCase struct {
	pharmacies  repository.PharmacyRepository
	pharmacists repository.PharmacistRepository
	profiles    repository.ProfileStore
	sheets      inventory.SheetStore
	attendance  AttendanceSummarizer
	settings    inventory.Settings
	log         *logger.Logger
	now         func() time.Time
}

// NewAdminUseCase construye el caso de uso. profiles puede ser nil (sin caché local).
func NewAdminUseCase(
	pharmacies repository.PharmacyRepository,
	pharmacists repository.PharmacistRepository,
	profiles repository.ProfileStore,
	sheets inventory.SheetStore,
	attendance AttendanceSummarizer,
	settings inventory.Settings,
	log *logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		pharmacies:  pharmacies,
		pharmacists: pharmacists,
		profiles:    profiles,
		sheets:      sheets,
		attendance:  attendance,
		settings:    settings,
		log:         log,
		now:         time.Now,
	}
}

// ── Farmacias ─────────────────────────────────────────────────────────────────

// Create crea una farmacia para el tenant.
func (uc *AdminUseCase) Create(ctx context.Context, tenantID string, in dto.CreatePharmacyRequest) (*dto.PharmacyDTO, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now().UTC()
	p := &entity.Pharmacy{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.pharmacies.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("farmacia: crear: %w", err)
	}
	return toPharmacyDTO(p), nil
}

// List farmacias del tenant ordenadas por nombre.
func (uc *AdminUseCase) List(ctx context.Context, tenantID string) ([]dto.PharmacyDTO, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	list, err := uc.pharmacies.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("farmacia: listar: %w", err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	out := make([]dto.PharmacyDTO, 0, len(list))
	for _, p := range list {
		out = append(out, *toPharmacyDTO(p))
	}
	return out, nil
}

// Get farmacia por id.
func (uc *AdminUseCase) Get(ctx context.Context, tenantID, id string) (*dto.PharmacyDTO, error) {
	p, err := uc.getPharmacy(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return toPharmacyDTO(p), nil
}

// Update aplica los campos presentes.
func (uc *AdminUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdatePharmacyRequest) (*dto.PharmacyDTO, error) {
	p, err := uc.getPharmacy(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Name = name
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	p.UpdatedAt = uc.now().UTC()
	if err := uc.pharmacies.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("farmacia: actualizar: %w", err)
	}
	return toPharmacyDTO(p), nil
}

// Delete elimina la farmacia. Falla con ErrConflict si aún tiene farmacéuticos.
func (uc *AdminUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := uc.getPharmacy(ctx, tenantID, id); err != nil {
		return err
	}
	staff, err := uc.pharmacists.ListByPharmacy(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("farmacia: farmacéuticos: %w", err)
	}
	if len(staff) > 0 {
		return domain.ErrConflict
	}
	return uc.pharmacies.Delete(ctx, tenantID, id)
}

// Details farmacia + estadísticas del mes + farmacéuticos con alerta de asistencia.
func (uc *AdminUseCase) Details(ctx context.Context, tenantID, id, month string) (*dto.PharmacyDetailsDTO, error) {
	if !entity.ValidMonth(month) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.getPharmacy(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	items, err := uc.sheets.FetchItems(ctx, tenantID, id, month)
	if err != nil {
		return nil, fmt.Errorf("farmacia: hoja de inventario: %w", err)
	}
	summary, err := uc.attendance.MonthlySummary(ctx, tenantID, id, month)
	if err != nil {
		return nil, fmt.Errorf("farmacia: asistencia: %w", err)
	}
	staff, err := uc.pharmacists.ListByPharmacy(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("farmacia: farmacéuticos: %w", err)
	}

	alerts := make([]dto.AttendanceSummaryDTO, 0)
	for _, s := range summary {
		if s.Alert {
			alerts = append(alerts, s)
		}
	}
	return &dto.PharmacyDetailsDTO{
		Pharmacy:         *toPharmacyDTO(p),
		Month:            month,
		Stats:            inventory.StatsOf(items, uc.settings),
		PharmacistCount:  len(staff),
		AttendanceAlerts: alerts,
	}, nil
}

func (uc *AdminUseCase) getPharmacy(ctx context.Context, tenantID, id string) (*entity.Pharmacy, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.pharmacies.GetByID(ctx, tenantID, id)
}

// ── Farmacéuticos ─────────────────────────────────────────────────────────────

// CreatePharmacist asigna un farmacéutico a la farmacia.
func (uc *AdminUseCase) CreatePharmacist(ctx context.Context, tenantID, pharmacyID string, in dto.PharmacistRequest) (*dto.PharmacistDTO, error) {
	if _, err := uc.getPharmacy(ctx, tenantID, pharmacyID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.New().String()
	} else if _, err := uc.pharmacists.GetByID(ctx, tenantID, id); err == nil {
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	now := uc.now().UTC()
	p := &entity.Pharmacist{
		ID:         id,
		TenantID:   tenantID,
		PharmacyID: pharmacyID,
		Name:       name,
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Active:     in.Active == nil || *in.Active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.pharmacists.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("farmacéutico: crear: %w", err)
	}
	uc.rememberProfile(ctx, p)
	return toPharmacistDTO(p), nil
}

// ListPharmacists farmacéuticos de la farmacia; refresca sus perfiles locales.
func (uc *AdminUseCase) ListPharmacists(ctx context.Context, tenantID, pharmacyID string) ([]dto.PharmacistDTO, error) {
	if _, err := uc.getPharmacy(ctx, tenantID, pharmacyID); err != nil {
		return nil, err
	}
	list, err := uc.pharmacists.ListByPharmacy(ctx, tenantID, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("farmacéutico: listar: %w", err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	out := make([]dto.PharmacistDTO, 0, len(list))
	for _, p := range list {
		uc.rememberProfile(ctx, p)
		out = append(out, *toPharmacistDTO(p))
	}
	return out, nil
}

// UpdatePharmacist actualiza datos de contacto y estado.
func (uc *AdminUseCase) UpdatePharmacist(ctx context.Context, tenantID, pharmacyID, id string, in dto.PharmacistRequest) (*dto.PharmacistDTO, error) {
	p, err := uc.getPharmacist(ctx, tenantID, pharmacyID, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		p.Name = name
	}
	if in.Phone != "" {
		p.Phone = strings.TrimSpace(in.Phone)
	}
	if in.Email != "" {
		p.Email = strings.TrimSpace(in.Email)
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = uc.now().UTC()
	if err := uc.pharmacists.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("farmacéutico: actualizar: %w", err)
	}
	uc.rememberProfile(ctx, p)
	return toPharmacistDTO(p), nil
}

// DeletePharmacist elimina el farmacéutico de la farmacia.
func (uc *AdminUseCase) DeletePharmacist(ctx context.Context, tenantID, pharmacyID, id string) error {
	if _, err := uc.getPharmacist(ctx, tenantID, pharmacyID, id); err != nil {
		return err
	}
	return uc.pharmacists.Delete(ctx, tenantID, id)
}

func (uc *AdminUseCase) getPharmacist(ctx context.Context, tenantID, pharmacyID, id string) (*entity.Pharmacist, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	p, err := uc.pharmacists.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// rememberProfile guarda el vínculo farmacéutico → dueño para resolver el tenant sin red.
// Un fallo del caché local no interrumpe la operación.
func (uc *AdminUseCase) rememberProfile(ctx context.Context, p *entity.Pharmacist) {
	if uc.profiles == nil {
		return
	}
	err := uc.profiles.SaveProfile(ctx, &entity.CachedProfile{
		UserID:    p.ID,
		OwnerID:   p.TenantID,
		Role:      entity.RolePharmacist,
		UpdatedAt: uc.now().UTC(),
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", p.ID).Msg("no se pudo guardar el perfil local")
	}
}

func toPharmacyDTO(p *entity.Pharmacy) *dto.PharmacyDTO {
	return &dto.PharmacyDTO{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPharmacistDTO(p *entity.Pharmacist) *dto.PharmacistDTO {
	return &dto.PharmacistDTO{
		ID:         p.ID,
		PharmacyID: p.PharmacyID,
		Name:       p.Name,
		Phone:      p.Phone,
		Email:      p.Email,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
