// Package custompage gestiona las páginas de ítems definidas por el usuario.
// Cada página lleva su propio libro de stock y se clasifica igual que una hoja de inventario.
package custompage

import (
	"context"
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
)

// ItemsWriter reemplazo completo de los ítems de una página (con o sin cola offline).
type ItemsWriter interface {
	SaveItems(ctx context.Context, page *entity.CustomPage) (inventory.SaveResult, error)
}

// DirectWriter escribe directo en el repositorio, sin cola.
type DirectWriter struct {
	Repo repository.CustomPageRepository
}

// SaveItems delega en el repositorio.
func (w DirectWriter) SaveItems(ctx context.Context, page *entity.CustomPage) (inventory.SaveResult, error) {
	return inventory.SaveResult{}, w.Repo.SaveItems(ctx, page)
}

// UseCase CRUD de páginas personalizadas.
type UseCase struct {
	pages    repository.CustomPageRepository
	writer   ItemsWriter
	settings inventory.Settings
	now      func() time.Time
}

// NewUseCase construye el caso de uso. writer nil escribe directo en pages.
func NewUseCase(pages repository.CustomPageRepository, writer ItemsWriter, settings inventory.Settings) *UseCase {
	if writer == nil {
		writer = DirectWriter{Repo: pages}
	}
	return &UseCase{pages: pages, writer: writer, settings: settings, now: time.Now}
}

// Create crea la página. Mes vacío = mes en curso.
func (uc *UseCase) Create(ctx context.Context, tenantID string, in dto.CreatePageRequest) (*dto.PageDTO, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	now := uc.now().UTC()
	month := in.Month
	if month == "" {
		month = entity.CurrentMonth(now)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.PharmacyID) == "" || !entity.ValidMonth(month) {
		return nil, domain.ErrInvalidInput
	}
	items := toEntities(in.Items)
	if err := inventory.ValidateItems(month, items); err != nil {
		return nil, err
	}
	page := &entity.CustomPage{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		PharmacyID: in.PharmacyID,
		Title:      title,
		Month:      month,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.pages.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("página: crear: %w", err)
	}
	return uc.toDTO(page), nil
}

// List páginas de la farmacia ordenadas por título.
func (uc *UseCase) List(ctx context.Context, tenantID, pharmacyID string) ([]dto.PageDTO, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	list, err := uc.pages.List(ctx, tenantID, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("página: listar: %w", err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	out := make([]dto.PageDTO, 0, len(list))
	for _, p := range list {
		out = append(out, *uc.toDTO(p))
	}
	return out, nil
}

// Get página con filas clasificadas y estadísticas.
func (uc *UseCase) Get(ctx context.Context, tenantID, id string) (*dto.PageDTO, error) {
	page, err := uc.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return uc.toDTO(page), nil
}

// ReplaceItems reemplaza la lista completa de ítems de la página.
func (uc *UseCase) ReplaceItems(ctx context.Context, tenantID, id string, items []entity.InventoryItem) (*dto.PageDTO, error) {
	page, err := uc.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := inventory.ValidateItems(page.Month, items); err != nil {
		return nil, err
	}
	page.Items = items
	page.UpdatedAt = uc.now().UTC()
	res, err := uc.writer.SaveItems(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("página: guardar ítems: %w", err)
	}
	out := uc.toDTO(page)
	out.Queued = res.Queued
	return out, nil
}

// Delete elimina la página.
func (uc *UseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := uc.get(ctx, tenantID, id); err != nil {
		return err
	}
	return uc.pages.Delete(ctx, tenantID, id)
}

func (uc *UseCase) get(ctx context.Context, tenantID, id string) (*entity.CustomPage, error) {
	if tenantID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.pages.GetByID(ctx, tenantID, id)
}

func (uc *UseCase) toDTO(p *entity.CustomPage) *dto.PageDTO {
	v := inventory.BuildView(p.Items, uc.settings)
	return &dto.PageDTO{
		ID:         p.ID,
		PharmacyID: p.PharmacyID,
		Title:      p.Title,
		Month:      p.Month,
		Items:      v.Rows,
		Stats:      v.Stats,
		TotalValue: v.TotalValue,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toEntities(in []dto.ItemInput) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0, len(in))
	for _, it := range in {
		out = append(out, it.ToEntity())
	}
	return out
}
