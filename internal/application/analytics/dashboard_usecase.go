// Package analytics contiene el resumen de stock del dashboard del dueño.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// DashboardUseCase genera el resumen de stock del mes para todas las farmacias del tenant.
//
// Fuente de datos: PharmacyRepository + SheetStore (una hoja por farmacia).
type DashboardUseCase struct {
	pharmacies repository.PharmacyRepository
	sheets     inventory.SheetStore
	settings   inventory.Settings
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	pharmacies repository.PharmacyRepository,
	sheets inventory.SheetStore,
	settings inventory.Settings,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{pharmacies: pharmacies, sheets: sheets, settings: settings, log: log}
}

// GetSummary construye el DashboardSummaryDTO del mes indicado.
//
// Las hojas se leen en paralelo (una goroutine por farmacia). Si la hoja de una
// farmacia falla, su fila lleva el error y los totales se calculan con las demás.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID, month string) (*dto.DashboardSummaryDTO, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if !entity.ValidMonth(month) {
		return nil, domain.ErrInvalidInput
	}

	list, err := uc.pharmacies.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: farmacias: %w", err)
	}

	// ── Goroutines para paralelizar la lectura de hojas ───────────────────────
	type sheetResult struct {
		pharmacy *entity.Pharmacy
		items    []entity.InventoryItem
		err      error
	}
	results := make(chan sheetResult, len(list))
	for _, p := range list {
		go func(p *entity.Pharmacy) {
			items, err := uc.sheets.FetchItems(ctx, tenantID, p.ID, month)
			results <- sheetResult{pharmacy: p, items: items, err: err}
		}(p)
	}

	out := &dto.DashboardSummaryDTO{
		Month:      month,
		Pharmacies: make([]dto.PharmacySummaryDTO, 0, len(list)),
		TotalValue: decimal.Zero,
	}
	for range list {
		r := <-results
		row := dto.PharmacySummaryDTO{PharmacyID: r.pharmacy.ID, Name: r.pharmacy.Name, TotalValue: decimal.Zero}
		if r.err != nil {
			uc.log.Warn().Err(r.err).Str("pharmacy_id", r.pharmacy.ID).Str("month", month).
				Msg("dashboard: no se pudo leer la hoja de inventario")
			row.Error = r.err.Error()
			out.Pharmacies = append(out.Pharmacies, row)
			continue
		}
		v := inventory.BuildView(r.items, uc.settings)
		row.Stats = v.Stats
		row.TotalValue = v.TotalValue

		out.Totals.TotalItems += v.Stats.TotalItems
		out.Totals.Shortages += v.Stats.Shortages
		out.Totals.Available += v.Stats.Available
		out.Totals.LowStock += v.Stats.LowStock
		out.TotalValue = out.TotalValue.Add(v.TotalValue)
		if v.Stats.HighShortage {
			out.HighShortageCount++
		}
		out.Pharmacies = append(out.Pharmacies, row)
	}

	// El orden de llegada de los canales no es determinista.
	sort.Slice(out.Pharmacies, func(i, j int) bool {
		a, b := out.Pharmacies[i], out.Pharmacies[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PharmacyID < b.PharmacyID
	})

	out.Totals.HighShortage = out.HighShortageCount > 0
	return out, nil
}
