// Package report genera el reporte mensual de inventario en PDF.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// UseCase reporte mensual de inventario de una farmacia.
type UseCase struct {
	pharmacies repository.PharmacyRepository
	sheets     inventory.SheetStore
	generator  InventoryPDFGenerator
	archive    Archive
	settings   inventory.Settings
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso. archive nil = sin copia en bucket.
func NewUseCase(
	pharmacies repository.PharmacyRepository,
	sheets inventory.SheetStore,
	generator InventoryPDFGenerator,
	archive Archive,
	settings inventory.Settings,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		pharmacies: pharmacies,
		sheets:     sheets,
		generator:  generator,
		archive:    archive,
		settings:   settings,
		log:        log,
		now:        time.Now,
	}
}

// MonthlyInventoryPDF genera el PDF de la hoja del mes.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la farmacia no existe para el tenant.
//   - domain.ErrInvalidInput     si el mes no tiene formato YYYY-MM.
//
// Si hay bucket configurado sube una copia; un fallo al subir solo se registra.
func (uc *UseCase) MonthlyInventoryPDF(ctx context.Context, tenantID, pharmacyID, month string) ([]byte, string, error) {
	if err := inventory.ValidateScope(tenantID, pharmacyID, month); err != nil {
		return nil, "", err
	}

	// ── 1. Farmacia y hoja ────────────────────────────────────────────────────
	pharmacy, err := uc.pharmacies.GetByID(ctx, tenantID, pharmacyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener farmacia: %w", err)
	}
	items, err := uc.sheets.FetchItems(ctx, tenantID, pharmacyID, month)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: leer hoja: %w", err)
	}

	// ── 2. Generar PDF ────────────────────────────────────────────────────────
	data := InventoryReportData{
		Pharmacy:    pharmacy,
		Month:       month,
		View:        inventory.BuildView(items, uc.settings),
		GeneratedAt: uc.now(),
	}
	pdfBytes, err := uc.generator.GenerateInventoryPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s_%s.pdf", slug(pharmacy.Name), month)

	// ── 3. Copia en bucket (best effort) ──────────────────────────────────────
	if uc.archive != nil {
		object := fmt.Sprintf("reports/%s/%s/%s", tenantID, pharmacyID, filename)
		if err := uc.archive.Upload(ctx, object, "application/pdf", pdfBytes); err != nil {
			uc.log.Warn().Err(err).Str("object", object).Msg("reporte: no se pudo archivar el PDF")
		}
	}
	return pdfBytes, filename, nil
}

// slug nombre apto para archivo: minúsculas, alfanumérico y guiones.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "farmacia"
	}
	return out
}
