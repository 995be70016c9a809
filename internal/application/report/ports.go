package report

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// InventoryReportData datos ya calculados que se vuelcan en el PDF.
type InventoryReportData struct {
	Pharmacy    *entity.Pharmacy
	Month       string
	View        inventory.View
	GeneratedAt time.Time
}

// InventoryPDFGenerator genera el PDF mensual de inventario (lo implementa infrastructure/pdf).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data InventoryReportData) ([]byte, error)
}

// Archive guarda una copia del reporte generado (lo implementa infrastructure/gcs).
type Archive interface {
	Upload(ctx context.Context, objectName, contentType string, data []byte) error
}
