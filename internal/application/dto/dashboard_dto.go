package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Estadísticas por farmacia del mes y totales del tenant.
type DashboardSummaryDTO struct {
	Month             string               `json:"month"`
	Pharmacies        []PharmacySummaryDTO `json:"pharmacies"`
	Totals            StatsDTO             `json:"totals"`
	TotalValue        decimal.Decimal      `json:"total_value"`
	HighShortageCount int                  `json:"high_shortage_count"`
}

// PharmacySummaryDTO resumen de una farmacia para el dashboard.
// Error se llena cuando la hoja de esa farmacia no se pudo leer; el resto del resumen sigue.
type PharmacySummaryDTO struct {
	PharmacyID string          `json:"pharmacy_id"`
	Name       string          `json:"name"`
	Stats      StatsDTO        `json:"stats"`
	TotalValue decimal.Decimal `json:"total_value"`
	Error      string          `json:"error,omitempty"`
}
