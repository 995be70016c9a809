package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePageRequest body para POST /api/pages.
type CreatePageRequest struct {
	PharmacyID string      `json:"pharmacy_id"`
	Title      string      `json:"title"`
	Month      string      `json:"month"`
	Items      []ItemInput `json:"items"`
}

// PageDTO página personalizada con sus filas clasificadas.
type PageDTO struct {
	ID         string          `json:"id"`
	PharmacyID string          `json:"pharmacy_id"`
	Title      string          `json:"title"`
	Month      string          `json:"month"`
	Items      []ItemRowDTO    `json:"items"`
	Stats      StatsDTO        `json:"stats"`
	TotalValue decimal.Decimal `json:"total_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Queued     bool            `json:"queued,omitempty"`
}
