package entity

import "time"

// CustomPage página de ítems definida por el usuario, con su propio libro de stock.
type CustomPage struct {
	ID         string
	TenantID   string
	PharmacyID string
	Title      string
	Month      string
	Items      []InventoryItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
