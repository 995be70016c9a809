package entity

import "time"

// InventorySheet es el documento de inventario de una farmacia para un mes.
// Se persiste completo: cada escritura reemplaza la lista entera de ítems.
type InventorySheet struct {
	TenantID   string
	PharmacyID string
	Month      string // YYYY-MM
	Items      []InventoryItem
	UpdatedAt  time.Time
	UpdatedBy  string
}

