package entity

import "time"

// Pharmacy representa una farmacia administrada por un tenant (dueño).
type Pharmacy struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
