package entity

import "time"

// Roles de sesión.
const (
	RoleOwner      = "owner"
	RolePharmacist = "pharmacist"
)

// Pharmacist representa un farmacéutico asignado a una farmacia del tenant.
type Pharmacist struct {
	ID         string
	TenantID   string
	PharmacyID string
	Name       string
	Phone      string
	Email      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
