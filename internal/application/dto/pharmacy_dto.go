package dto

import "time"

// CreatePharmacyRequest body para POST /api/pharmacies.
type CreatePharmacyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdatePharmacyRequest body para PUT /api/pharmacies/:id.
type UpdatePharmacyRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// PharmacyDTO respuesta de farmacia.
type PharmacyDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PharmacistRequest body para crear/actualizar un farmacéutico.
// ID es el uid del usuario en el proveedor de identidad; si viene vacío se genera uno.
type PharmacistRequest struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Active *bool  `json:"active,omitempty"`
}

// PharmacistDTO respuesta de farmacéutico.
type PharmacistDTO struct {
	ID         string    `json:"id"`
	PharmacyID string    `json:"pharmacy_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PharmacyDetailsDTO respuesta de GET /api/pharmacies/:id/details.
type PharmacyDetailsDTO struct {
	Pharmacy         PharmacyDTO            `json:"pharmacy"`
	Month            string                 `json:"month"`
	Stats            StatsDTO               `json:"stats"`
	PharmacistCount  int                    `json:"pharmacist_count"`
	AttendanceAlerts []AttendanceSummaryDTO `json:"attendance_alerts"`
}
