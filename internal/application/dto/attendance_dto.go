package dto

import "time"

// RecordAttendanceRequest body para POST /api/attendance.
type RecordAttendanceRequest struct {
	PharmacyID   string     `json:"pharmacy_id"`
	PharmacistID string     `json:"pharmacist_id"`
	Date         string     `json:"date"`   // YYYY-MM-DD
	Status       string     `json:"status"` // present | late | absent
	CheckIn      *time.Time `json:"check_in,omitempty"`
}

// AttendanceDTO registro de asistencia guardado.
type AttendanceDTO struct {
	ID           string     `json:"id"`
	PharmacyID   string     `json:"pharmacy_id"`
	PharmacistID string     `json:"pharmacist_id"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
}

// AttendanceSummaryDTO resumen mensual de un farmacéutico.
type AttendanceSummaryDTO struct {
	PharmacistID string  `json:"pharmacist_id"`
	Name         string  `json:"name"`
	Present      int     `json:"present"`
	Late         int     `json:"late"`
	Absent       int     `json:"absent"`
	Total        int     `json:"total"`
	Rate         float64 `json:"rate"` // porcentaje (presente + tarde) / total
	Alert        bool    `json:"alert"`
}
