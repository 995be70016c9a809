package entity

import "time"

// Estados de asistencia.
const (
	AttendancePresent = "present"
	AttendanceLate    = "late"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord registro diario de asistencia de un farmacéutico.
type AttendanceRecord struct {
	ID           string
	TenantID     string
	PharmacyID   string
	PharmacistID string
	Date         string // YYYY-MM-DD
	Status       string // present, late, absent
	CheckIn      *time.Time
	CreatedAt    time.Time
}

// ValidAttendanceStatus indica si el estado es uno de los admitidos.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceAbsent:
		return true
	}
	return false
}
