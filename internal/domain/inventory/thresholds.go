package inventory

// Umbrales por defecto a nivel farmacia. Son configurables (ver pkg/config).
const (
	DefaultHighShortageRatio        = 0.20
	DefaultAttendanceAlertThreshold = 80.0
)

// HighShortage la farmacia está en faltante alto cuando los ítems con stock bajo
// superan ratio × total de ítems.
func HighShortage(s Stats, ratio float64) bool {
	if s.TotalItems == 0 {
		return false
	}
	return float64(s.LowStock) > float64(s.TotalItems)*ratio
}

// AttendanceRate porcentaje de asistencia (presente o tarde) sobre los días registrados.
func AttendanceRate(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(attended) / float64(total) * 100
}

// AttendanceAlert alerta cuando hay registros y la tasa queda bajo el umbral.
func AttendanceAlert(rate float64, total int, threshold float64) bool {
	return total > 0 && rate < threshold
}
