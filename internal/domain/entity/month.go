package entity

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// ValidMonth indica si s tiene el formato YYYY-MM.
func ValidMonth(s string) bool {
	_, err := time.Parse(monthLayout, s)
	return err == nil && len(s) == 7
}

// DaysInMonth número de días del mes YYYY-MM (0 si el mes es inválido).
func DaysInMonth(month string) int {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return 0
	}
	return t.AddDate(0, 1, -1).Day()
}

// DayLabels etiquetas "01".."NN" válidas para el mes.
func DayLabels(month string) []string {
	n := DaysInMonth(month)
	out := make([]string, 0, n)
	for d := 1; d <= n; d++ {
		out = append(out, fmt.Sprintf("%02d", d))
	}
	return out
}

// ValidDayLabel indica si day es una etiqueta de dos dígitos dentro del mes.
func ValidDayLabel(month, day string) bool {
	if len(day) != 2 {
		return false
	}
	if day[0] < '0' || day[0] > '9' || day[1] < '0' || day[1] > '9' {
		return false
	}
	d := int(day[0]-'0')*10 + int(day[1]-'0')
	return d >= 1 && d <= DaysInMonth(month)
}

// CurrentMonth mes en curso en formato YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.Format(monthLayout)
}
