package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FlexNumber número recibido del cliente como número JSON o como texto.
// Cualquier valor inválido, negativo o nulo queda en 0.
type FlexNumber float64

// UnmarshalJSON acepta 12, 12.5, "12", " 12.5 " y null.
func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		*f = 0
		return nil
	}
	*f = FlexNumber(inventory.ToNonNegativeNumber(raw))
	return nil
}

// Float64 valor como float64.
func (f FlexNumber) Float64() float64 { return float64(f) }

// FlexDayMap convierte un mapa día→FlexNumber en día→cantidad.
func FlexDayMap(m map[string]FlexNumber) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.Float64()
	}
	return out
}
