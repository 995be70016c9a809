package entity

// InventoryItem representa una fila del inventario mensual de una farmacia.
// Name vacío = fila de marcador (aún sin guardar); no cuenta en estadísticas.
// DailyIncoming y DailyDispense usan la etiqueta del día ("01".."31") como clave;
// un día ausente equivale a cantidad cero.
type InventoryItem struct {
	Name          string             `json:"name" firestore:"name"`
	Opening       float64            `json:"opening" firestore:"opening"`
	UnitPrice     float64            `json:"unitPrice" firestore:"unitPrice"` // solo display
	DailyIncoming map[string]float64 `json:"dailyIncoming" firestore:"dailyIncoming"`
	DailyDispense map[string]float64 `json:"dailyDispense" firestore:"dailyDispense"`
	MinStock      *float64           `json:"minStock,omitempty" firestore:"minStock,omitempty"` // nil = umbral por defecto
}

// NewInventoryItem crea un ítem con todas las cantidades en cero.
func NewInventoryItem(name string) InventoryItem {
	return InventoryItem{
		Name:          name,
		DailyIncoming: map[string]float64{},
		DailyDispense: map[string]float64{},
	}
}

// Clone devuelve una copia profunda (los mapas no se comparten).
func (i InventoryItem) Clone() InventoryItem {
	out := i
	out.DailyIncoming = make(map[string]float64, len(i.DailyIncoming))
	for k, v := range i.DailyIncoming {
		out.DailyIncoming[k] = v
	}
	out.DailyDispense = make(map[string]float64, len(i.DailyDispense))
	for k, v := range i.DailyDispense {
		out.DailyDispense[k] = v
	}
	if i.MinStock != nil {
		m := *i.MinStock
		out.MinStock = &m
	}
	return out
}
