package entity

// MonthlyConsumptionRecord total dispensado por mes ("YYYY-MM") de un ítem.
type MonthlyConsumptionRecord struct {
	ItemName string             `json:"itemName" firestore:"itemName"`
	Months   map[string]float64 `json:"months" firestore:"months"`
}

// ConsumptionHistory historial de consumo de un tenant indexado por nombre de ítem.
// Un ítem sin entrada no tiene historial.
type ConsumptionHistory map[string]MonthlyConsumptionRecord
