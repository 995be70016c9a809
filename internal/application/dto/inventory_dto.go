package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Tipos de movimiento diario.
const (
	MovementIncoming = "incoming"
	MovementDispense = "dispense"
)

// ItemInput ítem tal como lo envía el cliente en un reemplazo completo de la lista.
type ItemInput struct {
	Name          string                `json:"name"`
	Opening       FlexNumber            `json:"opening"`
	UnitPrice     FlexNumber            `json:"unitPrice"`
	DailyIncoming map[string]FlexNumber `json:"dailyIncoming"`
	DailyDispense map[string]FlexNumber `json:"dailyDispense"`
	MinStock      *FlexNumber           `json:"minStock,omitempty"`
}

// ToEntity convierte la entrada en entidad con cantidades ya normalizadas.
func (in ItemInput) ToEntity() entity.InventoryItem {
	item := entity.NewInventoryItem(in.Name)
	item.Opening = in.Opening.Float64()
	item.UnitPrice = in.UnitPrice.Float64()
	item.DailyIncoming = FlexDayMap(in.DailyIncoming)
	item.DailyDispense = FlexDayMap(in.DailyDispense)
	if in.MinStock != nil {
		m := in.MinStock.Float64()
		item.MinStock = &m
	}
	return item
}

// ReplaceItemsRequest body para PUT /api/inventory/:pharmacyId/:month/items.
type ReplaceItemsRequest struct {
	Items []ItemInput `json:"items"`
}

// AddItemRequest body para POST /api/inventory/:pharmacyId/:month/items.
type AddItemRequest struct {
	Name string `json:"name"`
}

// UpdateItemRequest body para PATCH .../items/:name. Solo se aplican los campos presentes.
type UpdateItemRequest struct {
	Name          *string     `json:"name,omitempty"`
	Opening       *FlexNumber `json:"opening,omitempty"`
	UnitPrice     *FlexNumber `json:"unitPrice,omitempty"`
	MinStock      *FlexNumber `json:"minStock,omitempty"`
	ClearMinStock bool        `json:"clearMinStock,omitempty"` // vuelve al umbral por defecto
}

// MovementRequest body para POST .../movements: fija la cantidad de un día.
type MovementRequest struct {
	ItemName string     `json:"itemName"`
	Day      string     `json:"day"`  // "01".."31"
	Type     string     `json:"type"` // incoming | dispense
	Quantity FlexNumber `json:"quantity"`
}

// ItemRowDTO fila de inventario con el estado de stock derivado.
type ItemRowDTO struct {
	Name           string             `json:"name"`
	Opening        float64            `json:"opening"`
	UnitPrice      float64            `json:"unitPrice"`
	DailyIncoming  map[string]float64 `json:"dailyIncoming"`
	DailyDispense  map[string]float64 `json:"dailyDispense"`
	MinStock       *float64           `json:"minStock,omitempty"`
	TotalIncoming  decimal.Decimal    `json:"total_incoming"`
	TotalDispensed decimal.Decimal    `json:"total_dispensed"`
	CurrentStock   int64              `json:"current_stock"`
	Status         string             `json:"status"`
	IsShortage     bool               `json:"is_shortage"`
	IsLowStock     bool               `json:"is_low_stock"`
	IsAvailable    bool               `json:"is_available"`
	StockValue     decimal.Decimal    `json:"stock_value"`
}

// StatsDTO conteos agregados de una hoja o página.
type StatsDTO struct {
	TotalItems   int  `json:"total_items"`
	Shortages    int  `json:"shortages"`
	Available    int  `json:"available"`
	LowStock     int  `json:"low_stock"`
	HighShortage bool `json:"high_shortage"`
}

// SheetDTO respuesta de GET /api/inventory/:pharmacyId/:month.
type SheetDTO struct {
	PharmacyID string          `json:"pharmacy_id"`
	Month      string          `json:"month"`
	Items      []ItemRowDTO    `json:"items"`
	Stats      StatsDTO        `json:"stats"`
	TotalValue decimal.Decimal `json:"total_value"`
	Queued     bool            `json:"queued,omitempty"` // escritura encolada offline
}

// RestockItemDTO ítem que requiere reposición según el promedio de consumo.
type RestockItemDTO struct {
	Name         string `json:"name"`
	CurrentStock int64  `json:"current_stock"`
	TrailingMean int64  `json:"trailing_mean"`
	Need         int64  `json:"need"`     // max(0, promedio − stock)
	Priority     int    `json:"priority"` // 1 = más urgente
}
