package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// View filas clasificadas, estadísticas y valor total de una lista de ítems.
// Lo usan hojas de inventario, páginas personalizadas, dashboard y reportes.
type View struct {
	Rows       []dto.ItemRowDTO
	Stats      dto.StatsDTO
	TotalValue decimal.Decimal
}

// BuildView clasifica cada ítem y agrega las estadísticas.
// Las filas de marcador (sin nombre) se devuelven pero no cuentan en Stats.
func BuildView(items []entity.InventoryItem, s Settings) View {
	s = s.normalized()
	rows := make([]dto.ItemRowDTO, 0, len(items))
	total := decimal.Zero
	for i := range items {
		it := &items[i]
		c := domaininv.ClassifyStock(it, s.MinStockDefault)
		value := domaininv.StockValue(it)
		if domaininv.IsNamed(it) {
			total = total.Add(value)
		}
		rows = append(rows, dto.ItemRowDTO{
			Name:           it.Name,
			Opening:        domaininv.ToNonNegativeNumber(it.Opening),
			UnitPrice:      domaininv.ToNonNegativeNumber(it.UnitPrice),
			DailyIncoming:  nonNilDayMap(it.DailyIncoming),
			DailyDispense:  nonNilDayMap(it.DailyDispense),
			MinStock:       it.MinStock,
			TotalIncoming:  domaininv.TotalIncoming(it),
			TotalDispensed: domaininv.TotalDispensed(it),
			CurrentStock:   c.CurrentStock,
			Status:         c.Status(),
			IsShortage:     c.IsShortage,
			IsLowStock:     c.IsLowStock,
			IsAvailable:    c.IsAvailable,
			StockValue:     value,
		})
	}
	return View{
		Rows:       rows,
		Stats:      StatsOf(items, s),
		TotalValue: total.Round(2),
	}
}

// StatsOf estadísticas agregadas con el indicador de faltante alto.
func StatsOf(items []entity.InventoryItem, s Settings) dto.StatsDTO {
	s = s.normalized()
	st := domaininv.AggregateStats(items, s.MinStockDefault)
	return dto.StatsDTO{
		TotalItems:   st.TotalItems,
		Shortages:    st.Shortages,
		Available:    st.Available,
		LowStock:     st.LowStock,
		HighShortage: domaininv.HighShortage(st, s.HighShortageRatio),
	}
}

func nonNilDayMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
