package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// StockValue valor del stock disponible: max(0, stock) × precio unitario.
// Solo para display; no participa en la clasificación.
func StockValue(item *entity.InventoryItem) decimal.Decimal {
	stock := ComputeCurrentStock(item)
	if stock <= 0 {
		return decimal.Zero
	}
	price := decimal.NewFromFloat(ToNonNegativeNumber(item.UnitPrice))
	return decimal.NewFromInt(stock).Mul(price).Round(2)
}
