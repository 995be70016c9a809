package firestoredb

import (
	"strings"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// ── Ítems ────────────────────────────────────────────────────────────────────

func itemsToData(items []entity.InventoryItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m := map[string]any{
			"name":          it.Name,
			"opening":       it.Opening,
			"unitPrice":     it.UnitPrice,
			"dailyIncoming": dayMapToData(it.DailyIncoming),
			"dailyDispense": dayMapToData(it.DailyDispense),
		}
		if it.MinStock != nil {
			m["minStock"] = *it.MinStock
		}
		out = append(out, m)
	}
	return out
}

func dayMapToData(days map[string]float64) map[string]any {
	out := make(map[string]any, len(days))
	for k, v := range days {
		out[k] = v
	}
	return out
}

// dataToItems decodifica el arreglo "items" tal como llega del documento.
// Los documentos escritos por versiones anteriores de la app pueden traer números como texto,
// valores nulos o negativos; todo pasa por ToNonNegativeNumber.
func dataToItems(raw any) []entity.InventoryItem {
	list, ok := raw.([]any)
	if !ok {
		return []entity.InventoryItem{}
	}
	out := make([]entity.InventoryItem, 0, len(list))
	for _, r := range list {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, dataToItem(m))
	}
	return out
}

func dataToItem(m map[string]any) entity.InventoryItem {
	name, _ := m["name"].(string)
	it := entity.InventoryItem{
		Name:          name,
		Opening:       inventory.ToNonNegativeNumber(m["opening"]),
		UnitPrice:     inventory.ToNonNegativeNumber(m["unitPrice"]),
		DailyIncoming: inventory.CoerceDayMap(m["dailyIncoming"]),
		DailyDispense: inventory.CoerceDayMap(m["dailyDispense"]),
	}
	if v, ok := m["minStock"]; ok && v != nil {
		ms := inventory.ToNonNegativeNumber(v)
		it.MinStock = &ms
	}
	return it
}

// ── Consumo ──────────────────────────────────────────────────────────────────

// consumptionDocID deriva un ID de documento válido a partir del nombre del ítem.
func consumptionDocID(itemName string) string {
	id := strings.ReplaceAll(strings.TrimSpace(itemName), "/", "_")
	if id == "" || id == "." || id == ".." || (strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__")) {
		id = "item_" + id
	}
	return id
}

func dataToConsumption(docID string, data map[string]any) entity.MonthlyConsumptionRecord {
	name, _ := data["itemName"].(string)
	if strings.TrimSpace(name) == "" {
		name = docID
	}
	return entity.MonthlyConsumptionRecord{
		ItemName: name,
		Months:   inventory.CoerceDayMap(data["months"]),
	}
}

// ── Auxiliares ───────────────────────────────────────────────────────────────

func asString(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func asTime(data map[string]any, key string) time.Time {
	t, _ := data[key].(time.Time)
	return t
}

func asTimePtr(data map[string]any, key string) *time.Time {
	t, ok := data[key].(time.Time)
	if !ok || t.IsZero() {
		return nil
	}
	return &t
}
