package entity

import "time"

// Tipos de escritura pendiente.
const (
	PendingInventoryReplace = "inventory.replace"
	PendingPageReplace      = "page.replace"
)

// PendingWrite escritura encolada mientras el almacén no estaba disponible.
// Payload es la lista completa de ítems serializada en JSON.
// PageID solo aplica a PendingPageReplace.
type PendingWrite struct {
	ID         string
	Seq        int64
	TenantID   string
	Kind       string
	PharmacyID string
	Month      string
	PageID     string
	Payload    []byte
	Attempts   int
	LastError  string
	CreatedAt  time.Time
}

// TargetKey identifica el documento que reemplaza la escritura.
// Dos escrituras con la misma clave deben aplicarse en orden de encolado.
func (w *PendingWrite) TargetKey() string {
	if w.Kind == PendingPageReplace {
		return w.TenantID + "|" + w.Kind + "|" + w.PageID
	}
	return w.TenantID + "|" + w.Kind + "|" + w.PharmacyID + "|" + w.Month
}
