package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia de las hojas de inventario mensuales (DIP).
// Las escrituras reemplazan la lista completa de ítems del documento.
type InventoryRepository interface {
	// FetchItems devuelve los ítems de la hoja; una hoja inexistente devuelve lista vacía sin error.
	FetchItems(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error)
	SaveItems(ctx context.Context, sheet *entity.InventorySheet) error
}

// ItemsUpdateFunc recibe la lista actual y devuelve la nueva; un error cancela la escritura.
type ItemsUpdateFunc func(current []entity.InventoryItem) ([]entity.InventoryItem, error)

// InventoryUpdater lectura-modificación-escritura atómica de una hoja.
// Al terminar sin error, sheet.Items contiene la lista persistida.
type InventoryUpdater interface {
	UpdateItems(ctx context.Context, sheet *entity.InventorySheet, fn ItemsUpdateFunc) error
}

// ItemSource fuente de ítems de una hoja concreta: lectura puntual o suscripción a cambios.
type ItemSource interface {
	FetchOnce(ctx context.Context) ([]entity.InventoryItem, error)
	// Subscribe invoca onChange con la lista completa en cada cambio del documento.
	// La función devuelta cancela la suscripción; es seguro llamarla más de una vez.
	Subscribe(ctx context.Context, onChange func([]entity.InventoryItem, error)) (unsubscribe func(), err error)
}

// ItemSourceFactory construye la fuente de ítems para una hoja tenant/farmacia/mes.
type ItemSourceFactory interface {
	Source(tenantID, pharmacyID, month string) ItemSource
}
