package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// PendingWriteRepository almacenamiento local de la cola offline.
type PendingWriteRepository interface {
	Append(ctx context.Context, w *entity.PendingWrite) error
	// ListPending devuelve las escrituras en orden de encolado (FIFO).
	ListPending(ctx context.Context, limit int) ([]*entity.PendingWrite, error)
	Delete(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, lastError string) error
	Count(ctx context.Context) (int, error)
	// HasPending indica si hay escrituras encoladas para el mismo documento que w.
	HasPending(ctx context.Context, target *entity.PendingWrite) (bool, error)
}

// SheetCache copia local de la última lista de ítems conocida por hoja.
type SheetCache interface {
	// GetSheet devuelve (nil, false, nil) si no hay copia local.
	GetSheet(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, bool, error)
	PutSheet(ctx context.Context, sheet *entity.InventorySheet) error
}

// ProfileStore perfiles de usuario guardados localmente para resolver el tenant sin red.
type ProfileStore interface {
	CachedProfile(ctx context.Context, userID string) (*entity.CachedProfile, error)
	SaveProfile(ctx context.Context, profile *entity.CachedProfile) error
}

// StorePinger comprueba si el almacén de documentos responde.
type StorePinger interface {
	Ping(ctx context.Context) error
}
