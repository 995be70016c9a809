package firestoredb

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository = (*InventoryRepositoryFS)(nil)
	_ repository.InventoryUpdater    = (*InventoryRepositoryFS)(nil)
	_ repository.ItemSourceFactory   = (*InventoryRepositoryFS)(nil)
	_ repository.ItemSource          = (*sheetSource)(nil)
)

// InventoryRepositoryFS hojas mensuales en tenants/{t}/pharmacies/{p}/inventory/{YYYY-MM}.
type InventoryRepositoryFS struct {
	client *Client
}

func NewInventoryRepository(client *Client) *InventoryRepositoryFS {
	return &InventoryRepositoryFS{client: client}
}

func (r *InventoryRepositoryFS) doc(tenantID, pharmacyID, month string) *firestore.DocumentRef {
	return r.client.tenant(tenantID).
		Collection("pharmacies").Doc(pharmacyID).
		Collection("inventory").Doc(month)
}

func (r *InventoryRepositoryFS) FetchItems(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	snap, err := r.doc(tenantID, pharmacyID, month).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return []entity.InventoryItem{}, nil
		}
		return nil, mapErr("leer hoja", err)
	}
	return snapshotItems(snap), nil
}

func (r *InventoryRepositoryFS) SaveItems(ctx context.Context, sheet *entity.InventorySheet) error {
	if _, err := r.doc(sheet.TenantID, sheet.PharmacyID, sheet.Month).Set(ctx, sheetData(sheet)); err != nil {
		return mapErr("guardar hoja", err)
	}
	return nil
}

// UpdateItems lee y reescribe la hoja dentro de una transacción. Firestore reintenta fn
// si el documento cambió entre la lectura y la escritura, así que fn no debe tener efectos.
func (r *InventoryRepositoryFS) UpdateItems(ctx context.Context, sheet *entity.InventorySheet, fn repository.ItemsUpdateFunc) error {
	ref := r.doc(sheet.TenantID, sheet.PharmacyID, sheet.Month)
	var fnErr error
	err := r.client.FS.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		fnErr = nil
		current := []entity.InventoryItem{}
		snap, err := tx.Get(ref)
		switch {
		case err == nil:
			current = snapshotItems(snap)
		case !isNotFound(err):
			return err
		}

		items, err := fn(current)
		if err != nil {
			fnErr = err
			return err
		}
		sheet.Items = items
		return tx.Set(ref, sheetData(sheet))
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return mapErr("actualizar hoja", err)
	}
	return nil
}

func sheetData(sheet *entity.InventorySheet) map[string]any {
	updatedAt := sheet.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	return map[string]any{
		"items":     itemsToData(sheet.Items),
		"updatedAt": updatedAt,
		"updatedBy": sheet.UpdatedBy,
	}
}

func (r *InventoryRepositoryFS) Source(tenantID, pharmacyID, month string) repository.ItemSource {
	return &sheetSource{ref: r.doc(tenantID, pharmacyID, month)}
}

func snapshotItems(snap *firestore.DocumentSnapshot) []entity.InventoryItem {
	if snap == nil || !snap.Exists() {
		return []entity.InventoryItem{}
	}
	return dataToItems(snap.Data()["items"])
}

// ── ItemSource ───────────────────────────────────────────────────────────────

type sheetSource struct {
	ref *firestore.DocumentRef
}

func (s *sheetSource) FetchOnce(ctx context.Context) ([]entity.InventoryItem, error) {
	snap, err := s.ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return []entity.InventoryItem{}, nil
		}
		return nil, mapErr("leer hoja", err)
	}
	return snapshotItems(snap), nil
}

// Subscribe escucha el documento con Snapshots. El primer evento trae el estado actual.
// Un error distinto de la cancelación se notifica una vez y termina la suscripción.
func (s *sheetSource) Subscribe(ctx context.Context, onChange func([]entity.InventoryItem, error)) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	iter := s.ref.Snapshots(subCtx)

	var once sync.Once
	stop := func() { once.Do(cancel) }

	// Stop no es seguro en paralelo con Next: lo llama la propia goroutine al salir.
	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if subCtx.Err() == nil && status.Code(err) != codes.Canceled {
					onChange(nil, mapErr("escuchar hoja", err))
				}
				return
			}
			onChange(snapshotItems(snap), nil)
		}
	}()

	return stop, nil
}
