package firestoredb

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepositoryFS)(nil)

// ConsumptionRepositoryFS historial en tenants/{t}/consumption/{ítem}.
type ConsumptionRepositoryFS struct {
	client *Client
}

func NewConsumptionRepository(client *Client) *ConsumptionRepositoryFS {
	return &ConsumptionRepositoryFS{client: client}
}

func (r *ConsumptionRepositoryFS) col(tenantID string) *firestore.CollectionRef {
	return r.client.tenant(tenantID).Collection("consumption")
}

func (r *ConsumptionRepositoryFS) History(ctx context.Context, tenantID string) (entity.ConsumptionHistory, error) {
	iter := r.col(tenantID).Documents(ctx)
	defer iter.Stop()

	out := entity.ConsumptionHistory{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapErr("leer consumo", err)
		}
		rec := dataToConsumption(doc.Ref.ID, doc.Data())
		out[rec.ItemName] = rec
	}
	return out, nil
}

// MergeMonths suma cada mes con Increment; meses no incluidos quedan intactos.
func (r *ConsumptionRepositoryFS) MergeMonths(ctx context.Context, tenantID string, record entity.MonthlyConsumptionRecord) error {
	name := strings.TrimSpace(record.ItemName)
	if name == "" {
		return domain.ErrInvalidInput
	}
	months := make(map[string]any, len(record.Months))
	for m, v := range record.Months {
		if !entity.ValidMonth(m) {
			return domain.ErrInvalidInput
		}
		months[m] = firestore.Increment(inventory.ToNonNegativeNumber(v))
	}
	data := map[string]any{
		"itemName": name,
		"months":   months,
	}
	if _, err := r.col(tenantID).Doc(consumptionDocID(name)).Set(ctx, data, firestore.MergeAll); err != nil {
		return mapErr("guardar consumo", err)
	}
	return nil
}
