package firestoredb

import (
	"context"
	"errors"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepositoryFS)(nil)

// AttendanceRepositoryFS asistencia en tenants/{t}/attendance/{farmacéutico_fecha}.
// Se guarda también el mes para consultar con dos igualdades y evitar un índice compuesto.
type AttendanceRepositoryFS struct {
	client *Client
}

func NewAttendanceRepository(client *Client) *AttendanceRepositoryFS {
	return &AttendanceRepositoryFS{client: client}
}

func (r *AttendanceRepositoryFS) col(tenantID string) *firestore.CollectionRef {
	return r.client.tenant(tenantID).Collection("attendance")
}

func (r *AttendanceRepositoryFS) Upsert(ctx context.Context, rec *entity.AttendanceRecord) error {
	data := map[string]any{
		"pharmacyId":   rec.PharmacyID,
		"pharmacistId": rec.PharmacistID,
		"date":         rec.Date,
		"month":        monthOf(rec.Date),
		"status":       rec.Status,
		"createdAt":    rec.CreatedAt,
	}
	if rec.CheckIn != nil {
		data["checkIn"] = rec.CheckIn.UTC()
	}
	if _, err := r.col(rec.TenantID).Doc(rec.ID).Set(ctx, data); err != nil {
		return mapErr("guardar asistencia", err)
	}
	return nil
}

func (r *AttendanceRepositoryFS) ListByMonth(ctx context.Context, tenantID, pharmacyID, month string) ([]*entity.AttendanceRecord, error) {
	q := r.col(tenantID).
		Where("pharmacyId", "==", pharmacyID).
		Where("month", "==", month)
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*entity.AttendanceRecord
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapErr("listar asistencia", err)
		}
		data := doc.Data()
		out = append(out, &entity.AttendanceRecord{
			ID:           doc.Ref.ID,
			TenantID:     tenantID,
			PharmacyID:   asString(data, "pharmacyId"),
			PharmacistID: asString(data, "pharmacistId"),
			Date:         asString(data, "date"),
			Status:       asString(data, "status"),
			CheckIn:      asTimePtr(data, "checkIn"),
			CreatedAt:    asTime(data, "createdAt"),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].PharmacistID < out[j].PharmacistID
	})
	return out, nil
}

// monthOf YYYY-MM-DD → YYYY-MM.
func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
