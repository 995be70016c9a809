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

var (
	_ repository.PharmacyRepository   = (*PharmacyRepositoryFS)(nil)
	_ repository.PharmacistRepository = (*PharmacistRepositoryFS)(nil)
)

// ── Farmacias ────────────────────────────────────────────────────────────────

type PharmacyRepositoryFS struct {
	client *Client
}

func NewPharmacyRepository(client *Client) *PharmacyRepositoryFS {
	return &PharmacyRepositoryFS{client: client}
}

func (r *PharmacyRepositoryFS) col(tenantID string) *firestore.CollectionRef {
	return r.client.tenant(tenantID).Collection("pharmacies")
}

func (r *PharmacyRepositoryFS) Create(ctx context.Context, p *entity.Pharmacy) error {
	if _, err := r.col(p.TenantID).Doc(p.ID).Create(ctx, pharmacyToData(p)); err != nil {
		return mapErr("crear farmacia", err)
	}
	return nil
}

func (r *PharmacyRepositoryFS) GetByID(ctx context.Context, tenantID, id string) (*entity.Pharmacy, error) {
	doc, err := r.col(tenantID).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr("leer farmacia", err)
	}
	return docToPharmacy(tenantID, doc), nil
}

// Update reescribe los campos de la farmacia sin tocar sus subcolecciones.
func (r *PharmacyRepositoryFS) Update(ctx context.Context, p *entity.Pharmacy) error {
	ref := r.col(p.TenantID).Doc(p.ID)
	if _, err := ref.Get(ctx); err != nil {
		return mapErr("leer farmacia", err)
	}
	if _, err := ref.Set(ctx, pharmacyToData(p)); err != nil {
		return mapErr("actualizar farmacia", err)
	}
	return nil
}

func (r *PharmacyRepositoryFS) List(ctx context.Context, tenantID string) ([]*entity.Pharmacy, error) {
	iter := r.col(tenantID).Documents(ctx)
	defer iter.Stop()

	var out []*entity.Pharmacy
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapErr("listar farmacias", err)
		}
		out = append(out, docToPharmacy(tenantID, doc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete borra el documento de la farmacia. Las hojas de inventario quedan como subcolección huérfana.
func (r *PharmacyRepositoryFS) Delete(ctx context.Context, tenantID, id string) error {
	ref := r.col(tenantID).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return mapErr("leer farmacia", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return mapErr("eliminar farmacia", err)
	}
	return nil
}

func pharmacyToData(p *entity.Pharmacy) map[string]any {
	return map[string]any{
		"name":      p.Name,
		"address":   p.Address,
		"phone":     p.Phone,
		"createdAt": p.CreatedAt,
		"updatedAt": p.UpdatedAt,
	}
}

func docToPharmacy(tenantID string, doc *firestore.DocumentSnapshot) *entity.Pharmacy {
	data := doc.Data()
	return &entity.Pharmacy{
		ID:        doc.Ref.ID,
		TenantID:  tenantID,
		Name:      asString(data, "name"),
		Address:   asString(data, "address"),
		Phone:     asString(data, "phone"),
		CreatedAt: asTime(data, "createdAt"),
		UpdatedAt: asTime(data, "updatedAt"),
	}
}

// ── Farmacéuticos ────────────────────────────────────────────────────────────

type PharmacistRepositoryFS struct {
	client *Client
}

func NewPharmacistRepository(client *Client) *PharmacistRepositoryFS {
	return &PharmacistRepositoryFS{client: client}
}

func (r *PharmacistRepositoryFS) col(tenantID string) *firestore.CollectionRef {
	return r.client.tenant(tenantID).Collection("pharmacists")
}

func (r *PharmacistRepositoryFS) Create(ctx context.Context, p *entity.Pharmacist) error {
	if _, err := r.col(p.TenantID).Doc(p.ID).Create(ctx, pharmacistToData(p)); err != nil {
		return mapErr("crear farmacéutico", err)
	}
	return nil
}

func (r *PharmacistRepositoryFS) GetByID(ctx context.Context, tenantID, id string) (*entity.Pharmacist, error) {
	doc, err := r.col(tenantID).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr("leer farmacéutico", err)
	}
	return docToPharmacist(tenantID, doc), nil
}

func (r *PharmacistRepositoryFS) Update(ctx context.Context, p *entity.Pharmacist) error {
	ref := r.col(p.TenantID).Doc(p.ID)
	if _, err := ref.Get(ctx); err != nil {
		return mapErr("leer farmacéutico", err)
	}
	if _, err := ref.Set(ctx, pharmacistToData(p)); err != nil {
		return mapErr("actualizar farmacéutico", err)
	}
	return nil
}

func (r *PharmacistRepositoryFS) ListByPharmacy(ctx context.Context, tenantID, pharmacyID string) ([]*entity.Pharmacist, error) {
	iter := r.col(tenantID).Where("pharmacyId", "==", pharmacyID).Documents(ctx)
	defer iter.Stop()

	var out []*entity.Pharmacist
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapErr("listar farmacéuticos", err)
		}
		out = append(out, docToPharmacist(tenantID, doc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *PharmacistRepositoryFS) Delete(ctx context.Context, tenantID, id string) error {
	ref := r.col(tenantID).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return mapErr("leer farmacéutico", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return mapErr("eliminar farmacéutico", err)
	}
	return nil
}

func pharmacistToData(p *entity.Pharmacist) map[string]any {
	return map[string]any{
		"pharmacyId": p.PharmacyID,
		"name":       p.Name,
		"phone":      p.Phone,
		"email":      p.Email,
		"active":     p.Active,
		"createdAt":  p.CreatedAt,
		"updatedAt":  p.UpdatedAt,
	}
}

func docToPharmacist(tenantID string, doc *firestore.DocumentSnapshot) *entity.Pharmacist {
	data := doc.Data()
	active, _ := data["active"].(bool)
	return &entity.Pharmacist{
		ID:         doc.Ref.ID,
		TenantID:   tenantID,
		PharmacyID: asString(data, "pharmacyId"),
		Name:       asString(data, "name"),
		Phone:      asString(data, "phone"),
		Email:      asString(data, "email"),
		Active:     active,
		CreatedAt:  asTime(data, "createdAt"),
		UpdatedAt:  asTime(data, "updatedAt"),
	}
}
