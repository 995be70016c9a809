package firestoredb

import (
	"context"
	"errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.CustomPageRepository = (*CustomPageRepositoryFS)(nil)

// CustomPageRepositoryFS páginas en tenants/{t}/pages/{id}.
type CustomPageRepositoryFS struct {
	client *Client
}

func NewCustomPageRepository(client *Client) *CustomPageRepositoryFS {
	return &CustomPageRepositoryFS{client: client}
}

func (r *CustomPageRepositoryFS) col(tenantID string) *firestore.CollectionRef {
	return r.client.tenant(tenantID).Collection("pages")
}

func (r *CustomPageRepositoryFS) Create(ctx context.Context, page *entity.CustomPage) error {
	data := map[string]any{
		"pharmacyId": page.PharmacyID,
		"title":      page.Title,
		"month":      page.Month,
		"items":      itemsToData(page.Items),
		"createdAt":  page.CreatedAt,
		"updatedAt":  page.UpdatedAt,
	}
	if _, err := r.col(page.TenantID).Doc(page.ID).Create(ctx, data); err != nil {
		return mapErr("crear página", err)
	}
	return nil
}

func (r *CustomPageRepositoryFS) GetByID(ctx context.Context, tenantID, id string) (*entity.CustomPage, error) {
	doc, err := r.col(tenantID).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr("leer página", err)
	}
	return docToPage(tenantID, doc), nil
}

// List con pharmacyID vacío devuelve todas las páginas del tenant.
func (r *CustomPageRepositoryFS) List(ctx context.Context, tenantID, pharmacyID string) ([]*entity.CustomPage, error) {
	q := r.col(tenantID).Query
	if pharmacyID != "" {
		q = q.Where("pharmacyId", "==", pharmacyID)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*entity.CustomPage
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapErr("listar páginas", err)
		}
		out = append(out, docToPage(tenantID, doc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// SaveItems reemplaza la lista completa; la página debe existir.
func (r *CustomPageRepositoryFS) SaveItems(ctx context.Context, page *entity.CustomPage) error {
	updatedAt := page.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	updates := []firestore.Update{
		{Path: "items", Value: itemsToData(page.Items)},
		{Path: "updatedAt", Value: updatedAt},
	}
	if _, err := r.col(page.TenantID).Doc(page.ID).Update(ctx, updates); err != nil {
		return mapErr("guardar ítems de página", err)
	}
	return nil
}

func (r *CustomPageRepositoryFS) Delete(ctx context.Context, tenantID, id string) error {
	ref := r.col(tenantID).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return mapErr("leer página", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return mapErr("eliminar página", err)
	}
	return nil
}

func docToPage(tenantID string, doc *firestore.DocumentSnapshot) *entity.CustomPage {
	data := doc.Data()
	return &entity.CustomPage{
		ID:         doc.Ref.ID,
		TenantID:   tenantID,
		PharmacyID: asString(data, "pharmacyId"),
		Title:      asString(data, "title"),
		Month:      asString(data, "month"),
		Items:      dataToItems(data["items"]),
		CreatedAt:  asTime(data, "createdAt"),
		UpdatedAt:  asTime(data, "updatedAt"),
	}
}
