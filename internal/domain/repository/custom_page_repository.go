package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CustomPageRepository páginas de ítems definidas por el usuario.
type CustomPageRepository interface {
	Create(ctx context.Context, page *entity.CustomPage) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.CustomPage, error)
	List(ctx context.Context, tenantID, pharmacyID string) ([]*entity.CustomPage, error)
	// SaveItems reemplaza la lista completa de ítems de la página.
	SaveItems(ctx context.Context, page *entity.CustomPage) error
	Delete(ctx context.Context, tenantID, id string) error
}
