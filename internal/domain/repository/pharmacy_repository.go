package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// PharmacyRepository define el puerto de persistencia para Pharmacy (DIP).
type PharmacyRepository interface {
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Pharmacy, error)
	Update(ctx context.Context, pharmacy *entity.Pharmacy) error
	List(ctx context.Context, tenantID string) ([]*entity.Pharmacy, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// PharmacistRepository define el puerto de persistencia para Pharmacist (DIP).
type PharmacistRepository interface {
	Create(ctx context.Context, pharmacist *entity.Pharmacist) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Pharmacist, error)
	Update(ctx context.Context, pharmacist *entity.Pharmacist) error
	ListByPharmacy(ctx context.Context, tenantID, pharmacyID string) ([]*entity.Pharmacist, error)
	Delete(ctx context.Context, tenantID, id string) error
}
