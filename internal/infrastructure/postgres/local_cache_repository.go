package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var (
	_ repository.SheetCache   = (*SheetCacheRepo)(nil)
	_ repository.ProfileStore = (*ProfileRepo)(nil)
)

// ── Hojas ────────────────────────────────────────────────────────────────────

// SheetCacheRepo última lista de ítems conocida por hoja, para servir lecturas sin conexión.
type SheetCacheRepo struct {
	q Querier
}

func NewSheetCacheRepository(q Querier) *SheetCacheRepo {
	return &SheetCacheRepo{q: q}
}

func (r *SheetCacheRepo) GetSheet(ctx context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, bool, error) {
	var raw []byte
	err := r.q.QueryRow(ctx,
		`SELECT items FROM cached_sheets WHERE tenant_id = $1 AND pharmacy_id = $2 AND month = $3`,
		tenantID, pharmacyID, month).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached sheet: %w", err)
	}
	items := []entity.InventoryItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode cached sheet: %w", err)
	}
	return items, true, nil
}

func (r *SheetCacheRepo) PutSheet(ctx context.Context, sheet *entity.InventorySheet) error {
	items := sheet.Items
	if items == nil {
		items = []entity.InventoryItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cached sheet: %w", err)
	}
	updatedAt := sheet.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO cached_sheets (tenant_id, pharmacy_id, month, items, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id, pharmacy_id, month)
		DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, sheet.TenantID, sheet.PharmacyID, sheet.Month, raw, updatedAt); err != nil {
		return fmt.Errorf("upsert cached sheet: %w", err)
	}
	return nil
}

// ── Perfiles ─────────────────────────────────────────────────────────────────

// ProfileRepo perfiles cacheados (usuario → dueño) para resolver el tenant sin consultar Firestore.
type ProfileRepo struct {
	q Querier
}

func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// CachedProfile devuelve (nil, nil) si el usuario no tiene perfil guardado.
func (r *ProfileRepo) CachedProfile(ctx context.Context, userID string) (*entity.CachedProfile, error) {
	var p entity.CachedProfile
	err := r.q.QueryRow(ctx,
		`SELECT user_id, owner_id, role, updated_at FROM cached_profiles WHERE user_id = $1`,
		userID).Scan(&p.UserID, &p.OwnerID, &p.Role, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) SaveProfile(ctx context.Context, p *entity.CachedProfile) error {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO cached_profiles (user_id, owner_id, role, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET owner_id = EXCLUDED.owner_id, role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, p.UserID, p.OwnerID, p.Role, updatedAt); err != nil {
		return fmt.Errorf("upsert cached profile: %w", err)
	}
	return nil
}
