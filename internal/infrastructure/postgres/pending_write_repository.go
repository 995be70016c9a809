package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.PendingWriteRepository = (*PendingWriteRepo)(nil)

// PendingWriteRepo cola offline sobre la tabla pending_writes; seq conserva el orden de encolado.
type PendingWriteRepo struct {
	q Querier
}

func NewPendingWriteRepository(q Querier) *PendingWriteRepo {
	return &PendingWriteRepo{q: q}
}

func (r *PendingWriteRepo) Append(ctx context.Context, w *entity.PendingWrite) error {
	query := `
		INSERT INTO pending_writes (id, tenant_id, kind, pharmacy_id, month, page_id, target_key, payload, attempts, last_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq`
	err := r.q.QueryRow(ctx, query,
		w.ID, w.TenantID, w.Kind,
		nullIfEmpty(w.PharmacyID), nullIfEmpty(w.Month), nullIfEmpty(w.PageID),
		w.TargetKey(), w.Payload, w.Attempts, nullIfEmpty(w.LastError), w.CreatedAt,
	).Scan(&w.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pending write: %w", err)
	}
	return nil
}

// ListPending devuelve hasta limit escrituras en orden FIFO; limit <= 0 devuelve todas.
func (r *PendingWriteRepo) ListPending(ctx context.Context, limit int) ([]*entity.PendingWrite, error) {
	query := `
		SELECT id, seq, tenant_id, kind, pharmacy_id, month, page_id, payload, attempts, last_error, created_at
		FROM pending_writes
		ORDER BY seq`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending writes: %w", err)
	}
	defer rows.Close()

	var out []*entity.PendingWrite
	for rows.Next() {
		var w entity.PendingWrite
		var pharmacyID, month, pageID, lastErr *string
		if err := rows.Scan(&w.ID, &w.Seq, &w.TenantID, &w.Kind, &pharmacyID, &month, &pageID,
			&w.Payload, &w.Attempts, &lastErr, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending write: %w", err)
		}
		w.PharmacyID = derefString(pharmacyID)
		w.Month = derefString(month)
		w.PageID = derefString(pageID)
		w.LastError = derefString(lastErr)
		out = append(out, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows pending writes: %w", err)
	}
	return out, nil
}

func (r *PendingWriteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM pending_writes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pending write: %w", err)
	}
	return nil
}

func (r *PendingWriteRepo) MarkFailed(ctx context.Context, id, lastError string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE pending_writes SET attempts = attempts + 1, last_error = $2 WHERE id = $1`,
		id, lastError)
	if err != nil {
		return fmt.Errorf("mark pending write failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PendingWriteRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM pending_writes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending writes: %w", err)
	}
	return n, nil
}

func (r *PendingWriteRepo) HasPending(ctx context.Context, target *entity.PendingWrite) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pending_writes WHERE target_key = $1)`,
		target.TargetKey()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has pending write: %w", err)
	}
	return exists, nil
}
