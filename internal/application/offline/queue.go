// Package offline implementa la cola de escrituras pendientes y el caché local
// usados cuando el almacén de documentos no responde.
//
// Contrato: las escrituras (reemplazos completos de lista) se encolan en orden;
// al reconectar se reproducen en orden FIFO. Las exitosas se eliminan; las fallidas
// quedan con attempts+1 y se reintentan en la siguiente reconexión. No hay
// transacción entre escrituras: un replay parcial es un resultado válido.
package offline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// ApplyFunc aplica una escritura pendiente contra el almacén remoto.
type ApplyFunc func(ctx context.Context, w *entity.PendingWrite) error

// ReplayResult resultado de un replay.
type ReplayResult struct {
	Applied   int
	Failed    int
	Remaining int
}

// Queue cola FIFO de escrituras pendientes persistida en repository.PendingWriteRepository.
type Queue struct {
	repo repository.PendingWriteRepository
	log  *logger.Logger
	now  func() time.Time

	replayMu sync.Mutex
}

// NewQueue construye la cola.
func NewQueue(repo repository.PendingWriteRepository, log *logger.Logger) *Queue {
	return &Queue{repo: repo, log: log, now: time.Now}
}

// Enqueue agrega la escritura al final de la cola.
func (q *Queue) Enqueue(ctx context.Context, w *entity.PendingWrite) error {
	if q == nil {
		return domain.ErrOfflineDisabled
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = q.now().UTC()
	}
	if err := q.repo.Append(ctx, w); err != nil {
		return fmt.Errorf("offline: encolar: %w", err)
	}
	q.log.Info().Str("kind", w.Kind).Str("tenant_id", w.TenantID).Str("target", w.TargetKey()).
		Msg("escritura encolada offline")
	return nil
}

// HasPending indica si hay escrituras encoladas para el mismo documento.
func (q *Queue) HasPending(ctx context.Context, target *entity.PendingWrite) (bool, error) {
	if q == nil {
		return false, nil
	}
	return q.repo.HasPending(ctx, target)
}

// Size número de escrituras pendientes.
func (q *Queue) Size(ctx context.Context) (int, error) {
	if q == nil {
		return 0, nil
	}
	return q.repo.Count(ctx)
}

// Replay aplica las escrituras pendientes en orden de encolado.
//
// Si una escritura falla se conserva y el replay continúa con las siguientes,
// excepto las que apuntan al mismo documento: esas esperan al próximo replay para
// no aplicar una lista más nueva antes que una más vieja.
// Replays concurrentes se serializan.
func (q *Queue) Replay(ctx context.Context, apply ApplyFunc) (ReplayResult, error) {
	var res ReplayResult
	if q == nil {
		return res, domain.ErrOfflineDisabled
	}
	q.replayMu.Lock()
	defer q.replayMu.Unlock()

	pending, err := q.repo.ListPending(ctx, 0)
	if err != nil {
		return res, fmt.Errorf("offline: listar pendientes: %w", err)
	}

	blocked := map[string]bool{}
	for _, w := range pending {
		if ctx.Err() != nil {
			break
		}
		key := w.TargetKey()
		if blocked[key] {
			continue
		}
		if err := apply(ctx, w); err != nil {
			blocked[key] = true
			res.Failed++
			q.log.Warn().Err(err).Str("id", w.ID).Str("kind", w.Kind).Int("attempts", w.Attempts+1).
				Msg("replay: escritura fallida, se conserva")
			if merr := q.repo.MarkFailed(ctx, w.ID, err.Error()); merr != nil {
				q.log.Error().Err(merr).Str("id", w.ID).Msg("replay: no se pudo marcar el fallo")
			}
			continue
		}
		if err := q.repo.Delete(ctx, w.ID); err != nil {
			// Aplicada pero no eliminada: se volverá a aplicar (reemplazo idempotente).
			q.log.Error().Err(err).Str("id", w.ID).Msg("replay: no se pudo eliminar la escritura aplicada")
		}
		res.Applied++
	}

	remaining, err := q.repo.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("offline: contar pendientes: %w", err)
	}
	res.Remaining = remaining
	q.log.Info().Int("applied", res.Applied).Int("failed", res.Failed).Int("remaining", res.Remaining).
		Msg("replay offline terminado")
	return res, nil
}
