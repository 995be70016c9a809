package offline

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

const (
	defaultPingInterval = 15 * time.Second
	pingTimeout         = 5 * time.Second
)

// Monitor comprueba periódicamente el almacén y reproduce la cola al volver a estar
// online o, ya online, mientras queden escrituras retenidas.
type Monitor struct {
	pinger   repository.StorePinger
	queue    *Queue
	apply    ApplyFunc
	interval time.Duration
	log      *logger.Logger

	mu         sync.Mutex
	online     bool
	lastReplay *time.Time
}

// NewMonitor construye el monitor. Arranca en estado offline para que el primer ping
// exitoso reproduzca lo que haya quedado en la cola.
func NewMonitor(pinger repository.StorePinger, queue *Queue, apply ApplyFunc, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = defaultPingInterval
	}
	return &Monitor{pinger: pinger, queue: queue, apply: apply, interval: interval, log: log}
}

// Run bloquea hasta que ctx se cancele.
func (m *Monitor) Run(ctx context.Context) {
	m.CheckNow(ctx)
	t := time.NewTicker(m.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.CheckNow(ctx)
		}
	}
}

// CheckNow hace un ping y reproduce la cola si el almacén está disponible y hay pendientes. Devuelve el estado.
func (m *Monitor) CheckNow(ctx context.Context) bool {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := m.pinger.Ping(pctx)
	cancel()

	m.mu.Lock()
	was := m.online
	m.online = err == nil
	m.mu.Unlock()

	switch {
	case err != nil && was:
		m.log.Warn().Err(err).Msg("almacén de documentos no disponible; modo offline")
	case err == nil && !was:
		m.log.Info().Msg("almacén de documentos disponible; reproduciendo cola offline")
		m.replay(ctx)
	case err == nil:
		// Online con escrituras retenidas de un replay anterior: se reintentan en cada tick.
		if n, serr := m.queue.Size(ctx); serr == nil && n > 0 {
			m.log.Debug().Int("pending", n).Msg("reintentando cola offline")
			m.replay(ctx)
		}
	}
	return err == nil
}

func (m *Monitor) replay(ctx context.Context) {
	if _, err := m.ReplayNow(ctx); err != nil {
		m.log.Error().Err(err).Msg("replay offline fallido")
	}
}

// MarkOffline registra que una operación encontró el almacén caído.
func (m *Monitor) MarkOffline() {
	m.mu.Lock()
	m.online = false
	m.mu.Unlock()
}

// ReplayNow reproduce la cola inmediatamente.
func (m *Monitor) ReplayNow(ctx context.Context) (ReplayResult, error) {
	res, err := m.queue.Replay(ctx, m.apply)
	if err == nil {
		now := time.Now().UTC()
		m.mu.Lock()
		m.lastReplay = &now
		m.mu.Unlock()
	}
	return res, err
}

// Status estado actual para GET /api/offline/status.
func (m *Monitor) Status(ctx context.Context) (*dto.OfflineStatusDTO, error) {
	n, err := m.queue.Size(ctx)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return &dto.OfflineStatusDTO{
		Enabled:      true,
		Online:       m.online,
		Pending:      n,
		LastReplayAt: m.lastReplay,
	}, nil
}
