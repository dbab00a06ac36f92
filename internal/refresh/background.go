package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// Revalidator defines the interface for re-evaluating the trial state
type Revalidator interface {
	Revalidate(ctx context.Context) error
}

// Manager handles background re-evaluation of the trial for long-running hosts
type Manager struct {
	refreshInterval       time.Duration
	started               bool
	mu                    sync.Mutex
	cancel                context.CancelFunc
	done                  chan struct{}
	revalidator           Revalidator
	onReject              func(err error)
	logger                log.Logger
	lastAttemptedRefresh  time.Time
	lastSuccessfulRefresh time.Time
}

// New creates a new background refresh manager. onReject is called once when
// the trial stops being active; it may be nil.
func New(revalidator Revalidator, refreshInterval time.Duration, onReject func(err error), logger log.Logger) *Manager {
	return &Manager{
		revalidator:     revalidator,
		refreshInterval: refreshInterval,
		onReject:        onReject,
		logger:          logger,
	}
}

// Start begins the background refresh process
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}

	refreshCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	m.started = true
	done := m.done
	m.mu.Unlock()

	ticker := time.NewTicker(m.refreshInterval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		m.logger.Info("Starting background trial refresh")

		for {
			select {
			case <-refreshCtx.Done():
				m.logger.Info("Background trial refresh stopped")
				return

			case <-ticker.C:
				if !m.attemptRevalidation(refreshCtx) {
					return
				}
			}
		}
	}()
}

// Shutdown stops the background refresh process and waits for it to exit
func (m *Manager) Shutdown() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	done := m.done
	m.started = false
	m.mu.Unlock()

	<-done
	m.logger.Info("Background trial refresh shutdown complete")
}

// lastAttempt returns when the trial was last re-evaluated
func (m *Manager) lastAttempt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastAttemptedRefresh
}

// lastSuccess returns when the trial was last confirmed active
func (m *Manager) lastSuccess() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastSuccessfulRefresh
}

// attemptRevalidation re-evaluates the trial and reports whether refreshing
// should continue
func (m *Manager) attemptRevalidation(ctx context.Context) bool {
	m.logger.Debugf("Running scheduled trial re-evaluation, previous attempt at %s", m.lastAttempt().Format(time.RFC3339))

	m.mu.Lock()
	m.lastAttemptedRefresh = time.Now()
	m.mu.Unlock()

	err := m.revalidator.Revalidate(ctx)
	if err == nil {
		m.mu.Lock()
		m.lastSuccessfulRefresh = time.Now()
		m.mu.Unlock()

		return true
	}

	if ctx.Err() != nil {
		return false
	}

	m.logger.Errorf("Trial is no longer active, last confirmed at %s: %v", m.lastSuccess().Format(time.RFC3339), err)

	if m.onReject != nil {
		m.onReject(err)
	}

	return false
}
