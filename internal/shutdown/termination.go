// Package shutdown decides what happens to the host process once the trial
// gate refuses to let the gated functionality run.
package shutdown

import "sync"

// RefusalPrefix starts the panic value of DefaultHandler
const RefusalPrefix = "trial gate refused access: "

// Handler receives the generic refusal reason. The reason never names the
// integrity check that failed.
type Handler func(reason string)

// DefaultHandler panics so a host that installed no handler never reaches the
// gated functionality. Hosts with a graceful shutdown path recover() it or
// install their own handler, e.g. one calling os.Exit(1).
func DefaultHandler(reason string) {
	panic(RefusalPrefix + reason)
}

// Manager holds the refusal handler of one gate. A refusal is final for the
// run: Expired and Tampered never heal, so the handler fires at most once.
type Manager struct {
	mu      sync.Mutex
	handler Handler
	refused bool
}

// New creates a manager with the default handler
func New() *Manager {
	return &Manager{
		handler: DefaultHandler,
	}
}

// SetHandler replaces the refusal handler. Install it before the gate is
// evaluated; a nil handler is ignored.
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// Terminate hands the refusal to the handler, unless the gate already refused
func (m *Manager) Terminate(reason string) {
	m.mu.Lock()
	if m.refused {
		m.mu.Unlock()
		return
	}

	m.refused = true
	handler := m.handler
	m.mu.Unlock()

	handler(reason)
}
