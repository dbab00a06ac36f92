// Package identity derives a stable per-machine identifier from the
// platform's hardware-bound machine id.
package identity

import (
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/denisbrodbeck/machineid"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	libErr "github.com/tektronix/lib-trial-license-go/error"
	"github.com/tektronix/lib-trial-license-go/internal/cache"
)

// Provider reports the identifier of the host machine.
type Provider interface {
	Identifier() (string, error)
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func() (string, error)

// Identifier implements Provider.
func (f ProviderFunc) Identifier() (string, error) {
	return f()
}

// Machine hashes the platform machine id together with a namespace, so tools
// sharing the same id source never collide.
type Machine struct {
	namespace string
	lookup    func(appID string) (string, error)
	cache     *cache.Manager
	logger    log.Logger
}

// NewMachine creates a provider namespaced by namespace. cache may be nil.
func NewMachine(namespace string, cache *cache.Manager, logger log.Logger) *Machine {
	return &Machine{
		namespace: namespace,
		lookup:    machineid.ProtectedID,
		cache:     cache,
		logger:    logger,
	}
}

// Identifier returns the namespaced machine identifier. A platform that cannot
// report a machine id is a fatal environment failure.
func (m *Machine) Identifier() (string, error) {
	if m.cache != nil {
		if id, found := m.cache.Get(m.namespace); found {
			return id, nil
		}
	}

	id, err := m.lookup(m.namespace)
	if err != nil {
		m.logger.Errorf("Machine identifier is unavailable: %v", err)
		return "", libErr.NewEnvironmentError("identify machine", err)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		m.logger.Error("Machine identifier is empty")
		return "", libErr.NewEnvironmentError("identify machine", cn.ErrNoIdentifier)
	}

	if m.cache != nil {
		m.cache.Store(m.namespace, id)
	}

	return id, nil
}
