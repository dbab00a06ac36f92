package cache

import (
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/tektronix/lib-trial-license-go/constant"
)

// Manager caches string lookups (machine identifiers) in process memory
type Manager struct {
	cache  *ristretto.Cache[string, string]
	ttl    time.Duration
	logger log.Logger
}

// New creates a new cache manager whose entries live for ttl
func New(ttl time.Duration, logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.CacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Get retrieves a cached value
func (m *Manager) Get(key string) (string, bool) {
	val, found := m.cache.Get(key)
	if found {
		m.logger.Debugf("Cache hit for %s", key)
	}

	return val, found
}

// Store caches a value with the manager's TTL. The write is flushed before
// returning so the next Get observes it.
func (m *Manager) Store(key, value string) {
	m.cache.SetWithTTL(key, value, 1, m.ttl)
	m.cache.Wait()

	m.logger.Debugf("Stored %s in cache for %s", key, m.ttl)
}

// Close releases the cache's background goroutines
func (m *Manager) Close() {
	m.cache.Close()
}
