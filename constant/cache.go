package constant

import "time"

// Cache configuration constants
const (
	// IdentityCacheTTL defines how long a machine identifier lookup is reused
	IdentityCacheTTL = 1 * time.Hour
	// CacheNumCounters is the number of keys to track frequency
	CacheNumCounters = 1e3
	// CacheMaxCost is the maximum cost of cache (64KB)
	CacheMaxCost = 1 << 16
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
)
