package constant

// Environment variable names
const (
	// Vendor directory environment variable
	EnvVendor = "TRIAL_VENDOR"

	// Product directory environment variable
	EnvProduct = "TRIAL_PRODUCT"

	// Public data directory override (defaults to the user's public share directory)
	EnvDataDir = "TRIAL_DATA_DIR"

	// Cache directory override (defaults to the user's cache directory)
	EnvCacheDir = "TRIAL_CACHE_DIR"
)
