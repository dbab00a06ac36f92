package sdk

import (
	"os"

	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/model"
)

// LoadFromEnv builds the gate configuration from the environment. Vendor and
// product fall back to the toolkit defaults; empty directories are resolved
// from the platform later.
func LoadFromEnv() model.Config {
	cfg := model.Config{
		Vendor:   os.Getenv(cn.EnvVendor),
		Product:  os.Getenv(cn.EnvProduct),
		DataDir:  os.Getenv(cn.EnvDataDir),
		CacheDir: os.Getenv(cn.EnvCacheDir),
	}

	if cfg.Vendor == "" {
		cfg.Vendor = cn.DefaultVendor
	}

	if cfg.Product == "" {
		cfg.Product = cn.DefaultProduct
	}

	return cfg
}
