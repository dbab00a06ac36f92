package config

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/adrg/xdg"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	libErr "github.com/tektronix/lib-trial-license-go/error"
	"github.com/tektronix/lib-trial-license-go/model"
)

// ClientConfig holds the resolved configuration of the trial gate
type ClientConfig struct {
	Vendor   string // Vendor directory name (e.g., "Keithley")
	Product  string // Product directory name (e.g., "TSPToolkit")
	DataDir  string // Public, world-visible data directory
	CacheDir string // User cache directory holding the witness image

	TrialDays int
	Namespace string

	// Background refresh configuration
	RefreshInterval time.Duration
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		Vendor:          cn.DefaultVendor,
		Product:         cn.DefaultProduct,
		DataDir:         xdg.UserDirs.PublicShare,
		CacheDir:        xdg.CacheHome,
		TrialDays:       cn.TrialDays,
		Namespace:       cn.IdentityNamespace,
		RefreshInterval: cn.DefaultRefreshInterval,
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.Vendor == "" {
		return errors.New("vendor is required")
	}
	if c.Product == "" {
		return errors.New("product is required")
	}
	if c.TrialDays <= 0 {
		return errors.New("trial length must be positive")
	}
	if c.Namespace == "" {
		return errors.New("identity namespace is required")
	}
	if c.DataDir == "" {
		return libErr.NewEnvironmentError("resolve public data directory", cn.ErrDirectoryNotFound)
	}
	if c.CacheDir == "" {
		return libErr.NewEnvironmentError("resolve cache directory", cn.ErrDirectoryNotFound)
	}
	return nil
}

// KeyDir returns the directory holding the trial record
func (c *ClientConfig) KeyDir() string {
	return filepath.Join(c.DataDir, c.Vendor, c.Product)
}

// FromModel converts a model.Config to a ClientConfig, filling unset fields
// with the platform directories and defaults
func FromModel(cfg model.Config, logger log.Logger) (*ClientConfig, error) {
	config := NewDefaultConfig()

	if cfg.Vendor != "" {
		config.Vendor = cfg.Vendor
	}
	if cfg.Product != "" {
		config.Product = cfg.Product
	}
	if cfg.DataDir != "" {
		config.DataDir = cfg.DataDir
	}
	if cfg.CacheDir != "" {
		config.CacheDir = cfg.CacheDir
	}

	if err := config.Validate(); err != nil {
		logger.Errorf("Invalid trial license configuration: %v", err)
		return nil, err
	}

	logger.Debugf("Trial record directory: %s, witness directory: %s", config.KeyDir(), config.CacheDir)

	return &config, nil
}
