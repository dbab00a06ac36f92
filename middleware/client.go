package middleware

import (
	"context"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/internal/refresh"
	"github.com/tektronix/lib-trial-license-go/internal/shutdown"
	"github.com/tektronix/lib-trial-license-go/license"
	"github.com/tektronix/lib-trial-license-go/model"
	"github.com/tektronix/lib-trial-license-go/util"
)

// LicenseClient is the public client API that exposes middleware functionality
// It's a wrapper around the trial license manager
type LicenseClient struct {
	manager         *license.Manager
	refreshManager  *refresh.Manager
	shutdownManager *shutdown.Manager
	logger          log.Logger
	// initOnce ensures startup validation and background refresh happen only once
	// even when both HTTP middleware and gRPC interceptors are used
	initOnce sync.Once
}

// NewLicenseClient creates a new license client with middleware capabilities.
// If logger is nil, defaults to a standard zap logger.
func NewLicenseClient(cfg model.Config, logger *log.Logger) (*LicenseClient, error) {
	var l log.Logger

	if logger != nil && *logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if err := util.ValidateEnvVariables(&cfg, l); err != nil {
		return nil, err
	}

	manager, err := license.New(cfg, &l)
	if err != nil {
		return nil, err
	}

	return newLicenseClient(manager), nil
}

func newLicenseClient(manager *license.Manager) *LicenseClient {
	c := &LicenseClient{
		manager:         manager,
		shutdownManager: shutdown.New(),
		logger:          manager.GetLogger(),
	}

	c.refreshManager = refresh.New(manager, manager.RefreshInterval(), c.reject, c.logger)

	return c
}

// SetTerminationHandler allows customizing how the application terminates when the trial is not active
func (c *LicenseClient) SetTerminationHandler(handler func(reason string)) {
	if c != nil && c.shutdownManager != nil {
		c.shutdownManager.SetHandler(handler)
	}
}

// StartupValidation evaluates the trial once and starts the background refresh.
// The termination handler is invoked when the trial is not active.
func (c *LicenseClient) StartupValidation() {
	c.startupValidation()
}

// ShutdownBackgroundRefresh stops the background refresh process
func (c *LicenseClient) ShutdownBackgroundRefresh() {
	if c != nil && c.refreshManager != nil {
		c.refreshManager.Shutdown()
	}
}

// Close stops the background refresh and releases the manager
func (c *LicenseClient) Close() {
	if c == nil || c.manager == nil {
		return
	}

	c.ShutdownBackgroundRefresh()
	c.manager.Close()
}

// GetLogger returns the logger used by the client
func (c *LicenseClient) GetLogger() log.Logger {
	return c.logger
}

// Result returns the current trial verdict
func (c *LicenseClient) Result() model.ValidationResult {
	if c == nil || c.manager == nil {
		return model.ValidationResult{}
	}

	return c.manager.Result()
}

// startupValidation performs common validation steps for both HTTP and gRPC
func (c *LicenseClient) startupValidation() {
	if c == nil || c.manager == nil {
		return
	}

	c.initOnce.Do(func() {
		if err := c.manager.Gate(); err != nil {
			c.logger.Errorf("Exiting: %s", cn.RejectionReason)
			c.shutdownManager.Terminate(cn.RejectionReason)

			return
		}

		// Kick-off background refresh for long running hosts
		c.refreshManager.Start(context.Background())
	})
}

// reject is called by the background refresh once the trial stops being active
func (c *LicenseClient) reject(_ error) {
	c.logger.Errorf("Exiting: %s", cn.RejectionReason)
	c.shutdownManager.Terminate(cn.RejectionReason)
}

// isActive reports whether requests may pass the gate
func (c *LicenseClient) isActive() bool {
	return c.manager.Status() == model.Available
}
