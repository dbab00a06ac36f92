package middleware

import (
	"github.com/tektronix/lib-trial-license-go/license"
)

// For testing purposes only - these functions should never be used in production

// NewLicenseClientFromManager wraps an already constructed manager, so tests can
// inject a fixed machine identity and clock
func NewLicenseClientFromManager(manager *license.Manager) *LicenseClient {
	if manager == nil {
		return nil
	}

	return newLicenseClient(manager)
}
