package middleware

import (
	"github.com/gofiber/fiber/v2"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/pkg"
	pkgHTTP "github.com/tektronix/lib-trial-license-go/pkg/net/http"
)

// Middleware creates a Fiber middleware that gates requests on the trial license
func (c *LicenseClient) Middleware() fiber.Handler {
	// Perform startup validation
	c.startupValidation()

	// Return request handler
	return func(ctx *fiber.Ctx) error {
		if c == nil || c.manager == nil {
			return ctx.Next()
		}

		if !c.isActive() {
			c.logger.Debugf("Refusing %s %s: %s", ctx.Method(), ctx.Path(), cn.RejectionReason)
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrTrialNotActive, ""))
		}

		return ctx.Next()
	}
}
