package middleware

import (
	"context"

	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/pkg"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor creates a gRPC unary server interceptor that gates calls on the trial license
// It works similarly to the HTTP middleware but adapted for gRPC context
func (c *LicenseClient) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	// Perform startup validation
	c.startupValidation()

	// Return the interceptor function
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if c == nil || c.manager == nil {
			return handler(ctx, req)
		}

		if err := c.checkGRPC(info.FullMethod); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// StreamServerInterceptor creates a gRPC stream server interceptor that gates streams on the trial license
func (c *LicenseClient) StreamServerInterceptor() grpc.StreamServerInterceptor {
	// Perform startup validation
	c.startupValidation()

	// Return the interceptor function
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if c == nil || c.manager == nil {
			return handler(srv, ss)
		}

		if err := c.checkGRPC(info.FullMethod); err != nil {
			return err
		}

		// Continue with the stream handling
		return handler(srv, ss)
	}
}

// checkGRPC returns a PermissionDenied status when the trial is not active
func (c *LicenseClient) checkGRPC(method string) error {
	if c.isActive() {
		return nil
	}

	c.logger.Debugf("Refusing %s: %s", method, cn.RejectionReason)

	return status.Error(codes.PermissionDenied, pkg.ValidateBusinessError(cn.ErrTrialNotActive, "").Error())
}
