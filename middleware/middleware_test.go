package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/license"
	"github.com/tektronix/lib-trial-license-go/middleware"
	"github.com/tektronix/lib-trial-license-go/model"
	"github.com/tektronix/lib-trial-license-go/pkg"
	"github.com/tektronix/lib-trial-license-go/test/helper"
	"github.com/tektronix/lib-trial-license-go/test/mocks"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorBody is the JSON shape of a refused request
type errorBody struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

var startedAt = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type gate struct {
	client  *middleware.LicenseClient
	manager *license.Manager
	now     *time.Time
	reasons []string
}

func newGate(t *testing.T, sb *helper.Sandbox) *gate {
	t.Helper()

	m, err := license.NewWithProvider(sb.Config(), mocks.NewIdentityProvider("test-machine"), mocks.NewLogger())
	require.NoError(t, err)

	now := startedAt
	m.SetClock(func() time.Time { return now })

	g := &gate{manager: m, now: &now}
	g.client = middleware.NewLicenseClientFromManager(m)
	g.client.SetTerminationHandler(func(reason string) { g.reasons = append(g.reasons, reason) })

	t.Cleanup(g.client.Close)

	return g
}

func newApp(g *gate) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(g.client.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

func TestMiddleware_ActiveTrial(t *testing.T) {
	g := newGate(t, helper.NewSandbox(t))
	app := newApp(g)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, g.reasons)
	assert.True(t, g.client.Result().Active)
}

func TestMiddleware_TamperedTrial(t *testing.T) {
	sb := helper.NewSandbox(t)
	sb.WriteKeyFile(t, "abc,def")

	g := newGate(t, sb)
	app := newApp(g)

	assert.Equal(t, []string{cn.RejectionReason}, g.reasons)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, cn.ErrTrialNotActive.Error(), body.Code)
	assert.NotContains(t, body.Message, "tamper")
}

func TestMiddleware_ExpiresWhileRunning(t *testing.T) {
	g := newGate(t, helper.NewSandbox(t))
	app := newApp(g)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	*g.now = g.now.Add(91 * 24 * time.Hour)
	require.ErrorIs(t, g.manager.Revalidate(context.Background()), cn.ErrTrialNotActive)

	resp, err = app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddleware_DefaultTerminationPanics(t *testing.T) {
	sb := helper.NewSandbox(t)
	sb.WriteKeyFile(t, "abc,def")

	m, err := license.NewWithProvider(sb.Config(), mocks.NewIdentityProvider("test-machine"), mocks.NewLogger())
	require.NoError(t, err)

	client := middleware.NewLicenseClientFromManager(m)
	defer client.Close()

	assert.PanicsWithValue(t, "trial gate refused access: "+cn.RejectionReason, func() {
		client.Middleware()
	})
}

func TestStartupValidation_RunsOnce(t *testing.T) {
	sb := helper.NewSandbox(t)
	sb.WriteKeyFile(t, "abc,def")

	g := newGate(t, sb)

	g.client.StartupValidation()
	_ = g.client.Middleware()
	_ = g.client.UnaryServerInterceptor()
	_ = g.client.StreamServerInterceptor()

	assert.Len(t, g.reasons, 1)
}

func TestUnaryServerInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/instrument.Debugger/Start"}
	handler := func(ctx context.Context, req any) (any, error) { return "started", nil }

	t.Run("active", func(t *testing.T) {
		g := newGate(t, helper.NewSandbox(t))

		res, err := g.client.UnaryServerInterceptor()(context.Background(), nil, info, handler)
		require.NoError(t, err)
		assert.Equal(t, "started", res)
	})

	t.Run("not active", func(t *testing.T) {
		sb := helper.NewSandbox(t)
		sb.WriteKeyFile(t, "abc,def")
		g := newGate(t, sb)

		res, err := g.client.UnaryServerInterceptor()(context.Background(), nil, info, handler)
		assert.Nil(t, res)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

type fakeStream struct {
	grpc.ServerStream
}

func (fakeStream) Context() context.Context { return context.Background() }

func TestStreamServerInterceptor(t *testing.T) {
	info := &grpc.StreamServerInfo{FullMethod: "/instrument.Debugger/Watch", IsServerStream: true}

	t.Run("active", func(t *testing.T) {
		g := newGate(t, helper.NewSandbox(t))

		called := false
		err := g.client.StreamServerInterceptor()(nil, fakeStream{}, info, func(srv any, ss grpc.ServerStream) error {
			called = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("not active", func(t *testing.T) {
		sb := helper.NewSandbox(t)
		sb.WriteKeyFile(t, "abc,def")
		g := newGate(t, sb)

		called := false
		err := g.client.StreamServerInterceptor()(nil, fakeStream{}, info, func(srv any, ss grpc.ServerStream) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestNewLicenseClient_InvalidConfig(t *testing.T) {
	sb := helper.NewSandbox(t)

	cfg := sb.Config()
	cfg.Vendor = ""

	client, err := middleware.NewLicenseClient(cfg, mocks.NewLogger())

	assert.Nil(t, client)

	var vErr pkg.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, cn.ErrInvalidVendor.Error(), vErr.Code)
}

func TestNilClient(t *testing.T) {
	var client *middleware.LicenseClient

	assert.NotPanics(t, func() {
		client.StartupValidation()
		client.SetTerminationHandler(func(string) {})
		client.Close()
	})
	assert.Equal(t, model.ValidationResult{}, client.Result())
	assert.Nil(t, middleware.NewLicenseClientFromManager(nil))
}
