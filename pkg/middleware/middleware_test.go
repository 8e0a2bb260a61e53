package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestPanicRecoverMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewPanicRecoverMiddleware(newTestLogger()).Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "INTERNAL_ERROR")
}

func newCORSApp() *fiber.App {
	app := fiber.New()
	app.Use(NewCORSMiddleware(
		[]string{"http://localhost:3000"},
		[]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		true,
		nil,
		"600",
	).Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodOptions, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPost)
	req.Header.Set(fiber.HeaderAccessControlRequestHeaders, "X-Custom")

	resp, err := newCORSApp().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
	assert.Equal(t, "X-Custom", resp.Header.Get(fiber.HeaderAccessControlAllowHeaders))
	assert.Equal(t, "600", resp.Header.Get(fiber.HeaderAccessControlMaxAge))
}

func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://evil.example")

	resp, err := newCORSApp().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware(newTestLogger()).Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(common.RequestIDKey).(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	generated := resp.Header.Get(common.RequestIDHeader)
	_, parseErr := uuid.Parse(generated)
	assert.NoError(t, parseErr)
	assert.Equal(t, generated, string(body))

	existing := uuid.New().String()
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(common.RequestIDHeader, existing)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, existing, resp.Header.Get(common.RequestIDHeader))
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	app := fiber.New()
	app.Use(NewMetricsMiddleware(newTestLogger(), 1).Middleware())
	app.Get("/api/v2/brands", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	counter := prometheus.RequestTotal.WithLabelValues(fiber.MethodGet, "/api/v2/brands", "200")
	before := promtest.ToFloat64(counter)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v2/brands", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Eventually(t, func() bool {
		return promtest.ToFloat64(counter) == before+1
	}, time.Second, 10*time.Millisecond)
}

func TestTransportChain_SkipsNil(t *testing.T) {
	tr := Transport{
		PanicRecoverMiddleware: NewPanicRecoverMiddleware(newTestLogger()),
		RequestIDMiddleware:    NewRequestIDMiddleware(newTestLogger()),
	}
	assert.Len(t, tr.Chain(), 2)
}
