package router

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/SneakerLens/pkg/config"
	handlers "github.com/NeuralTrust/SneakerLens/pkg/handlers/http"
	"github.com/NeuralTrust/SneakerLens/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(string(h))
}

func fullTransport() handlers.HandlerTransport {
	return handlers.HandlerTransport{
		RootHandler:       namedHandler("root"),
		FaviconHandler:    namedHandler("favicon"),
		VersionHandler:    namedHandler("version"),
		HealthHandler:     namedHandler("health"),
		LiveHandler:       namedHandler("live"),
		ReadyHandler:      namedHandler("ready"),
		SearchTextHandler: namedHandler("search"),
		ClassifyHandler:   namedHandler("classify"),
		BrandsHandler:     namedHandler("brands"),
		StatsHandler:      namedHandler("stats"),
	}
}

func TestAPIRouter_Routes(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := &middleware.Transport{RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger)}
	cfg := &config.Config{Server: config.ServerConfig{Environment: config.EnvironmentProduction}}

	app := fiber.New()
	require.NoError(t, NewAPIRouter(mw, fullTransport(), cfg).BuildRoutes(app))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{fiber.MethodGet, "/", "root"},
		{fiber.MethodGet, "/favicon.ico", "favicon"},
		{fiber.MethodGet, "/version", "version"},
		{fiber.MethodGet, "/health", "health"},
		{fiber.MethodGet, "/health/", "health"},
		{fiber.MethodGet, "/health/live", "live"},
		{fiber.MethodGet, "/health/ready", "ready"},
		{fiber.MethodPost, "/api/v2/search-text", "search"},
		{fiber.MethodPost, "/api/v2/classify", "classify"},
		{fiber.MethodGet, "/api/v2/brands", "brands"},
		{fiber.MethodGet, "/api/v2/stats", "stats"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil), -1)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, string(body))
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs/index.html", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAPIRouter_RejectsIncompleteTransport(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Environment: config.EnvironmentDevelopment}}
	err := NewAPIRouter(nil, handlers.HandlerTransport{}, cfg).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrInvalidHandlerTransport)
}

func TestAPIRouter_SwaggerInDevelopment(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Environment: config.EnvironmentDevelopment}}

	app := fiber.New()
	require.NoError(t, NewAPIRouter(nil, fullTransport(), cfg).BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, SwaggerPath, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "/api/v2/search-text")
	assert.Contains(t, string(body), "SneakerLens API")
}
