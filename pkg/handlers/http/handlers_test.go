package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/app/health"
	healthmocks "github.com/NeuralTrust/SneakerLens/pkg/app/health/mocks"
	"github.com/NeuralTrust/SneakerLens/pkg/app/imaging"
	"github.com/NeuralTrust/SneakerLens/pkg/app/search"
	searchmocks "github.com/NeuralTrust/SneakerLens/pkg/app/search/mocks"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector"
	vectormocks "github.com/NeuralTrust/SneakerLens/pkg/domain/vector/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: 8000, Environment: config.EnvironmentDevelopment, RequestTimeout: 30},
		Search:    config.SearchConfig{DefaultTopK: 5, MaxTopK: 20},
		Limits:    config.LimitsConfig{MaxImageSize: 5 * 1024 * 1024},
		Embedding: config.EmbeddingConfig{Dimension: 1024},
	}
}

func newFiber() *fiber.App { return fiber.New() }

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func sampleOutcome() *search.Outcome {
	brand := "Nike"
	return &search.Outcome{
		Results: sneaker.NewResults([]sneaker.Match{
			{ID: "1", Score: 0.91, ModelName: "Air Max 90", Brand: "Nike"},
			{ID: "2", Score: 0.55, ModelName: "Air Force 1", Brand: "Nike"},
		}),
		FiltersApplied: sneaker.Filter{Brand: &brand}.Applied(),
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp.Body)
}

func TestSearchTextHandler_Success(t *testing.T) {
	svc := searchmocks.NewService(t)
	svc.EXPECT().SearchText(mock.Anything, mock.MatchedBy(func(q search.TextQuery) bool {
		return q.Query == "white sneakers" && q.TopK == 5 && q.Filter.Brand != nil && *q.Filter.Brand == "Nike"
	})).Return(sampleOutcome(), nil)

	app := newFiber()
	app.Post("/api/v2/search-text", NewSearchTextHandler(SearchTextHandlerDeps{
		Logger: newTestLogger(), Service: svc, Cfg: newTestConfig(),
	}).Handle)

	status, body := postJSON(t, app, "/api/v2/search-text", map[string]interface{}{
		"query": "  white sneakers ",
		"brand": "Nike",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "white sneakers", body["query"])
	assert.Equal(t, float64(2), body["total_matches_found"])
	assert.Equal(t, map[string]interface{}{"brand": "Nike"}, body["filters_applied"])

	results := body["results"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "very_high", first["confidence_level"])
}

func TestSearchTextHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{name: "empty query", body: map[string]interface{}{"query": ""}},
		{name: "top_k above max", body: map[string]interface{}{"query": "x", "top_k": 50}},
		{name: "inverted prices", body: map[string]interface{}{"query": "x", "min_price": 300, "max_price": 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := searchmocks.NewService(t)
			app := newFiber()
			app.Post("/search", NewSearchTextHandler(SearchTextHandlerDeps{
				Logger: newTestLogger(), Service: svc, Cfg: newTestConfig(),
			}).Handle)

			status, body := postJSON(t, app, "/search", tt.body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
		})
	}
}

func TestSearchTextHandler_InvalidJSON(t *testing.T) {
	app := newFiber()
	app.Post("/search", NewSearchTextHandler(SearchTextHandlerDeps{
		Logger: newTestLogger(), Service: searchmocks.NewService(t), Cfg: newTestConfig(),
	}).Handle)

	req := httptest.NewRequest(fiber.MethodPost, "/search", bytes.NewBufferString("{"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, ErrInvalidJsonPayload, decodeBody(t, resp.Body)["detail"])
}

func TestSearchTextHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "breaker open",
			err:        fmt.Errorf("failed to embed query: %w", domain.ErrServiceUnavailable),
			wantStatus: fiber.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
		},
		{
			name:       "index not configured",
			err:        fmt.Errorf("failed to search index: %w", vector.ErrIndexNotConfigured),
			wantStatus: fiber.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
		},
		{
			name:       "missing api key",
			err:        fmt.Errorf("failed to embed query: %w", embedding.ErrMissingAPIKey),
			wantStatus: fiber.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "SEARCH_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := searchmocks.NewService(t)
			svc.EXPECT().SearchText(mock.Anything, mock.Anything).Return(nil, tt.err)

			app := newFiber()
			app.Post("/search", NewSearchTextHandler(SearchTextHandlerDeps{
				Logger: newTestLogger(), Service: svc, Cfg: newTestConfig(),
			}).Handle)

			status, body := postJSON(t, app, "/search", map[string]interface{}{"query": "jordan"})

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body["error_code"])
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["timestamp"])
		})
	}
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="shoe.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func newClassifyApp(t *testing.T, svc search.Service) *fiber.App {
	cfg := newTestConfig()
	app := newFiber()
	app.Post("/api/v2/classify", NewClassifyHandler(ClassifyHandlerDeps{
		Logger:    newTestLogger(),
		Service:   svc,
		Validator: imaging.NewValidator(cfg.Limits.MaxImageSize, newTestLogger()),
		Cfg:       cfg,
	}).Handle)
	return app
}

func TestClassifyHandler_Success(t *testing.T) {
	data := encodePNG(t)
	svc := searchmocks.NewService(t)
	svc.EXPECT().ClassifyImage(mock.Anything, mock.MatchedBy(func(q search.ImageQuery) bool {
		return bytes.Equal(q.Image, data) && q.TopK == 3 && q.Filter.MinPrice != nil && *q.Filter.MinPrice == 50
	})).Return(sampleOutcome(), nil)
	svc.EXPECT().EmbeddingInfo().Return(embedding.Info{Service: "Jina AI", Model: "jina-clip-v2", Dimension: 1024})

	body, contentType := multipartImage(t, "image/png", data)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v2/classify?top_k=3&min_price=50", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := newClassifyApp(t, svc).Test(req, -1)
	require.NoError(t, err)
	out := decodeBody(t, resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), out["total_matches_found"])

	queryInfo := out["query_info"].(map[string]interface{})
	assert.Equal(t, "PNG", queryInfo["format"])
	assert.Equal(t, float64(8), queryInfo["width"])
	assert.Equal(t, float64(6), queryInfo["height"])

	modelInfo := out["model_info"].(map[string]interface{})
	assert.Equal(t, "Jina AI", modelInfo["embedding_service"])
	assert.Equal(t, "unique_models_optimized", modelInfo["search_strategy"])
	assert.Equal(t, float64(1024), modelInfo["dimension"])
}

func TestClassifyHandler_RejectsNonImage(t *testing.T) {
	body, contentType := multipartImage(t, "text/plain", []byte("hello"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/v2/classify", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := newClassifyApp(t, searchmocks.NewService(t)).Test(req, -1)
	require.NoError(t, err)
	out := decodeBody(t, resp.Body)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_IMAGE", out["error_code"])
	assert.Equal(t, "File must be an image (JPEG, PNG, etc.)", out["detail"])
}

func TestClassifyHandler_MissingImage(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodPost, "/api/v2/classify", nil)

	resp, err := newClassifyApp(t, searchmocks.NewService(t)).Test(req, -1)
	require.NoError(t, err)
	out := decodeBody(t, resp.Body)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", out["error_code"])
}

func TestClassifyHandler_BadQueryParams(t *testing.T) {
	body, contentType := multipartImage(t, "image/png", encodePNG(t))
	req := httptest.NewRequest(fiber.MethodPost, "/api/v2/classify?top_k=0", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := newClassifyApp(t, searchmocks.NewService(t)).Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, resp.Body)["error_code"])
}

func TestClassifyHandler_ServiceFailure(t *testing.T) {
	svc := searchmocks.NewService(t)
	svc.EXPECT().ClassifyImage(mock.Anything, mock.Anything).Return(nil, errors.New("index exploded"))

	body, contentType := multipartImage(t, "image/png", encodePNG(t))
	req := httptest.NewRequest(fiber.MethodPost, "/api/v2/classify", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := newClassifyApp(t, svc).Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "CLASSIFICATION_ERROR", decodeBody(t, resp.Body)["error_code"])
}

func TestClassifyHandler_TextOnlyProvider(t *testing.T) {
	svc := searchmocks.NewService(t)
	svc.EXPECT().ClassifyImage(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to embed image: %w", embedding.ErrUnsupportedInput))

	body, contentType := multipartImage(t, "image/png", encodePNG(t))
	req := httptest.NewRequest(fiber.MethodPost, "/api/v2/classify", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := newClassifyApp(t, svc).Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeBody(t, resp.Body)["error_code"])
}

func TestHealthHandler(t *testing.T) {
	checker := healthmocks.NewChecker(t)
	checker.EXPECT().Check(mock.Anything).Return(health.Report{
		Status:      health.StatusDegraded,
		Services:    map[string]bool{"jina_ai": true, "pinecone": false},
		ServiceInfo: map[string]interface{}{"jina_ai": map[string]interface{}{"service": "Jina AI"}},
		IndexStats:  map[string]interface{}{},
		DurationMs:  12.34,
	})

	app := newFiber()
	app.Get("/health/", NewHealthHandler(checker, newTestConfig(), newTestLogger()).Handle)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/", nil), -1)
	require.NoError(t, err)
	out := decodeBody(t, resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "degraded", out["status"])
	assert.Equal(t, "2.0.0", out["version"])
	assert.Equal(t, map[string]interface{}{"jina_ai": true, "pinecone": false}, out["services"])

	stats := out["stats"].(map[string]interface{})
	assert.Equal(t, 12.34, stats["health_check_time_ms"])
	cfg := stats["config"].(map[string]interface{})
	assert.Equal(t, 5.0, cfg["max_image_size_mb"])
	assert.Equal(t, float64(20), cfg["max_top_k"])
	assert.Equal(t, float64(1024), cfg["embedding_dimension"])
}

func TestLiveAndReadyHandlers(t *testing.T) {
	checker := healthmocks.NewChecker(t)
	checker.EXPECT().Ready().Return(false).Once()
	checker.EXPECT().Ready().Return(true).Once()

	app := newFiber()
	app.Get("/health/live", NewLiveHandler(newTestConfig()).Handle)
	app.Get("/health/ready", NewReadyHandler(checker).Handle)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/live", nil), -1)
	require.NoError(t, err)
	live := decodeBody(t, resp.Body)
	assert.Equal(t, "alive", live["status"])
	assert.Equal(t, "development", live["environment"])
	assert.InDelta(t, float64(time.Now().Unix()), live["timestamp"], 5)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/health/ready", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "not_ready", decodeBody(t, resp.Body)["status"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/health/ready", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", decodeBody(t, resp.Body)["status"])
}

func TestStatsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		index := vectormocks.NewIndex(t)
		index.EXPECT().Stats(mock.Anything).Return(&vector.Stats{
			TotalVectors:  1200,
			Dimension:     1024,
			IndexFullness: 0.123456,
		}, nil)

		app := newFiber()
		app.Get("/stats", NewStatsHandler(index, newTestLogger()).Handle)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/stats", nil), -1)
		require.NoError(t, err)
		out := decodeBody(t, resp.Body)

		assert.Equal(t, true, out["success"])
		summary := out["summary"].(map[string]interface{})
		assert.Equal(t, float64(1200), summary["total_vectors"])
		assert.InDelta(t, 12.35, summary["index_fullness_percent"], 0.0001)
	})

	t.Run("failure is reported with 200", func(t *testing.T) {
		index := vectormocks.NewIndex(t)
		index.EXPECT().Stats(mock.Anything).Return(nil, vector.ErrIndexNotConfigured)

		app := newFiber()
		app.Get("/stats", NewStatsHandler(index, newTestLogger()).Handle)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/stats", nil), -1)
		require.NoError(t, err)
		out := decodeBody(t, resp.Body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, false, out["success"])
		assert.NotEmpty(t, out["error"])
	})
}

func TestRootBrandsFavicon(t *testing.T) {
	cfg := newTestConfig()
	app := newFiber()
	app.Get("/", NewRootHandler(cfg).Handle)
	app.Get("/favicon.ico", NewFaviconHandler().Handle)
	app.Get("/brands", NewBrandsHandler().Handle)
	app.Get("/version", NewGetVersionHandler(newTestLogger()).Handle)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	root := decodeBody(t, resp.Body)
	assert.Equal(t, "2.0.0", root["version"])
	assert.Equal(t, "running", root["status"])
	endpoints := root["endpoints"].(map[string]interface{})
	assert.Equal(t, "/docs", endpoints["docs"])

	cfg.Server.Environment = config.EnvironmentProduction
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	endpoints = decodeBody(t, resp.Body)["endpoints"].(map[string]interface{})
	assert.Equal(t, "disabled_in_production", endpoints["docs"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/favicon.ico", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "👟", decodeBody(t, resp.Body)["message"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/brands", nil), -1)
	require.NoError(t, err)
	brands := decodeBody(t, resp.Body)
	assert.Equal(t, float64(10), brands["total"])
	assert.Contains(t, brands["brands"], "New Balance")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "SneakerLens", decodeBody(t, resp.Body)["app_name"])
}
