package http

import (
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

type rootHandler struct {
	cfg *config.Config
}

func NewRootHandler(cfg *config.Config) Handler {
	return &rootHandler{cfg: cfg}
}

// Handle @Summary Service descriptor
// @Description Returns service name, version, features, endpoints and limits
// @Tags Service
// @Produce json
// @Success 200 {object} response.RootOutput
// @Router / [get]
func (h *rootHandler) Handle(c *fiber.Ctx) error {
	docs := "disabled_in_production"
	if h.cfg.IsDevelopment() {
		docs = common.DocsPath
	}
	return c.Status(fiber.StatusOK).JSON(response.RootOutput{
		Service:      common.ServiceName,
		Version:      common.APIVersion,
		Status:       "running",
		Architecture: "serverless-optimized",
		Features: []string{
			"multimodal-embeddings",
			"pinecone-vector-search",
			"unique-model-ranking",
			"metadata-filters",
		},
		Endpoints: map[string]string{
			"classify_image": common.APIPrefix + "/classify",
			"search_text":    common.APIPrefix + "/search-text",
			"health":         common.HealthPrefix,
			"docs":           docs,
		},
		Limits: response.RootLimits{
			MaxImageSizeMB: h.cfg.MaxImageSizeMB(),
			MaxResults:     h.cfg.Search.MaxTopK,
			TimeoutSeconds: h.cfg.Server.RequestTimeout,
		},
	})
}
