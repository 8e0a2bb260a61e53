package http

import (
	"context"
	"strings"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/app/search"
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/request"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SearchTextHandlerDeps struct {
	Logger  *logrus.Logger
	Service search.Service
	Cfg     *config.Config
}

type searchTextHandler struct {
	logger  *logrus.Logger
	service search.Service
	cfg     *config.Config
}

func NewSearchTextHandler(deps SearchTextHandlerDeps) Handler {
	return &searchTextHandler{
		logger:  deps.Logger,
		service: deps.Service,
		cfg:     deps.Cfg,
	}
}

// Handle @Summary Search sneakers by text
// @Description Embeds a text description and returns the closest distinct sneaker models
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request.SearchTextRequest true "Search query"
// @Success 200 {object} response.SearchOutput
// @Failure 400 {object} response.ErrorOutput
// @Failure 503 {object} response.ErrorOutput
// @Router /api/v2/search-text [post]
func (h *searchTextHandler) Handle(c *fiber.Ctx) error {
	start := time.Now()

	var req request.SearchTextRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgValidationFailed, ErrInvalidJsonPayload, response.CodeValidation)
	}
	if err := req.Validate(h.cfg.Search.MaxTopK); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgValidationFailed, domain.ValidationMessage(err), response.CodeValidation)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.RequestTimeout())
	defer cancel()

	query := strings.TrimSpace(req.Query)
	outcome, err := h.service.SearchText(ctx, search.TextQuery{
		Query:  query,
		TopK:   req.ResolveTopK(h.cfg.Search.DefaultTopK),
		Filter: req.Filter(),
	})
	if err != nil {
		return respondServiceError(c, h.logger, err, response.CodeSearch, "Search failed")
	}

	elapsed := common.ElapsedMs(start)
	h.logger.WithFields(logrus.Fields{
		"query":   query,
		"results": len(outcome.Results),
		"ms":      elapsed,
	}).Info("text search completed")

	return c.Status(fiber.StatusOK).JSON(response.SearchOutput{
		Success:           true,
		ProcessingTimeMs:  elapsed,
		Timestamp:         time.Now(),
		Query:             query,
		Results:           outcome.Results,
		TotalMatchesFound: len(outcome.Results),
		FiltersApplied:    outcome.FiltersApplied,
	})
}
