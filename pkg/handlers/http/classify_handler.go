package http

import (
	"context"
	"io"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/app/imaging"
	"github.com/NeuralTrust/SneakerLens/pkg/app/search"
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/request"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const imageFormField = "image"

type ClassifyHandlerDeps struct {
	Logger    *logrus.Logger
	Service   search.Service
	Validator imaging.Validator
	Cfg       *config.Config
}

type classifyHandler struct {
	logger    *logrus.Logger
	service   search.Service
	validator imaging.Validator
	cfg       *config.Config
}

func NewClassifyHandler(deps ClassifyHandlerDeps) Handler {
	return &classifyHandler{
		logger:    deps.Logger,
		service:   deps.Service,
		validator: deps.Validator,
		cfg:       deps.Cfg,
	}
}

// Handle @Summary Classify a sneaker image
// @Description Embeds an uploaded image and returns the closest distinct sneaker models
// @Tags Search
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Sneaker image"
// @Param top_k query int false "Number of distinct models (1-20)"
// @Param brand query string false "Brand filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} response.ClassificationOutput
// @Failure 400 {object} response.ErrorOutput
// @Failure 503 {object} response.ErrorOutput
// @Router /api/v2/classify [post]
func (h *classifyHandler) Handle(c *fiber.Ctx) error {
	start := time.Now()

	req, err := request.NewClassifyRequest(c.Query("top_k"), c.Query("brand"), c.Query("min_price"), c.Query("max_price"))
	if err == nil {
		err = req.Validate(h.cfg.Search.MaxTopK)
	}
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, msgValidationFailed, domain.ValidationMessage(err), response.CodeValidation)
	}

	upload, err := h.readUpload(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, msgValidationFailed, ErrImageRequired, response.CodeValidation)
	}
	info, err := h.validator.Validate(*upload)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid image", domain.ValidationMessage(err), response.CodeInvalidImage)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.RequestTimeout())
	defer cancel()

	outcome, err := h.service.ClassifyImage(ctx, search.ImageQuery{
		Image:  upload.Data,
		TopK:   req.ResolveTopK(h.cfg.Search.DefaultTopK),
		Filter: req.Filter(),
	})
	if err != nil {
		return respondServiceError(c, h.logger, err, response.CodeClassification, "Image classification failed")
	}

	elapsed := common.ElapsedMs(start)
	h.logger.WithFields(logrus.Fields{
		"filename": info.Filename,
		"results":  len(outcome.Results),
		"ms":       elapsed,
	}).Info("classification completed")

	embeddingInfo := h.service.EmbeddingInfo()
	return c.Status(fiber.StatusOK).JSON(response.ClassificationOutput{
		Success:           true,
		ProcessingTimeMs:  elapsed,
		Timestamp:         time.Now(),
		Results:           outcome.Results,
		TotalMatchesFound: len(outcome.Results),
		QueryInfo:         info,
		ModelInfo: response.ModelInfo{
			EmbeddingService: embeddingInfo.Service,
			Model:            embeddingInfo.Model,
			Dimension:        h.cfg.Embedding.Dimension,
			FiltersApplied:   outcome.FiltersApplied,
			SearchStrategy:   common.SearchMode,
		},
	})
}

func (h *classifyHandler) readUpload(c *fiber.Ctx) (*imaging.Upload, error) {
	fh, err := c.FormFile(imageFormField)
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &imaging.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
