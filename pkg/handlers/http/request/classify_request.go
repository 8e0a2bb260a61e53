package request

import (
	"strconv"
	"strings"

	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
)

// ClassifyRequest holds the query parameters accompanying an image upload.
type ClassifyRequest struct {
	TopK     *int
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
}

// NewClassifyRequest parses raw query values. Empty values are treated as absent.
func NewClassifyRequest(topK, brand, minPrice, maxPrice string) (*ClassifyRequest, error) {
	req := &ClassifyRequest{}
	if v := strings.TrimSpace(topK); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, domain.NewValidationError("top_k", "top_k must be an integer")
		}
		req.TopK = &n
	}
	if v := strings.TrimSpace(brand); v != "" {
		req.Brand = &v
	}
	var err error
	if req.MinPrice, err = parsePrice("min_price", minPrice); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = parsePrice("max_price", maxPrice); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *ClassifyRequest) Validate(maxTopK int) error {
	if err := validateTopK(r.TopK, maxTopK); err != nil {
		return err
	}
	return r.Filter().Validate()
}

func (r *ClassifyRequest) ResolveTopK(defaultTopK int) int {
	if r.TopK == nil {
		return defaultTopK
	}
	return *r.TopK
}

func (r *ClassifyRequest) Filter() sneaker.Filter {
	return sneaker.Filter{
		Brand:    normalizeBrand(r.Brand),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

func parsePrice(field, raw string) (*float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, domain.NewValidationError(field, field+" must be a number")
	}
	return &f, nil
}
