package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
)

const MaxQueryLength = 200

type SearchTextRequest struct {
	Query    string   `json:"query"`
	TopK     *int     `json:"top_k,omitempty"`
	Brand    *string  `json:"brand,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

func (r *SearchTextRequest) Validate(maxTopK int) error {
	query := strings.TrimSpace(r.Query)
	if query == "" {
		return domain.NewValidationError("query", "query is required")
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return domain.NewValidationError("query", fmt.Sprintf("query must be at most %d characters", MaxQueryLength))
	}
	if err := validateTopK(r.TopK, maxTopK); err != nil {
		return err
	}
	return r.Filter().Validate()
}

func (r *SearchTextRequest) ResolveTopK(defaultTopK int) int {
	if r.TopK == nil {
		return defaultTopK
	}
	return *r.TopK
}

func (r *SearchTextRequest) Filter() sneaker.Filter {
	return sneaker.Filter{
		Brand:    normalizeBrand(r.Brand),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

func validateTopK(topK *int, maxTopK int) error {
	if topK == nil {
		return nil
	}
	if *topK < 1 || *topK > maxTopK {
		return domain.NewValidationError("top_k", fmt.Sprintf("top_k must be between 1 and %d", maxTopK))
	}
	return nil
}

// normalizeBrand drops blank brands so they are not sent as a filter.
func normalizeBrand(brand *string) *string {
	if brand == nil {
		return nil
	}
	b := strings.TrimSpace(*brand)
	if b == "" {
		return nil
	}
	return &b
}
