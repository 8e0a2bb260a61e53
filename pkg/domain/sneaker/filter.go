package sneaker

import (
	"strconv"
	"strings"

	"github.com/NeuralTrust/SneakerLens/pkg/domain"
)

// Filter narrows a search by catalog metadata. Nil fields are not applied.
type Filter struct {
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
}

func (f Filter) IsEmpty() bool {
	return f.Brand == nil && f.MinPrice == nil && f.MaxPrice == nil
}

// ToMetadataFilter renders the filter in the index metadata query language.
// It returns nil for an empty filter.
func (f Filter) ToMetadataFilter() map[string]interface{} {
	if f.IsEmpty() {
		return nil
	}
	out := make(map[string]interface{})
	if f.Brand != nil {
		out["brand"] = map[string]interface{}{"$eq": *f.Brand}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := make(map[string]interface{})
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		out["price"] = price
	}
	return out
}

// Applied echoes the filters that were used, keyed by their request names.
func (f Filter) Applied() map[string]interface{} {
	out := make(map[string]interface{})
	if f.Brand != nil {
		out["brand"] = *f.Brand
	}
	if f.MinPrice != nil {
		out["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		out["max_price"] = *f.MaxPrice
	}
	return out
}

// Key is a stable textual form used in cache keys.
func (f Filter) Key() string {
	var b strings.Builder
	if f.Brand != nil {
		b.WriteString("brand=")
		b.WriteString(*f.Brand)
	}
	b.WriteString(";min=")
	if f.MinPrice != nil {
		b.WriteString(strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	b.WriteString(";max=")
	if f.MaxPrice != nil {
		b.WriteString(strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return b.String()
}

func (f Filter) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return domain.NewValidationError("min_price", "must be greater than or equal to 0")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return domain.NewValidationError("max_price", "must be greater than or equal to 0")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return domain.NewValidationError("min_price", "min_price must be less than or equal to max_price")
	}
	return nil
}
