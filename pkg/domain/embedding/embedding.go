package embedding

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrProviderNonOKResponse = errors.New("embedding provider returned non-OK response")
	ErrMissingAPIKey         = errors.New("embedding provider api key not configured")
	ErrEmptyEmbedding        = errors.New("empty embedding received from provider")
	ErrUnsupportedInput      = errors.New("input type not supported by embedding provider")
	ErrDimensionMismatch     = errors.New("embedding dimension mismatch")
)

type InputType string

const (
	InputText  InputType = "text"
	InputImage InputType = "image"
)

type Embedding struct {
	Value     []float32 `json:"value"`
	Model     string    `json:"model"`
	Input     InputType `json:"input"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Embedding) Dimension() int {
	return len(e.Value)
}

// FitDimension zero-pads v up to dim. CLIP ViT-L/14 yields 768 values while the index stores 1024.
func FitDimension(v []float32, dim int) ([]float32, error) {
	switch {
	case len(v) == 0:
		return nil, ErrEmptyEmbedding
	case len(v) == dim:
		return v, nil
	case len(v) > dim:
		return nil, fmt.Errorf("%w: got %d, expected at most %d", ErrDimensionMismatch, len(v), dim)
	}
	padded := make([]float32, dim)
	copy(padded, v)
	return padded, nil
}

// ToFloat32 narrows provider output decoded as float64.
func ToFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}
