package vector

import (
	"context"
	"errors"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
)

var ErrIndexNotConfigured = errors.New("vector index not configured")

//go:generate mockery --name=Index --dir=. --output=./mocks --filename=vector_index_mock.go --case=underscore --with-expecter

// Index is a nearest-neighbour store of catalog embeddings.
type Index interface {
	Query(ctx context.Context, vector []float32, topK int, filter sneaker.Filter) ([]sneaker.Match, error)
	Stats(ctx context.Context) (*Stats, error)
	HealthCheck(ctx context.Context) bool
	Info(ctx context.Context) ServiceInfo
}

type NamespaceStats struct {
	VectorCount uint32 `json:"vector_count"`
}

type Stats struct {
	TotalVectors  uint32                    `json:"total_vectors"`
	Dimension     uint32                    `json:"dimension"`
	IndexFullness float32                   `json:"index_fullness"`
	Namespaces    map[string]NamespaceStats `json:"namespaces"`
}

type ServiceInfo struct {
	Service       string `json:"service"`
	IndexName     string `json:"index_name"`
	APIConfigured bool   `json:"api_configured"`
	Stats         *Stats `json:"stats,omitempty"`
	Error         string `json:"error,omitempty"`
}
