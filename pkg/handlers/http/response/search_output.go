package response

import (
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/app/imaging"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
)

type SearchOutput struct {
	Success           bool                   `json:"success"`
	ProcessingTimeMs  float64                `json:"processing_time_ms"`
	Timestamp         time.Time              `json:"timestamp"`
	Query             string                 `json:"query"`
	Results           []sneaker.Result       `json:"results"`
	TotalMatchesFound int                    `json:"total_matches_found"`
	FiltersApplied    map[string]interface{} `json:"filters_applied"`
}

type ClassificationOutput struct {
	Success           bool               `json:"success"`
	ProcessingTimeMs  float64            `json:"processing_time_ms"`
	Timestamp         time.Time          `json:"timestamp"`
	Results           []sneaker.Result   `json:"results"`
	TotalMatchesFound int                `json:"total_matches_found"`
	QueryInfo         *imaging.ImageInfo `json:"query_info"`
	ModelInfo         ModelInfo          `json:"model_info"`
}

type ModelInfo struct {
	EmbeddingService string                 `json:"embedding_service"`
	Model            string                 `json:"model"`
	Dimension        int                    `json:"dimension"`
	FiltersApplied   map[string]interface{} `json:"filters_applied"`
	SearchStrategy   string                 `json:"search_strategy"`
}

type BrandsOutput struct {
	Success bool     `json:"success"`
	Brands  []string `json:"brands"`
	Total   int      `json:"total"`
	Note    string   `json:"note"`
}

type StatsOutput struct {
	Success       bool          `json:"success"`
	DatabaseStats interface{}   `json:"database_stats,omitempty"`
	Timestamp     float64       `json:"timestamp"`
	Summary       *StatsSummary `json:"summary,omitempty"`
	Error         string        `json:"error,omitempty"`
}

type StatsSummary struct {
	TotalVectors         uint32  `json:"total_vectors"`
	Dimension            uint32  `json:"dimension"`
	IndexFullnessPercent float64 `json:"index_fullness_percent"`
}
