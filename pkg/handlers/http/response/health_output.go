package response

type HealthOutput struct {
	Status      string                 `json:"status"`
	Timestamp   float64                `json:"timestamp"`
	Services    map[string]bool        `json:"services"`
	ServiceInfo map[string]interface{} `json:"service_info"`
	Stats       HealthStats            `json:"stats"`
	Version     string                 `json:"version"`
}

type HealthStats struct {
	Pinecone          map[string]interface{} `json:"pinecone"`
	HealthCheckTimeMs float64                `json:"health_check_time_ms"`
	Config            HealthConfig           `json:"config"`
}

type HealthConfig struct {
	MaxImageSizeMB     float64 `json:"max_image_size_mb"`
	MaxTopK            int     `json:"max_top_k"`
	EmbeddingDimension int     `json:"embedding_dimension"`
}

type LiveOutput struct {
	Status      string  `json:"status"`
	Timestamp   float64 `json:"timestamp"`
	Version     string  `json:"version"`
	Environment string  `json:"environment"`
}

type ReadyOutput struct {
	Status    string  `json:"status"`
	Timestamp float64 `json:"timestamp"`
}

type RootOutput struct {
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Status       string            `json:"status"`
	Architecture string            `json:"architecture"`
	Features     []string          `json:"features"`
	Endpoints    map[string]string `json:"endpoints"`
	Limits       RootLimits        `json:"limits"`
}

type RootLimits struct {
	MaxImageSizeMB float64 `json:"max_image_size_mb"`
	MaxResults     int     `json:"max_results"`
	TimeoutSeconds int     `json:"timeout_seconds"`
}
