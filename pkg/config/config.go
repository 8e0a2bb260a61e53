package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Pinecone  PineconeConfig  `mapstructure:"pinecone"`
	Search    SearchConfig    `mapstructure:"search"`
	Limits    LimitsConfig    `mapstructure:"limits"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	MetricsPort    int    `mapstructure:"metrics_port"`
	Environment    string `mapstructure:"environment"`
	RequestTimeout int    `mapstructure:"request_timeout"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type EmbeddingConfig struct {
	Provider       string            `mapstructure:"provider"`
	Dimension      int               `mapstructure:"dimension"`
	CacheTTL       time.Duration     `mapstructure:"cache_ttl"`
	BreakerTimeout time.Duration     `mapstructure:"breaker_timeout"`
	BreakerMaxFail uint32            `mapstructure:"breaker_max_failures"`
	Jina           JinaConfig        `mapstructure:"jina"`
	HuggingFace    HuggingFaceConfig `mapstructure:"huggingface"`
	Voyage         VoyageConfig      `mapstructure:"voyage"`
}

type JinaConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type HuggingFaceConfig struct {
	APIToken  string `mapstructure:"api_token"`
	ModelURL  string `mapstructure:"model_url"`
	ModelName string `mapstructure:"model_name"`
}

type VoyageConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type PineconeConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	IndexName      string        `mapstructure:"index_name"`
	Host           string        `mapstructure:"host"`
	Namespace      string        `mapstructure:"namespace"`
	BreakerTimeout time.Duration `mapstructure:"breaker_timeout"`
	BreakerMaxFail uint32        `mapstructure:"breaker_max_failures"`
}

type SearchConfig struct {
	DefaultTopK     int           `mapstructure:"default_top_k"`
	MaxTopK         int           `mapstructure:"max_top_k"`
	Multiplier      int           `mapstructure:"multiplier"`
	BatchSize       int           `mapstructure:"batch_size"`
	MaxSearch       int           `mapstructure:"max_search"`
	MaxIterations   int           `mapstructure:"max_iterations"`
	FallbackEnabled bool          `mapstructure:"fallback_enabled"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
}

type LimitsConfig struct {
	MaxImageSize int64 `mapstructure:"max_image_size"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

var ErrConfigFileNotFound = errors.New("config file not found")

var globalConfig Config

// envBindings maps config keys to the flat environment variable names used by deployments.
var envBindings = map[string]string{
	"server.host":                     "HOST",
	"server.port":                     "PORT",
	"server.metrics_port":             "METRICS_PORT",
	"server.environment":              "ENVIRONMENT",
	"server.request_timeout":          "REQUEST_TIMEOUT",
	"metrics.enabled":                 "METRICS_ENABLED",
	"redis.enabled":                   "REDIS_ENABLED",
	"redis.host":                      "REDIS_HOST",
	"redis.port":                      "REDIS_PORT",
	"redis.password":                  "REDIS_PASSWORD",
	"redis.db":                        "REDIS_DB",
	"redis.tls":                       "REDIS_TLS",
	"embedding.provider":              "EMBEDDING_PROVIDER",
	"embedding.dimension":             "EMBEDDING_DIMENSION",
	"embedding.jina.api_key":          "JINA_API_KEY",
	"embedding.huggingface.api_token": "HF_API_TOKEN",
	"embedding.voyage.api_key":        "VOYAGE_API_KEY",
	"pinecone.api_key":                "PINECONE_API_KEY",
	"pinecone.index_name":             "PINECONE_INDEX_NAME",
	"pinecone.host":                   "PINECONE_HOST",
	"pinecone.namespace":              "PINECONE_NAMESPACE",
	"search.default_top_k":            "DEFAULT_TOP_K",
	"search.max_top_k":                "MAX_TOP_K",
	"limits.max_image_size":           "MAX_IMAGE_SIZE",
	"cors.allowed_origins":            "ALLOWED_ORIGINS",
}

// Load reads config.yaml from configPath (falling back to ./config and .) and overlays the
// environment. A missing file yields ErrConfigFileNotFound but the config is still populated.
func Load(configPath string) error {
	cfg, err := load(viper.New(), configPath)
	if cfg != nil {
		globalConfig = *cfg
	}
	return err
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	var fileErr error
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
		fileErr = ErrConfigFileNotFound
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)

	return &cfg, fileErr
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.environment", EnvironmentDevelopment)
	v.SetDefault("server.request_timeout", 30)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.enable_latency", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("embedding.provider", "jina")
	v.SetDefault("embedding.dimension", 1024)
	v.SetDefault("embedding.cache_ttl", 24*time.Hour)
	v.SetDefault("embedding.breaker_timeout", 30*time.Second)
	v.SetDefault("embedding.breaker_max_failures", 5)
	v.SetDefault("embedding.jina.base_url", "https://api.jina.ai/v1/embeddings")
	v.SetDefault("embedding.jina.model", "jina-clip-v2")
	v.SetDefault("embedding.huggingface.model_url", "https://api-inference.huggingface.co/models/openai/clip-vit-large-patch14")
	v.SetDefault("embedding.huggingface.model_name", "openai/clip-vit-large-patch14")
	v.SetDefault("embedding.voyage.model", "voyage-3.5")

	v.SetDefault("pinecone.index_name", "sneaker-embeddings")
	v.SetDefault("pinecone.breaker_timeout", 30*time.Second)
	v.SetDefault("pinecone.breaker_max_failures", 5)

	v.SetDefault("search.default_top_k", 5)
	v.SetDefault("search.max_top_k", 20)
	v.SetDefault("search.multiplier", 3)
	v.SetDefault("search.batch_size", 20)
	v.SetDefault("search.max_search", 100)
	v.SetDefault("search.max_iterations", 3)
	v.SetDefault("search.fallback_enabled", false)
	v.SetDefault("search.cache_ttl", 5*time.Minute)

	v.SetDefault("limits.max_image_size", 5*1024*1024)

	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:8000",
		"http://127.0.0.1:8000",
		"*",
	})
}

// splitOrigins expands comma separated entries, which is how ALLOWED_ORIGINS arrives from the env.
func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Server.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("invalid environment %q: must be %q or %q",
			c.Server.Environment, EnvironmentDevelopment, EnvironmentProduction)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Search.MaxTopK <= 0 {
		return fmt.Errorf("max_top_k must be positive, got %d", c.Search.MaxTopK)
	}
	if c.Search.DefaultTopK < 1 || c.Search.DefaultTopK > c.Search.MaxTopK {
		return fmt.Errorf("default_top_k must be between 1 and %d, got %d", c.Search.MaxTopK, c.Search.DefaultTopK)
	}
	if c.Limits.MaxImageSize <= 0 {
		return fmt.Errorf("max_image_size must be positive, got %d", c.Limits.MaxImageSize)
	}
	if c.Embedding.Dimension <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", c.Embedding.Dimension)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvironmentDevelopment
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvironmentProduction
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeout) * time.Second
}

func (c *Config) MaxImageSizeMB() float64 {
	return float64(c.Limits.MaxImageSize) / (1024 * 1024)
}

func GetConfig() *Config {
	return &globalConfig
}
