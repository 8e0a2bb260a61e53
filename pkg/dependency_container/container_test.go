package dependency_container

import (
	"io"
	"testing"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(provider string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8000, Environment: config.EnvironmentDevelopment, RequestTimeout: 30},
		Embedding: config.EmbeddingConfig{
			Provider:       provider,
			Dimension:      1024,
			BreakerTimeout: time.Second,
			BreakerMaxFail: 5,
		},
		Pinecone: config.PineconeConfig{
			IndexName:      "sneaker-embeddings",
			BreakerTimeout: time.Second,
			BreakerMaxFail: 3,
		},
		Search: config.SearchConfig{
			DefaultTopK:   5,
			MaxTopK:       20,
			Multiplier:    3,
			BatchSize:     20,
			MaxSearch:     100,
			MaxIterations: 3,
		},
		Limits: config.LimitsConfig{MaxImageSize: 5 * 1024 * 1024},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewContainer_WiresWithoutExternalServices(t *testing.T) {
	c, err := NewContainer(ContainerDI{Cfg: testConfig("jina"), Logger: testLogger()})
	require.NoError(t, err)

	assert.False(t, c.Cache.RedisEnabled())
	assert.Equal(t, "jina", c.EmbeddingCreator.Info().Provider)
	assert.False(t, c.HealthChecker.Ready())
	assert.NotNil(t, c.HandlerTransport.SearchTextHandler)
	assert.NotNil(t, c.HandlerTransport.ClassifyHandler)
	assert.NotNil(t, c.HandlerTransport.StatsHandler)
	assert.Nil(t, c.MiddlewareTransport.MetricsMiddleware)
	assert.NoError(t, c.Close())
}

func TestNewContainer_UnknownProvider(t *testing.T) {
	_, err := NewContainer(ContainerDI{Cfg: testConfig("word2vec"), Logger: testLogger()})
	assert.ErrorContains(t, err, "unsupported embedding provider")
}
