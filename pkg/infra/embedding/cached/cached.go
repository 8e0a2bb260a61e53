package cached

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/cache"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const localTTL = 10 * time.Minute

// Creator decorates an embedding.Creator with a text embedding cache. Image embeddings
// are never cached.
type Creator struct {
	next   embedding.Creator
	cache  cache.Client
	local  *cache.TTLMap
	ttl    time.Duration
	logger *logrus.Logger
}

var _ embedding.Creator = (*Creator)(nil)

func New(next embedding.Creator, cacheClient cache.Client, ttl time.Duration, logger *logrus.Logger) *Creator {
	local := cacheClient.GetTTLMap(cache.EmbeddingTTLName)
	if local == nil {
		local = cacheClient.CreateTTLMap(cache.EmbeddingTTLName, localTTL)
	}
	return &Creator{
		next:   next,
		cache:  cacheClient,
		local:  local,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Creator) EmbedText(ctx context.Context, text string) (*embedding.Embedding, error) {
	if c.ttl <= 0 {
		return c.next.EmbedText(ctx, text)
	}
	info := c.next.Info()
	key := cache.EmbeddingKey(info.Provider, info.Model, text)

	if value, ok := c.local.Get(key); ok {
		if emb, ok := value.(*embedding.Embedding); ok {
			prometheus.CacheHits.WithLabelValues("embedding_local").Inc()
			return emb, nil
		}
	}

	var cached embedding.Embedding
	err := c.cache.GetJSON(ctx, key, &cached)
	switch {
	case err == nil && len(cached.Value) > 0:
		prometheus.CacheHits.WithLabelValues("embedding").Inc()
		c.local.Set(key, &cached)
		return &cached, nil
	case err != nil && !errors.Is(err, cache.ErrCacheMiss):
		c.logger.WithError(err).Warn("failed to read embedding cache")
	}

	emb, err := c.next.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	c.local.Set(key, emb)
	if err := c.cache.SetJSON(ctx, key, emb, c.ttl); err != nil {
		c.logger.WithError(err).Warn("failed to write embedding cache")
	}
	return emb, nil
}

func (c *Creator) EmbedImage(ctx context.Context, image []byte) (*embedding.Embedding, error) {
	return c.next.EmbedImage(ctx, image)
}

func (c *Creator) HealthCheck(ctx context.Context) bool {
	return c.next.HealthCheck(ctx)
}

func (c *Creator) Info() embedding.Info {
	return c.next.Info()
}
