package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/cache"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type TextQuery struct {
	Query  string
	TopK   int
	Filter sneaker.Filter
}

type ImageQuery struct {
	Image  []byte
	TopK   int
	Filter sneaker.Filter
}

type Outcome struct {
	Results        []sneaker.Result       `json:"results"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=search_service_mock.go --case=underscore --with-expecter
type Service interface {
	SearchText(ctx context.Context, q TextQuery) (*Outcome, error)
	ClassifyImage(ctx context.Context, q ImageQuery) (*Outcome, error)
	EmbeddingInfo() embedding.Info
}

type service struct {
	creator  embedding.Creator
	searcher UniqueModelSearcher
	cache    cache.Client
	cacheTTL time.Duration
	logger   *logrus.Logger
}

func NewService(
	creator embedding.Creator,
	searcher UniqueModelSearcher,
	cacheClient cache.Client,
	cacheTTL time.Duration,
	logger *logrus.Logger,
) Service {
	return &service{
		creator:  creator,
		searcher: searcher,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *service) SearchText(ctx context.Context, q TextQuery) (*Outcome, error) {
	query := strings.TrimSpace(q.Query)

	key := cache.SearchKey(query, q.TopK, q.Filter.Key())
	if s.cacheEnabled() {
		var cached Outcome
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			prometheus.CacheHits.WithLabelValues("search").Inc()
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).Warn("failed to read search cache")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"query": query,
		"top_k": q.TopK,
	}).Info("text search")

	emb, err := s.creator.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	outcome, err := s.search(ctx, emb, q.TopK, q.Filter)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if err := s.cache.SetJSON(ctx, key, outcome, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("failed to write search cache")
		}
	}
	return outcome, nil
}

func (s *service) ClassifyImage(ctx context.Context, q ImageQuery) (*Outcome, error) {
	s.logger.WithFields(logrus.Fields{
		"bytes": len(q.Image),
		"top_k": q.TopK,
	}).Info("image classification")

	emb, err := s.creator.EmbedImage(ctx, q.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to embed image: %w", err)
	}
	return s.search(ctx, emb, q.TopK, q.Filter)
}

func (s *service) EmbeddingInfo() embedding.Info {
	return s.creator.Info()
}

func (s *service) search(ctx context.Context, emb *embedding.Embedding, topK int, filter sneaker.Filter) (*Outcome, error) {
	matches, err := s.searcher.Search(ctx, emb.Value, topK, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	return &Outcome{
		Results:        sneaker.NewResults(matches),
		FiltersApplied: filter.Applied(),
	}, nil
}

func (s *service) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}
