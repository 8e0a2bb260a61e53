package search

import (
	"context"
	"sort"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const fallbackCeiling = 500

type SearcherConfig struct {
	Multiplier      int
	BatchSize       int
	MaxSearch       int
	MaxIterations   int
	FallbackEnabled bool
}

func DefaultSearcherConfig() SearcherConfig {
	return SearcherConfig{
		Multiplier:    3,
		BatchSize:     20,
		MaxSearch:     100,
		MaxIterations: 3,
	}
}

// UniqueModelSearcher returns up to target matches with pairwise distinct model names,
// widening the index query until enough models are seen or the budget runs out.
type UniqueModelSearcher interface {
	Search(ctx context.Context, values []float32, target int, filter sneaker.Filter) ([]sneaker.Match, error)
}

type uniqueModelSearcher struct {
	index  vector.Index
	cfg    SearcherConfig
	logger *logrus.Logger
}

func NewUniqueModelSearcher(index vector.Index, cfg SearcherConfig, logger *logrus.Logger) UniqueModelSearcher {
	def := DefaultSearcherConfig()
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = def.Multiplier
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.MaxSearch <= 0 {
		cfg.MaxSearch = def.MaxSearch
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	return &uniqueModelSearcher{
		index:  index,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *uniqueModelSearcher) Search(
	ctx context.Context,
	values []float32,
	target int,
	filter sneaker.Filter,
) ([]sneaker.Match, error) {
	if target <= 0 {
		return []sneaker.Match{}, nil
	}

	best := newModelSet()
	searchSize := target * s.cfg.Multiplier
	iterations := 0

	for iterations < s.cfg.MaxIterations {
		iterations++
		current := min(searchSize, s.cfg.MaxSearch)

		matches, err := s.index.Query(ctx, values, current, filter)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			s.logger.WithField("iteration", iterations).Warn("index returned no matches")
			break
		}

		added := best.addAll(matches)
		s.logger.WithFields(logrus.Fields{
			"iteration":  iterations,
			"query_size": current,
			"unique":     best.len(),
			"new":        added,
		}).Debug("unique model search iteration")

		if best.len() >= target {
			break
		}
		if added == 0 {
			searchSize = min(searchSize*2, s.cfg.MaxSearch)
			if current >= s.cfg.MaxSearch {
				break
			}
		} else {
			searchSize = min(searchSize+s.cfg.BatchSize, s.cfg.MaxSearch)
		}
	}
	prometheus.SearchIterations.Observe(float64(iterations))

	results := best.top(target)
	if s.cfg.FallbackEnabled && len(results) < target {
		wide, err := s.fallback(ctx, values, target, filter)
		if err != nil {
			s.logger.WithError(err).Warn("fallback search failed, keeping optimized results")
		} else if len(wide) > len(results) {
			results = wide
		}
	}

	s.logger.WithFields(logrus.Fields{
		"target":     target,
		"found":      len(results),
		"iterations": iterations,
	}).Info("unique model search completed")
	return results, nil
}

// fallback issues a single wide query and dedupes it.
func (s *uniqueModelSearcher) fallback(
	ctx context.Context,
	values []float32,
	target int,
	filter sneaker.Filter,
) ([]sneaker.Match, error) {
	size := min(fallbackCeiling, 2*s.cfg.MaxSearch)
	matches, err := s.index.Query(ctx, values, size, filter)
	if err != nil {
		return nil, err
	}
	set := newModelSet()
	set.addAll(matches)
	return set.top(target), nil
}

// modelSet keeps the best match per model name in first-seen order.
type modelSet struct {
	order []string
	best  map[string]sneaker.Match
}

func newModelSet() *modelSet {
	return &modelSet{best: make(map[string]sneaker.Match)}
}

// addAll merges matches and returns how many model names were new.
func (m *modelSet) addAll(matches []sneaker.Match) int {
	added := 0
	for _, match := range matches {
		if match.ModelName == "" {
			continue
		}
		existing, ok := m.best[match.ModelName]
		if !ok {
			added++
			m.order = append(m.order, match.ModelName)
			m.best[match.ModelName] = match
			continue
		}
		if match.Score > existing.Score {
			m.best[match.ModelName] = match
		}
	}
	return added
}

func (m *modelSet) len() int {
	return len(m.order)
}

func (m *modelSet) top(n int) []sneaker.Match {
	out := make([]sneaker.Match, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.best[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
