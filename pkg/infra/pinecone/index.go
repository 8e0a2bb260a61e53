package pinecone

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/httpx"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/structpb"
)

const serviceName = "Pinecone"

type Config struct {
	APIKey    string
	IndexName string
	Host      string
	Namespace string
}

// indexConn is the part of *pinecone.IndexConnection used here.
type indexConn interface {
	QueryByVectorValues(ctx context.Context, in *pinecone.QueryByVectorValuesRequest) (*pinecone.QueryVectorsResponse, error)
	DescribeIndexStats(ctx context.Context) (*pinecone.DescribeIndexStatsResponse, error)
	Close() error
}

type connector func(ctx context.Context) (indexConn, error)

type Index struct {
	cfg     Config
	logger  *logrus.Logger
	breaker httpx.CircuitBreaker
	connect connector

	mu   sync.Mutex
	conn indexConn
}

var _ vector.Index = (*Index)(nil)

func NewIndex(cfg Config, breaker httpx.CircuitBreaker, logger *logrus.Logger) *Index {
	if cfg.APIKey == "" {
		logger.Warn("PINECONE_API_KEY not configured, vector index disabled")
	}
	idx := &Index{
		cfg:     cfg,
		logger:  logger,
		breaker: breaker,
	}
	idx.connect = idx.dial
	return idx
}

// dial resolves the index host (unless configured) and opens a data-plane connection.
func (i *Index) dial(ctx context.Context) (indexConn, error) {
	client, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: i.cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}

	host := i.cfg.Host
	if host == "" {
		desc, err := client.DescribeIndex(ctx, i.cfg.IndexName)
		if err != nil {
			return nil, fmt.Errorf("failed to describe index %s: %w", i.cfg.IndexName, err)
		}
		host = desc.Host
	}

	conn, err := client.Index(pinecone.NewIndexConnParams{
		Host:      host,
		Namespace: i.cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to index %s: %w", i.cfg.IndexName, err)
	}

	i.logger.WithFields(logrus.Fields{
		"index": i.cfg.IndexName,
		"host":  host,
	}).Info("pinecone index connected")
	return conn, nil
}

// connection returns the shared connection, dialing on first use. A failed dial is retried
// on the next call.
func (i *Index) connection(ctx context.Context) (indexConn, error) {
	if i.cfg.APIKey == "" {
		return nil, vector.ErrIndexNotConfigured
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.conn != nil {
		return i.conn, nil
	}
	conn, err := i.connect(ctx)
	if err != nil {
		return nil, err
	}
	i.conn = conn
	return conn, nil
}

func (i *Index) Query(ctx context.Context, values []float32, topK int, filter sneaker.Filter) ([]sneaker.Match, error) {
	conn, err := i.connection(ctx)
	if err != nil {
		prometheus.IndexQueries.WithLabelValues("unavailable").Inc()
		return nil, err
	}

	req := &pinecone.QueryByVectorValuesRequest{
		Vector:          values,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	}
	if md := filter.ToMetadataFilter(); md != nil {
		metadataFilter, err := structpb.NewStruct(md)
		if err != nil {
			return nil, fmt.Errorf("failed to build metadata filter: %w", err)
		}
		req.MetadataFilter = metadataFilter
	}

	var resp *pinecone.QueryVectorsResponse
	err = i.breaker.Execute(func() error {
		r, err := conn.QueryByVectorValues(ctx, req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		prometheus.IndexQueries.WithLabelValues("error").Inc()
		i.logger.WithError(err).WithField("top_k", topK).Error("pinecone query failed")
		return nil, fmt.Errorf("pinecone query failed: %w", err)
	}
	prometheus.IndexQueries.WithLabelValues("success").Inc()

	matches := make([]sneaker.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		if m == nil || m.Vector == nil {
			continue
		}
		var md map[string]interface{}
		if m.Vector.Metadata != nil {
			md = m.Vector.Metadata.AsMap()
		}
		matches = append(matches, sneaker.MatchFromMetadata(m.Vector.Id, float64(m.Score), md))
	}

	i.logger.WithFields(logrus.Fields{
		"top_k":   topK,
		"matches": len(matches),
	}).Debug("pinecone query completed")
	return matches, nil
}

func (i *Index) Stats(ctx context.Context) (*vector.Stats, error) {
	conn, err := i.connection(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := conn.DescribeIndexStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to describe index stats: %w", err)
	}
	return toStats(resp), nil
}

func toStats(resp *pinecone.DescribeIndexStatsResponse) *vector.Stats {
	stats := &vector.Stats{
		TotalVectors:  resp.TotalVectorCount,
		Dimension:     resp.Dimension,
		IndexFullness: resp.IndexFullness,
		Namespaces:    make(map[string]vector.NamespaceStats, len(resp.Namespaces)),
	}
	for name, ns := range resp.Namespaces {
		if ns == nil {
			continue
		}
		stats.Namespaces[name] = vector.NamespaceStats{VectorCount: ns.VectorCount}
	}
	return stats
}

func (i *Index) HealthCheck(ctx context.Context) bool {
	if i.cfg.APIKey == "" {
		return false
	}
	if _, err := i.Stats(ctx); err != nil {
		i.logger.WithError(err).Warn("pinecone health check failed")
		return false
	}
	return true
}

func (i *Index) Info(ctx context.Context) vector.ServiceInfo {
	info := vector.ServiceInfo{
		Service:       serviceName,
		IndexName:     i.cfg.IndexName,
		APIConfigured: i.cfg.APIKey != "",
	}
	if !info.APIConfigured {
		return info
	}
	stats, err := i.Stats(ctx)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Stats = stats
	return info
}

func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.conn == nil {
		return nil
	}
	err := i.conn.Close()
	i.conn = nil
	return err
}
