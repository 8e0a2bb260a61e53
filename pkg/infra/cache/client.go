package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	EmbeddingTTLName = "embedding"

	localTTL       = 5 * time.Minute
	sweepInterval  = time.Minute
	redisOpTimeout = 2 * time.Second
	pingTimeout    = 5 * time.Second
)

var ErrCacheMiss = errors.New("cache miss")

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	GetJSON(ctx context.Context, key string, dst interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	RedisEnabled() bool
	Ping(ctx context.Context) error
	CreateTTLMap(name string, ttl time.Duration) *TTLMap
	GetTTLMap(name string) *TTLMap
	ClearAllTTLMaps()
	Close() error
}

type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}

type client struct {
	redisClient *redis.Client
	local       *TTLMap
	ttlMaps     sync.Map
	sweep       time.Duration
	logger      *logrus.Logger
}

// NewClient connects to redis when enabled. If redis is disabled or unreachable the client
// keeps working on in-process maps only.
func NewClient(config Config, logger *logrus.Logger) Client {
	if !config.Enabled {
		logger.Info("redis disabled, using in-process cache only")
		return newClient(nil, logger)
	}

	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  config.Host,
			"port":  config.Port,
			"error": err.Error(),
		}).Warn("failed to connect to redis, using in-process cache only")
		_ = redisClient.Close()
		return newClient(nil, logger)
	}

	logger.WithFields(logrus.Fields{
		"host": config.Host,
		"port": config.Port,
	}).Info("redis connected successfully")

	return newClient(redisClient, logger)
}

// NewLocalClient returns a client backed only by in-process maps.
func NewLocalClient(logger *logrus.Logger) Client {
	return newClient(nil, logger)
}

func newClient(redisClient *redis.Client, logger *logrus.Logger) *client {
	return newClientWithSweep(redisClient, sweepInterval, logger)
}

func newClientWithSweep(redisClient *redis.Client, sweep time.Duration, logger *logrus.Logger) *client {
	local := NewTTLMap(localTTL)
	local.StartJanitor(sweep)
	return &client{
		redisClient: redisClient,
		local:       local,
		sweep:       sweep,
		logger:      logger,
	}
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.local.Get(key); ok {
		str, err := safeStringCast(value)
		if err != nil {
			return "", fmt.Errorf("cache value error: %w", err)
		}
		return str, nil
	}
	if c.redisClient == nil {
		return "", ErrCacheMiss
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	value, err := c.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (c *client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if c.redisClient != nil {
		ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
		defer cancel()
		if err := c.redisClient.Set(ctx, key, value, expiration).Err(); err != nil {
			return err
		}
	}
	localExpiration := expiration
	if localExpiration <= 0 || localExpiration > localTTL {
		localExpiration = localTTL
	}
	c.local.SetWithTTL(key, value, localExpiration)
	return nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	c.local.Delete(key)
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Del(ctx, key).Err()
}

func (c *client) GetJSON(ctx context.Context, key string, dst interface{}) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode cached value %s: %w", key, err)
	}
	return nil
}

func (c *client) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value %s: %w", key, err)
	}
	return c.Set(ctx, key, string(raw), expiration)
}

func (c *client) RedisEnabled() bool {
	return c.redisClient != nil
}

func (c *client) Ping(ctx context.Context) error {
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Ping(ctx).Err()
}

func (c *client) CreateTTLMap(name string, ttl time.Duration) *TTLMap {
	ttlMap := NewTTLMap(ttl)
	ttlMap.StartJanitor(c.sweep)
	if previous, loaded := c.ttlMaps.Swap(name, ttlMap); loaded {
		if old, ok := previous.(*TTLMap); ok {
			old.Stop()
		}
	}
	return ttlMap
}

func (c *client) GetTTLMap(name string) *TTLMap {
	if value, ok := c.ttlMaps.Load(name); ok {
		ttlMap, err := safeTTLMapCast(value)
		if err != nil {
			return nil
		}
		return ttlMap
	}
	return nil
}

func (c *client) ClearAllTTLMaps() {
	c.local.Clear()
	c.ttlMaps.Range(func(key, value interface{}) bool {
		if ttlMap, ok := value.(*TTLMap); ok {
			ttlMap.Clear()
		}
		return true
	})
}

// Close stops the in-process sweepers and closes redis.
func (c *client) Close() error {
	c.local.Stop()
	c.ttlMaps.Range(func(key, value interface{}) bool {
		if ttlMap, ok := value.(*TTLMap); ok {
			ttlMap.Stop()
		}
		return true
	})
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Close()
}

func safeStringCast(value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", value)
	}
	return str, nil
}

func safeTTLMapCast(value interface{}) (*TTLMap, error) {
	ttlMap, ok := value.(*TTLMap)
	if !ok {
		return nil, fmt.Errorf("expected *TTLMap, got %T", value)
	}
	return ttlMap, nil
}
