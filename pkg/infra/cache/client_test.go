package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestClient_GetFromRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := newClient(db, newTestLogger())

	mock.ExpectGet("k").SetVal("v")
	mock.ExpectGet("missing").RedisNil()

	v, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	_, err = c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SetWritesRedisAndLocal(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := newClient(db, newTestLogger())

	mock.ExpectSet("k", "v", time.Minute).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), "k", "v", time.Minute))

	v, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SetRedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := newClient(db, newTestLogger())

	mock.ExpectSet("k", "v", time.Minute).SetErr(errors.New("READONLY"))

	err := c.Set(context.Background(), "k", "v", time.Minute)
	assert.ErrorContains(t, err, "READONLY")
	assert.Equal(t, 0, c.local.Len())
}

func TestClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := newClient(db, newTestLogger())
	c.local.Set("k", "v")

	mock.ExpectDel("k").SetVal(1)

	require.NoError(t, c.Delete(context.Background(), "k"))
	_, ok := c.local.Get("k")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalClient_JSONRoundTrip(t *testing.T) {
	c := NewLocalClient(newTestLogger())
	assert.False(t, c.RedisEnabled())
	assert.NoError(t, c.Ping(context.Background()))

	type payload struct {
		Values []float32 `json:"values"`
	}
	require.NoError(t, c.SetJSON(context.Background(), "emb", payload{Values: []float32{1, 2}}, time.Hour))

	var got payload
	require.NoError(t, c.GetJSON(context.Background(), "emb", &got))
	assert.Equal(t, []float32{1, 2}, got.Values)

	err := c.GetJSON(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Close())
}

func TestClient_TTLMaps(t *testing.T) {
	c := NewLocalClient(newTestLogger())

	m := c.CreateTTLMap(EmbeddingTTLName, time.Minute)
	m.Set("a", 1)
	assert.Same(t, m, c.GetTTLMap(EmbeddingTTLName))
	assert.Nil(t, c.GetTTLMap("nope"))

	c.ClearAllTTLMaps()
	assert.Equal(t, 0, m.Len())
}

func TestClient_SweepsExpiredLocalEntries(t *testing.T) {
	c := newClientWithSweep(nil, 5*time.Millisecond, newTestLogger())
	defer func() { assert.NoError(t, c.Close()) }()

	named := c.CreateTTLMap(EmbeddingTTLName, time.Millisecond)
	for i := 0; i < 1000; i++ {
		key := "query-" + strconv.Itoa(i)
		require.NoError(t, c.Set(context.Background(), key, "v", time.Millisecond))
		named.Set(key, i)
	}

	assert.Eventually(t, func() bool {
		return c.local.Len() == 0 && named.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestClient_RecreatedTTLMapReplacesPrevious(t *testing.T) {
	c := newClientWithSweep(nil, time.Millisecond, newTestLogger())
	defer func() { assert.NoError(t, c.Close()) }()

	first := c.CreateTTLMap(EmbeddingTTLName, time.Minute)
	second := c.CreateTTLMap(EmbeddingTTLName, time.Minute)
	assert.NotSame(t, first, second)
	assert.Same(t, second, c.GetTTLMap(EmbeddingTTLName))
}

func TestNewClient_DisabledFallsBackToLocal(t *testing.T) {
	c := NewClient(Config{Enabled: false}, newTestLogger())
	assert.False(t, c.RedisEnabled())
}
