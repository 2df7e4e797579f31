package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := NewCache(t.TempDir(), nil, zap.NewNop())
	require.NoError(t, err)
	return cache
}

func TestCacheFetchesOnceThenServesFromDisk(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	cache := newTestCache(t)
	ctx := context.Background()

	data, err := cache.Get(ctx, server.URL+"/ball.png")
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	data, err = cache.Get(ctx, server.URL+"/ball.png")
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	assert.Equal(t, int32(1), hits.Load())
}

func TestCacheFetchFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), server.URL+"/missing.png")
	assert.ErrorIs(t, err, ErrImageUnavailable)
}

func TestCacheEmptyURL(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrImageUnavailable)
}

func TestCacheGetAsync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("async-bytes"))
	}))
	defer server.Close()

	cache := newTestCache(t)

	results := make(chan []byte, 1)
	cache.GetAsync(server.URL+"/logo.png", func(data []byte, err error) {
		require.NoError(t, err)
		results <- data
	})

	select {
	case data := <-results:
		assert.Equal(t, "async-bytes", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
	}
}

func TestCacheEvict(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	cache := newTestCache(t)
	ctx := context.Background()
	url := server.URL + "/ball.png"

	_, err := cache.Get(ctx, url)
	require.NoError(t, err)
	require.NoError(t, cache.Evict(url))

	_, err = cache.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())

	// Evicting an uncached URL is not an error
	assert.NoError(t, cache.Evict(server.URL+"/other.png"))
}
