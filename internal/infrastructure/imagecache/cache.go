package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/shared"
)

// ErrImageUnavailable is returned when an image can neither be read
// from the cache nor fetched from its source URL. Callers render a
// placeholder instead of failing the surrounding request.
var ErrImageUnavailable = shared.NewDomainError("CONNECTIVITY", "Image is unavailable")

const (
	maxImageSize = 10 << 20 // 10 MiB
	fetchTimeout = 15 * time.Second
)

// Cache is an on-disk image cache. Files are keyed by the SHA-256 of
// the source URL, so the same URL is fetched over the network at most
// once. Concurrent requests for the same URL share a single fetch.
type Cache struct {
	dir    string
	client *http.Client
	logger *zap.Logger

	mu       sync.Mutex
	inflight map[string]chan struct{}
}

// NewCache creates a Cache rooted at dir, creating the directory if
// needed. A nil client falls back to a default with a fetch timeout.
func NewCache(dir string, client *http.Client, logger *zap.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image cache dir: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Cache{
		dir:      dir,
		client:   client,
		logger:   logger,
		inflight: make(map[string]chan struct{}),
	}, nil
}

// cacheKey derives the on-disk file name for a URL.
func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Get returns the image bytes for url, serving from disk when cached
// and fetching otherwise. Fetch failures return ErrImageUnavailable.
func (c *Cache) Get(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrImageUnavailable
	}
	path := filepath.Join(c.dir, cacheKey(url))

	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	if err := c.fetch(ctx, url, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrImageUnavailable
	}
	return data, nil
}

// GetAsync fetches the image in the background and invokes done with
// the result. The callback runs on a separate goroutine.
func (c *Cache) GetAsync(url string, done func(data []byte, err error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		done(c.Get(ctx, url))
	}()
}

// fetch downloads url into path, deduplicating concurrent downloads
// of the same URL.
func (c *Cache) fetch(ctx context.Context, url, path string) error {
	c.mu.Lock()
	if ch, ok := c.inflight[url]; ok {
		c.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		// The winning fetch has finished; the file is either there or it is not.
		if _, err := os.Stat(path); err != nil {
			return ErrImageUnavailable
		}
		return nil
	}
	ch := make(chan struct{})
	c.inflight[url] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, url)
		c.mu.Unlock()
		close(ch)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("invalid image url", zap.String("url", url), zap.Error(err))
		return ErrImageUnavailable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("image fetch failed", zap.String("url", url), zap.Error(err))
		return ErrImageUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("image fetch returned non-200",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return ErrImageUnavailable
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		c.logger.Warn("image read failed", zap.String("url", url), zap.Error(err))
		return ErrImageUnavailable
	}

	// Write through a temp file so a partial download never becomes a cache hit.
	tmp, err := os.CreateTemp(c.dir, "fetch-*")
	if err != nil {
		return ErrImageUnavailable
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return ErrImageUnavailable
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return ErrImageUnavailable
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return ErrImageUnavailable
	}
	return nil
}

// Evict removes the cached copy of url, if any.
func (c *Cache) Evict(url string) error {
	err := os.Remove(filepath.Join(c.dir, cacheKey(url)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
