package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/catalogops/lineage-engine/pkg/lineage"
	"github.com/catalogops/lineage-engine/pkg/logging"
	"github.com/catalogops/lineage-engine/pkg/metrics"
)

// APIError carries the status the metadata platform answered with.
type APIError struct {
	StatusCode int
	Operation  string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: catalog API returned %d: %s", e.Operation, e.StatusCode, e.Body)
}

// ClientConfig configures the metadata-platform client.
type ClientConfig struct {
	BaseURL          string
	APIKey           string
	Timeout          time.Duration
	FetchConcurrency int // fixed limit on in-flight batched requests
}

// Client talks to the metadata platform's lineage and entity APIs with
// bearer-token auth, a time-boxed result cache, and a fixed concurrency
// limit on batched fetches. The graph engine never sees this layer; it
// receives complete, already-fetched payloads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	semaphore  chan struct{}
	cache      *ResultCache
	logger     logging.Logger
	registry   *metrics.Registry
}

// NewClient creates a catalog client. cache may be nil to disable caching.
func NewClient(cfg ClientConfig, cache *ResultCache, logger logging.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 5
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		semaphore:  make(chan struct{}, cfg.FetchConcurrency),
		cache:      cache,
		logger:     logger.With(logging.Component("catalog-client")),
		registry:   metrics.Default(),
	}
}

type lineageListRequest struct {
	Guid      string `json:"guid"`
	Direction string `json:"direction"`
	Depth     int    `json:"depth"`
}

// FetchLineage fetches the raw lineage payload for one center asset,
// cache-first. The response is the engine's input; nothing is classified
// or derived here.
func (c *Client) FetchLineage(ctx context.Context, guid string, direction lineage.Direction, depth int) (*lineage.RawLineageResponse, error) {
	key := fmt.Sprintf("lineage|%s|%s|%d", guid, direction, depth)

	if c.cache != nil {
		if payload, ok := c.cache.Get(key); ok {
			var cached lineage.RawLineageResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				c.logger.Debug("lineage cache hit", logging.Guid(guid))
				c.registry.RecordCacheAccess(true)
				return &cached, nil
			}
			c.cache.Invalidate(key)
		}
		c.registry.RecordCacheAccess(false)
	}

	body, err := json.Marshal(lineageListRequest{
		Guid:      guid,
		Direction: string(direction),
		Depth:     depth,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal lineage request: %w", err)
	}

	start := time.Now()
	payload, err := c.do(ctx, http.MethodPost, "/api/meta/lineage/list", body, "FetchLineage")
	if err != nil {
		return nil, err
	}

	var response lineage.RawLineageResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("decode lineage response: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(key, payload)
	}

	c.logger.Debug("lineage fetched",
		logging.Guid(guid),
		logging.Direction(string(direction)),
		logging.Int("entities", len(response.GuidEntityMap)),
		logging.Int("relations", len(response.Relations)),
		logging.Latency(time.Since(start)),
	)
	return &response, nil
}

// FetchAsset fetches a single entity record by guid.
func (c *Client) FetchAsset(ctx context.Context, guid string) (*lineage.AssetRecord, error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/meta/entity/guid/"+guid, nil, "FetchAsset")
	if err != nil {
		return nil, err
	}

	var record lineage.AssetRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode entity response: %w", err)
	}
	return &record, nil
}

// FetchAssets fetches a batch of entity records concurrently under the
// client's concurrency limit. Individual failures are logged and skipped;
// partial metadata responses are normal, not fatal. An error is returned
// only when nothing could be fetched at all.
func (c *Client) FetchAssets(ctx context.Context, guids []string) (map[string]*lineage.AssetRecord, error) {
	results := make(map[string]*lineage.AssetRecord, len(guids))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	for _, guid := range guids {
		wg.Add(1)
		go func(guid string) {
			defer wg.Done()

			record, err := c.FetchAsset(ctx, guid)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				c.logger.Warn("asset fetch failed", logging.Guid(guid), logging.Error(err))
				return
			}
			results[guid] = record
		}(guid)
	}
	wg.Wait()

	if len(results) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Ping checks reachability of the metadata platform, for health checks.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/meta", nil, "Ping")
	return err
}

// CacheStats exposes the underlying cache statistics, zero when disabled.
func (c *Client) CacheStats() CacheStats {
	if c.cache == nil {
		return CacheStats{}
	}
	return c.cache.Stats()
}

// do issues one authenticated request under the concurrency limit.
func (c *Client) do(ctx context.Context, method, path string, body []byte, operation string) ([]byte, error) {
	select {
	case c.semaphore <- struct{}{}:
		defer func() { <-c.semaphore }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.registry.RecordCatalogFetch(operation, "error", time.Since(start))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()
	c.registry.RecordCatalogFetch(operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", operation, err)
	}

	if resp.StatusCode != http.StatusOK {
		snippet := string(payload)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Operation: operation, Body: snippet}
	}

	return payload, nil
}
