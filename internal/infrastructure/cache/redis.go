// Package cache implements the Cache port over one of two transports: a
// direct connection to a Redis-compatible store, or an authenticated REST
// proxy in front of one (Upstash-style, for serverless deployments). The
// transport is chosen once at construction and both expose byte-identical
// semantics to callers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

const restRequestTimeout = 5 * time.Second

// setFailuresTotal counts failed cache writes. Writes are best-effort for
// callers, so this counter is the only aggregate signal that the cache is
// degrading.
var setFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "betting",
	Subsystem: "cache",
	Name:      "set_failures_total",
	Help:      "Total number of failed cache writes.",
})

type transport int

const (
	transportDirect transport = iota
	transportRest
)

// Config captures the settings for building the adapter. When both RestURL
// and RestToken are set the REST proxy transport is selected; otherwise the
// adapter connects directly to Addr.
type Config struct {
	Addr      string
	DB        int
	RestURL   string
	RestToken string
}

// UseRestProxy reports whether the REST proxy transport will be selected.
func (c Config) UseRestProxy() bool {
	return c.RestURL != "" && c.RestToken != ""
}

// RedisCache implements ports.Cache. Exactly one transport is active for the
// adapter's lifetime; every operation switches on it exhaustively.
type RedisCache struct {
	mode   transport
	client *redis.Client // direct
	rest   *restClient   // proxy
}

type restClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds the adapter, fixing the transport for its lifetime.
func New(cfg Config, logger zerolog.Logger) *RedisCache {
	if cfg.UseRestProxy() {
		logger.Info().Str("url", cfg.RestURL).Msg("cache: using REST proxy transport")
		return &RedisCache{
			mode: transportRest,
			rest: &restClient{
				baseURL: cfg.RestURL,
				token:   cfg.RestToken,
				http:    &http.Client{Timeout: restRequestTimeout},
			},
		}
	}

	logger.Info().Str("addr", cfg.Addr).Msg("cache: using direct transport")
	return &RedisCache{
		mode: transportDirect,
		client: redis.NewClient(&redis.Options{
			Addr: cfg.Addr,
			DB:   cfg.DB,
		}),
	}
}

// Set stores value under key with the given expiry, overwriting any
// existing entry. The TTL is applied at whole-second resolution.
func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	switch r.mode {
	case transportDirect:
		if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
			setFailuresTotal.Inc()
			return domain.Internalf("cache set: %v", err)
		}
		return nil
	case transportRest:
		path := fmt.Sprintf("/SET/%s/%s/EX/%d",
			url.PathEscape(key), url.PathEscape(value), int64(ttl/time.Second))
		var resp restResponse
		if err := r.rest.do(ctx, http.MethodPost, path, &resp); err != nil {
			setFailuresTotal.Inc()
			return err
		}
		return nil
	default:
		return domain.Internalf("cache set: unknown transport %d", r.mode)
	}
}

// Get fetches the value under key. A missing or expired key is reported as
// found == false.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	switch r.mode {
	case transportDirect:
		val, err := r.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		if err != nil {
			return "", false, domain.Internalf("cache get: %v", err)
		}
		return val, true, nil
	case transportRest:
		var resp restResponse
		if err := r.rest.do(ctx, http.MethodGet, "/GET/"+url.PathEscape(key), &resp); err != nil {
			return "", false, err
		}
		if resp.Result == nil {
			return "", false, nil
		}
		return *resp.Result, true, nil
	default:
		return "", false, domain.Internalf("cache get: unknown transport %d", r.mode)
	}
}

// Ping verifies the active transport can reach the store.
func (r *RedisCache) Ping(ctx context.Context) error {
	switch r.mode {
	case transportDirect:
		if err := r.client.Ping(ctx).Err(); err != nil {
			return domain.Internalf("cache ping: %v", err)
		}
		return nil
	case transportRest:
		var resp restResponse
		return r.rest.do(ctx, http.MethodGet, "/PING", &resp)
	default:
		return domain.Internalf("cache ping: unknown transport %d", r.mode)
	}
}

// Close releases the direct connection. The REST transport holds no
// persistent resources.
func (r *RedisCache) Close() error {
	if r.mode == transportDirect {
		return r.client.Close()
	}
	return nil
}

// restResponse is the proxy's JSON envelope; result is null when the key is
// absent.
type restResponse struct {
	Result *string `json:"result"`
}

func (c *restClient) do(ctx context.Context, method, path string, out *restResponse) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return domain.Internalf("cache proxy request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Internalf("cache proxy request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.Internalf("cache proxy responded %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.Internalf("cache proxy response: %v", err)
	}
	return nil
}
