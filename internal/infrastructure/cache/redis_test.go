package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// fakeProxy emulates the REST gateway: path-encoded commands, bearer auth,
// and the {"result": ...} envelope with null for missing keys.
type fakeProxy struct {
	token string

	mu      sync.Mutex
	values  map[string]string
	expires map[string]time.Time
}

func newFakeProxy(token string) *fakeProxy {
	return &fakeProxy{
		token:   token,
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
	}
}

func (p *fakeProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+p.token {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	segments := strings.Split(strings.TrimPrefix(r.URL.EscapedPath(), "/"), "/")
	for i, s := range segments {
		unescaped, err := url.PathUnescape(s)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		segments[i] = unescaped
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case segments[0] == "PING":
		p.respond(w, "PONG")
	case segments[0] == "SET" && len(segments) == 5 && segments[3] == "EX":
		ttl, err := strconv.Atoi(segments[4])
		if err != nil || ttl <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		p.values[segments[1]] = segments[2]
		p.expires[segments[1]] = time.Now().Add(time.Duration(ttl) * time.Second)
		p.respond(w, "OK")
	case segments[0] == "GET" && len(segments) == 2:
		key := segments[1]
		if exp, ok := p.expires[key]; ok && time.Now().After(exp) {
			delete(p.values, key)
			delete(p.expires, key)
		}
		if v, ok := p.values[key]; ok {
			p.respond(w, v)
		} else {
			_, _ = w.Write([]byte(`{"result":null}`))
		}
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (p *fakeProxy) respond(w http.ResponseWriter, result string) {
	_ = json.NewEncoder(w).Encode(map[string]string{"result": result})
}

func newDirectAdapter(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	adapter := New(Config{Addr: srv.Addr()}, zerolog.Nop())
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter, srv
}

func newRestAdapter(t *testing.T) (*RedisCache, *fakeProxy) {
	t.Helper()
	proxy := newFakeProxy("test-token")
	srv := httptest.NewServer(proxy)
	t.Cleanup(srv.Close)
	adapter := New(Config{RestURL: srv.URL, RestToken: "test-token"}, zerolog.Nop())
	return adapter, proxy
}

func TestRedisCache_TransportEquivalence(t *testing.T) {
	direct, _ := newDirectAdapter(t)
	rest, _ := newRestAdapter(t)

	adapters := map[string]*RedisCache{"direct": direct, "rest": rest}
	type observation struct {
		value string
		found bool
	}

	results := make(map[string][]observation)
	for name, adapter := range adapters {
		ctx := context.Background()

		if _, found, err := adapter.Get(ctx, "last_bet:u1"); err != nil || found {
			t.Fatalf("%s: expected clean miss, got found=%v err=%v", name, found, err)
		}
		if err := adapter.Set(ctx, "last_bet:u1", "bet-1", 60*time.Second); err != nil {
			t.Fatalf("%s: set failed: %v", name, err)
		}
		if err := adapter.Set(ctx, "last_bet:u1", "bet-2", 60*time.Second); err != nil {
			t.Fatalf("%s: overwrite failed: %v", name, err)
		}

		var obs []observation
		for _, key := range []string{"last_bet:u1", "last_bet:u2"} {
			v, found, err := adapter.Get(ctx, key)
			if err != nil {
				t.Fatalf("%s: get %s failed: %v", name, key, err)
			}
			obs = append(obs, observation{value: v, found: found})
		}
		results[name] = obs
	}

	for i := range results["direct"] {
		if results["direct"][i] != results["rest"][i] {
			t.Fatalf("transport results diverge at step %d: direct=%+v rest=%+v",
				i, results["direct"][i], results["rest"][i])
		}
	}
	if results["direct"][0] != (observation{value: "bet-2", found: true}) {
		t.Fatalf("overwrite semantics broken: %+v", results["direct"][0])
	}
}

func TestRedisCache_DirectTTLExpiry(t *testing.T) {
	adapter, srv := newDirectAdapter(t)
	ctx := context.Background()

	if err := adapter.Set(ctx, "last_bet:u1", "bet-1", 60*time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	srv.FastForward(61 * time.Second)

	if _, found, err := adapter.Get(ctx, "last_bet:u1"); err != nil || found {
		t.Fatalf("expected expired key to be a clean miss, got found=%v err=%v", found, err)
	}
}

func TestRedisCache_RestAuthFailureIsInternal(t *testing.T) {
	proxy := newFakeProxy("right-token")
	srv := httptest.NewServer(proxy)
	t.Cleanup(srv.Close)

	adapter := New(Config{RestURL: srv.URL, RestToken: "wrong-token"}, zerolog.Nop())

	err := adapter.Set(context.Background(), "k", "v", time.Minute)
	if kind, ok := domain.KindOf(err); !ok || kind != domain.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRedisCache_RestMalformedResponseIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	t.Cleanup(srv.Close)

	adapter := New(Config{RestURL: srv.URL, RestToken: "t"}, zerolog.Nop())

	_, _, err := adapter.Get(context.Background(), "k")
	if kind, ok := domain.KindOf(err); !ok || kind != domain.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRedisCache_DirectConnectionFailureIsInternal(t *testing.T) {
	srv := miniredis.RunT(t)
	adapter := New(Config{Addr: srv.Addr()}, zerolog.Nop())
	srv.Close()

	err := adapter.Set(context.Background(), "k", "v", time.Minute)
	if kind, ok := domain.KindOf(err); !ok || kind != domain.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}
