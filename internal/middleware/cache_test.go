package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/config"
)

func cacheKeyFor(t *testing.T, target string) string {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	// Parameterized routes all share one registered pattern; the key must
	// come from the request URL, not from here.
	c.SetPath("/api/villa/:id")
	return cacheKey("cache", c)
}

func TestCacheKeyDistinguishesPathParams(t *testing.T) {
	k1 := cacheKeyFor(t, "/api/villa/1")
	k2 := cacheKeyFor(t, "/api/villa/2")
	if k1 == k2 {
		t.Fatalf("keys for /api/villa/1 and /api/villa/2 collide: %s", k1)
	}
	if again := cacheKeyFor(t, "/api/villa/1"); again != k1 {
		t.Errorf("key for the same URL is not stable: %s vs %s", again, k1)
	}
}

func TestCacheKeyIncludesQuery(t *testing.T) {
	k1 := cacheKeyFor(t, "/api/villa?page=1")
	k2 := cacheKeyFor(t, "/api/villa?page=2")
	if k1 == k2 {
		t.Errorf("keys for different query strings collide: %s", k1)
	}
}

func TestRedisCachePassThrough(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CacheConfig
	}{
		{"disabled by config", config.CacheConfig{Enabled: false, TTL: time.Second}},
		{"no redis client", config.CacheConfig{Enabled: true, TTL: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/villa", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := NewRedisCache(tt.cfg, nil)
			err := mw(func(c echo.Context) error {
				return c.String(http.StatusOK, "payload")
			})(c)
			if err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}
			if rec.Code != http.StatusOK || rec.Body.String() != "payload" {
				t.Errorf("response altered: %d %q", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("X-Cache"); got != "" {
				t.Errorf("pass-through must not set X-Cache, got %q", got)
			}
		})
	}
}

func TestDecodePayloadRejectsCorruptInput(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	encoded, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	status, gotHdr, body, ok := decodePayload(encoded)
	if !ok || status != http.StatusOK || string(body) != `{"ok":true}` {
		t.Fatalf("decode round trip failed: ok=%v status=%d body=%s", ok, status, body)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("header lost in round trip: %v", gotHdr)
	}

	for _, bad := range [][]byte{nil, {1, 2, 3}, encoded[:6]} {
		if _, _, _, ok := decodePayload(bad); ok {
			t.Errorf("decodePayload accepted corrupt input %v", bad)
		}
	}
}
