package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/virtual-tryon-platform/internal/config"
)

func rateCtx(path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("POST", path, nil)
	req.Header.Set("X-Real-Ip", "203.0.113.9")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}

func TestRateKeyBucketsAuthenticatedUsersApart(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "identity"}

	a := rateCtx("/v1/tryon/start")
	a.Set("user_id", "u1")
	b := rateCtx("/v1/tryon/start")
	b.Set("user_id", "u2")

	ka, kb := rateKey(cfg, a), rateKey(cfg, b)
	if ka == kb {
		t.Fatalf("two users share bucket %q", ka)
	}
	if !strings.Contains(ka, "user:u1") {
		t.Fatalf("key %q must carry the token subject", ka)
	}
}

func TestRateKeyFallsBackToClientIP(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "identity"}
	c := rateCtx("/v1/products")
	key := rateKey(cfg, c)
	if !strings.Contains(key, "ip:203.0.113.9") {
		t.Fatalf("anonymous key = %q, want the client IP", key)
	}
}

func TestRateKeyDefaultStrategySplitsByRoute(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "identity_route"}

	start := rateCtx("/v1/tryon/start")
	start.Set("user_id", "u1")
	end := rateCtx("/v1/tryon/end")
	end.Set("user_id", "u1")

	if rateKey(cfg, start) == rateKey(cfg, end) {
		t.Fatal("routes must not share one bucket under identity_route")
	}
}

func TestTokenBucketWithoutRedisPassesThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)
	called := false
	h := mw(func(c echo.Context) error { called = true; return nil })
	if err := h(rateCtx("/v1/products")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatal("middleware must be a no-op without Redis")
	}
}
