package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryCounterStoreIncr(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, ttl, err := store.Incr(ctx, "login:1.2.3.4", 60)
		if err != nil {
			t.Fatalf("incr failed: %v", err)
		}
		if count != want {
			t.Fatalf("count want %d got %d", want, count)
		}
		if ttl < 1 || ttl > 60 {
			t.Fatalf("ttl out of range: %d", ttl)
		}
	}

	// Keys count independently.
	count, _, err := store.Incr(ctx, "login:5.6.7.8", 60)
	if err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("independent key count want 1 got %d", count)
	}
}

func TestMemoryCounterStoreWindowReset(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	if count, _, _ := store.Incr(ctx, "k", 1); count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
	if count, _, _ := store.Incr(ctx, "k", 1); count != 2 {
		t.Fatalf("count want 2 got %d", count)
	}

	time.Sleep(1100 * time.Millisecond)
	count, _, err := store.Incr(ctx, "k", 1)
	if err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count after window lapse want 1 got %d", count)
	}
}

func TestRateLimitMiddlewareDeniesOverBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	rule := RateLimitRule{Prefix: "test:rate", WindowSeconds: 60, MaxRequests: 2}
	r.Use(RateLimitMiddleware(NewMemoryCounterStore(), rule, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status want 200 got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status want 429 got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope, got %s", w.Body.String())
	}
}

func TestRateLimitMiddlewareWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "uint8", input: uint8(12), want: 12, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
