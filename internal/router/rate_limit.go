package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/siddur-next/internal/http/response"
	"github.com/siddur-next/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc derives the limiter key for a request.
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule is a fixed-window limit for one bucket of routes.
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	MessageKey    string
}

// CounterStore increments a windowed counter and reports its remaining TTL.
type CounterStore interface {
	Incr(ctx context.Context, key string, windowSeconds int) (count int64, ttlSeconds int64, err error)
}

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RedisCounterStore backs the limiter with shared Redis counters.
type RedisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore creates a Redis-backed counter store.
func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

// Incr bumps the counter, setting the window expiry on first hit.
func (s *RedisCounterStore) Incr(ctx context.Context, key string, windowSeconds int) (int64, int64, error) {
	if s.client == nil {
		return 0, 0, errors.New("redis client is nil")
	}
	result, err := rateLimitScript.Run(ctx, s.client, []string{key}, windowSeconds).Result()
	if err != nil {
		return 0, 0, err
	}
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, 0, errors.New("unexpected rate limit script result")
	}
	count, ok := toInt64(values[0])
	if !ok {
		return 0, 0, errors.New("unexpected rate limit count type")
	}
	ttlSeconds, _ := toInt64(values[1])
	return count, ttlSeconds, nil
}

type memoryWindow struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterStore keeps windowed counters in process memory. It is the
// fallback when Redis is not configured; counts are per instance.
type MemoryCounterStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
}

// NewMemoryCounterStore creates an in-process counter store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{windows: make(map[string]*memoryWindow)}
}

// Incr bumps the counter for key, starting a fresh window when the old one
// has lapsed.
func (s *MemoryCounterStore) Incr(_ context.Context, key string, windowSeconds int) (int64, int64, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	window, ok := s.windows[key]
	if !ok || !window.expiresAt.After(now) {
		window = &memoryWindow{expiresAt: now.Add(time.Duration(windowSeconds) * time.Second)}
		s.windows[key] = window
	}
	window.count++

	ttl := int64(window.expiresAt.Sub(now).Seconds())
	if ttl < 1 {
		ttl = 1
	}
	return window.count, ttl, nil
}

// RateLimitMiddleware rejects requests over the rule's fixed-window budget
// with 429 and a Retry-After header.
func RateLimitMiddleware(store CounterStore, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		count, ttlSeconds, err := store.Incr(c.Request.Context(), key, rule.WindowSeconds)
		if err != nil {
			msg := i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable")
			response.Error(c, response.CodeInternal, msg)
			c.Abort()
			return
		}

		if count > int64(rule.MaxRequests) {
			waitSeconds := int(ttlSeconds)
			if waitSeconds < 1 {
				waitSeconds = rule.WindowSeconds
			}
			if waitSeconds < 1 {
				waitSeconds = 1
			}
			msgKey := strings.TrimSpace(rule.MessageKey)
			if msgKey == "" {
				msgKey = "error.rate_limited"
			}
			c.Writer.Header().Set("Retry-After", strconv.Itoa(waitSeconds))
			msg := i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds)
			response.Error(c, response.CodeTooManyRequests, msg)
			c.Abort()
			return
		}

		c.Next()
	}
}

// KeyByIP keys the limiter on the client IP.
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	default:
		return 0, false
	}
}
