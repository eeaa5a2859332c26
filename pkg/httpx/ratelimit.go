package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aegislegal/demogate/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig expresses a per-key token bucket: RequestsPerWindow
// sustained over Window, with Burst tokens available up front.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Endpoint profiles. Each can be overridden through
// RATELIMIT_{STRICT,MODERATE,LENIENT}_{REQUESTS,WINDOW_SEC,BURST}, which
// tests and load environments use to relax them.
var (
	// StrictLimit guards credential exchanges against brute force.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit covers administrative operations.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit covers authenticated reads and health probes.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
)

func init() {
	StrictLimit = overrideFromEnv("STRICT", StrictLimit)
	ModerateLimit = overrideFromEnv("MODERATE", ModerateLimit)
	LenientLimit = overrideFromEnv("LENIENT", LenientLimit)
}

func overrideFromEnv(name string, cfg RateLimitConfig) RateLimitConfig {
	if n, ok := envPositiveInt("RATELIMIT_" + name + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := envPositiveInt("RATELIMIT_" + name + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := envPositiveInt("RATELIMIT_" + name + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func envPositiveInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor derives the bucket key for a request, for example the
// client IP or the authenticated user id. An empty key skips limiting.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor resolves the client IP, preferring the first
// X-Forwarded-For hop, then X-Real-IP, then RemoteAddr without its port.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// limiterPool holds one token bucket per key. Idle buckets (back at full
// burst) are dropped on a sweep at most every five minutes so ephemeral
// keys do not accumulate.
type limiterPool struct {
	limit rate.Limit
	burst int

	buckets sync.Map // key string -> *rate.Limiter

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func newLimiterPool(cfg RateLimitConfig) *limiterPool {
	perSecond := float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()
	return &limiterPool{
		limit:     rate.Limit(perSecond),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	if l, ok := p.buckets.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := p.buckets.LoadOrStore(key, rate.NewLimiter(p.limit, p.burst))
	p.sweep()
	return l.(*rate.Limiter)
}

func (p *limiterPool) sweep() {
	p.sweepMu.Lock()
	defer p.sweepMu.Unlock()

	if time.Since(p.lastSweep) < 5*time.Minute {
		return
	}
	p.lastSweep = time.Now()

	p.buckets.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(p.burst) {
			p.buckets.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware limits requests per key as extracted by keyFn. Each
// middleware instance owns its own pool, so separate routes never share
// buckets.
func RateLimitMiddleware(cfg RateLimitConfig, keyFn KeyExtractor) Middleware {
	pool := newLimiterPool(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyFn(r)
			if key == "" {
				log.Warn("rate limit key unresolvable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := pool.get(key)
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			res := limiter.Reserve()
			retryAfter := max(int(res.Delay().Seconds()), 1)
			res.Cancel()

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			log.Warn("rate limit exceeded",
				"key", key,
				"endpoint", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "rate limit exceeded, try again later",
			})
		})
	}
}

// RateLimitByIP buckets requests by client IP.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser buckets requests by authenticated user id, falling back
// to the client IP before the guard has resolved the caller.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, func(r *http.Request) string {
		if id := userIDFromCtx(r.Context()); id != "" {
			return id
		}
		return IPKeyExtractor(r)
	})
}
