package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aegislegal/demogate/pkg/idx"
)

// HTTPMiddleware attaches a request-scoped logger to the request context
// and emits one access line per request after the handler returns. The
// request id comes from X-Request-ID when the caller supplies one, so log
// lines can be correlated across a proxy.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}

			logger := base.With(
				slog.String("req_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			rec := statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(&rec, r.WithContext(WithContext(r.Context(), logger)))

			logger.Info("http_request",
				slog.Int("status", rec.status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("user_agent", r.UserAgent()),
			)
		})
	}
}

// statusRecorder remembers the first status code written so the access
// line can report it.
type statusRecorder struct {
	http.ResponseWriter

	status int
	wrote  bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wrote {
		s.status = code
		s.wrote = true
	}
	s.ResponseWriter.WriteHeader(code)
}
