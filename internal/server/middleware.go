package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/undefined06855/Extra-Icon-Data-Server/internal/shared"
)

// RequestLogger returns a [Middleware] that tags every request with a
// generated request ID (echoed in the X-Request-ID response header) and
// logs method, path, and duration once the handler returns.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := shared.GenerateRequestID()
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Info("request",
				"id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}
