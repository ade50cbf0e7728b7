package handler

import (
	"log/slog"
	"net/http"
	"time"
)

// loggedResponse remembers what a handler sent so it can be logged after
// the handler returns.
type loggedResponse struct {
	http.ResponseWriter
	status  int
	written int64
}

func (lr *loggedResponse) WriteHeader(code int) {
	if lr.status == 0 {
		lr.status = code
	}
	lr.ResponseWriter.WriteHeader(code)
}

func (lr *loggedResponse) Write(b []byte) (int, error) {
	if lr.status == 0 {
		lr.status = http.StatusOK
	}
	n, err := lr.ResponseWriter.Write(b)
	lr.written += int64(n)
	return n, err
}

func (lr *loggedResponse) Unwrap() http.ResponseWriter { return lr.ResponseWriter }

// RequestLogger logs one line per request with the matched route pattern.
// 5xx responses log at WARN, 4xx at INFO with the same fields.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lr := &loggedResponse{ResponseWriter: w}
		next.ServeHTTP(lr, r)

		status := lr.status
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", r.Pattern,
			"status", status,
			"bytes", lr.written,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		)
	})
}
