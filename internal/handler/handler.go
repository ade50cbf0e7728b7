package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/repository"
)

// Options configures the service-level handlers.
type Options struct {
	// CORSOrigin is the allowed origin; "*" reflects the caller's Origin.
	CORSOrigin     string
	ServiceName    string
	ServiceVersion string
}

// Handler serves the root, health and CORS concerns shared by all routes.
type Handler struct {
	db   repository.DB
	opts Options
}

func New(db repository.DB, opts Options) *Handler {
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	return &Handler{db: db, opts: opts}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := h.opts.CORSOrigin
		if origin == "*" {
			// Credentials cannot be combined with a literal "*".
			if o := r.Header.Get("Origin"); o != "" {
				origin = o
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message: h.opts.ServiceName,
		Version: h.opts.ServiceVersion,
	})
}
