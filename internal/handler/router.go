package handler

import (
	"net/http"
	"os"
)

// Routes is everything NewRouter wires together.
type Routes struct {
	Handler  *Handler
	Projects *ProjectHandler
	Contacts *ContactHandler
	Uploads  *UploadHandler
	// UploadDir is served read-only under /uploads/.
	UploadDir string
	// WriteLimiter guards the public write endpoints; nil disables limiting.
	WriteLimiter *RateLimiter
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(rt Routes) http.Handler {
	limit := func(h http.HandlerFunc) http.Handler {
		if rt.WriteLimiter == nil {
			return h
		}
		return rt.WriteLimiter.Middleware(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", rt.Handler.Root)
	mux.HandleFunc("GET /api/health", rt.Handler.Health)

	mux.HandleFunc("GET /api/projects", rt.Projects.List)
	mux.HandleFunc("GET /api/projects/featured", rt.Projects.Featured)
	mux.HandleFunc("GET /api/projects/{id}", rt.Projects.Get)
	mux.HandleFunc("POST /api/projects", rt.Projects.Create)
	mux.HandleFunc("PUT /api/projects/{id}", rt.Projects.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", rt.Projects.Delete)

	mux.Handle("POST /api/contact", limit(rt.Contacts.Submit))
	mux.HandleFunc("GET /api/contacts", rt.Contacts.List)

	if rt.Uploads != nil {
		mux.Handle("POST /api/uploads", limit(rt.Uploads.Upload))
	}
	if rt.UploadDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(filesOnly{http.Dir(rt.UploadDir)})))
	}

	return RequestLogger(SecurityHeaders(rt.Handler.CORS(mux)))
}

// filesOnly serves regular files and reports directories as missing, so
// GET /uploads/ cannot list what has been uploaded.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
