package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadHandler stores project imagery for use as hero or gallery images.
type UploadHandler struct {
	storage storage.Storage
	newID   func() string
}

// NewUploadHandler creates an UploadHandler writing to store.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store, newID: uuid.NewString}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/uploads with a multipart "image" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+(1<<20))
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "file_too_large", "")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image_required", "")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, http.StatusBadRequest, "file_too_large", "")
		return
	}

	// Trust the bytes, not the client supplied Content-Type.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		writeError(w, http.StatusBadRequest, "unreadable_file", "")
		return
	}
	head = head[:n]
	ext, ok := allowedImageTypes[http.DetectContentType(head)]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type", "")
		return
	}

	key := path.Join("projects", h.newID()+ext)
	url, err := h.storage.Save(r.Context(), key, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		slog.Error("image upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "upload_failed", "")
		return
	}

	slog.Info("image uploaded", "key", key, "size", header.Size)
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
