package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

type testServer struct {
	router    http.Handler
	uploadDir string
	projects  *memProjectRepo
	contacts  *recordingContactRepo
}

func newTestServer(t *testing.T, limiter *RateLimiter) *testServer {
	t.Helper()
	projects := newMemProjectRepo()
	contacts := &recordingContactRepo{}
	uploadDir := t.TempDir()

	router := NewRouter(Routes{
		Handler:      New(&mockDB{}, testOptions("*")),
		Projects:     NewProjectHandler(service.NewProjectService(projects)),
		Contacts:     NewContactHandler(service.NewContactService(contacts)),
		Uploads:      NewUploadHandler(&mockStorage{}),
		UploadDir:    uploadDir,
		WriteLimiter: limiter,
	})
	if err := os.WriteFile(filepath.Join(uploadDir, "hello.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write upload fixture: %v", err)
	}
	return &testServer{router: router, uploadDir: uploadDir, projects: projects, contacts: contacts}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ProjectLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/projects", validProjectBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	var created model.Project
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("unexpected created project %+v", created)
	}

	rec = s.do(http.MethodGet, "/api/projects/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	time.Sleep(2 * time.Millisecond)
	updated := strings.Replace(validProjectBody, `"featured": true`, `"featured": false`, 1)
	rec = s.do(http.MethodPut, "/api/projects/"+created.ID, updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
	var after model.Project
	if err := json.NewDecoder(rec.Body).Decode(&after); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if after.ID != created.ID || !after.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("id and created_at must not change: %+v", after)
	}
	if !after.UpdatedAt.After(created.UpdatedAt) || after.Featured {
		t.Errorf("update not applied: %+v", after)
	}

	rec = s.do(http.MethodDelete, "/api/projects/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	var msg messageResponse
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != "project deleted" {
		t.Errorf("unexpected delete message %q", msg.Message)
	}

	if rec = s.do(http.MethodGet, "/api/projects/"+created.ID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
	if rec = s.do(http.MethodDelete, "/api/projects/"+created.ID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestRouter_FeaturedIsNotAnID(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(http.MethodPost, "/api/projects", validProjectBody)
	s.do(http.MethodPost, "/api/projects", strings.Replace(validProjectBody, `"featured": true`, `"featured": false`, 1))

	rec := s.do(http.MethodGet, "/api/projects/featured", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []model.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || !got[0].Featured {
		t.Errorf("expected exactly the featured project, got %+v", got)
	}

	rec = s.do(http.MethodGet, "/api/projects", "")
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 projects, got %d", len(got))
	}
}

func TestRouter_ContactSubmitAndList(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodPost, "/api/contact", `{"name":"Ana","email":"ana@example.com","subject":"Quote","message":"Need a site"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodGet, "/api/contacts", "")
	var got []model.ContactMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Status != model.ContactStatusUnread || got[0].Email != "ana@example.com" {
		t.Errorf("unexpected contacts %+v", got)
	}
}

func TestRouter_ContactRateLimited(t *testing.T) {
	s := newTestServer(t, NewRateLimiter(1, time.Minute))
	body := `{"name":"Ana","email":"ana@example.com","subject":"Quote","message":"Need a site"}`

	if rec := s.do(http.MethodPost, "/api/contact", body); rec.Code != http.StatusCreated {
		t.Fatalf("first submit: expected 201, got %d", rec.Code)
	}
	rec := s.do(http.MethodPost, "/api/contact", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second submit: expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
	if len(s.contacts.saved) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(s.contacts.saved))
	}

	// Reads are never limited.
	if rec := s.do(http.MethodGet, "/api/contacts", ""); rec.Code != http.StatusOK {
		t.Errorf("list: expected 200, got %d", rec.Code)
	}
}

func TestRouter_RootHealthAndHeaders(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("root: expected 200, got %d", rec.Code)
	}
	var root rootResponse
	if err := json.NewDecoder(rec.Body).Decode(&root); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if root.Message != "Portfolio API" {
		t.Errorf("unexpected root %+v", root)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers on every response")
	}

	if rec := s.do(http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}
	if rec := s.do(http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown path: expected 404, got %d", rec.Code)
	}
	if rec := s.do(http.MethodPatch, "/api/projects/x", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("unknown method: expected 405, got %d", rec.Code)
	}
}

func TestRouter_ServesUploads(t *testing.T) {
	s := newTestServer(t, nil)
	rec := s.do(http.MethodGet, "/uploads/hello.txt", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "hi" {
		t.Errorf("expected uploaded file, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_UploadedImageUsableInProject(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartRequest(t, "image", "hero.png", pngBytes))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	var up uploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&up); err != nil {
		t.Fatalf("decode: %v", err)
	}

	body, err := json.Marshal(model.ProjectInput{
		Title:         "Gallery",
		Subtitle:      "Uploaded images",
		Description:   "Uses uploaded imagery.",
		TechStack:     []string{"Go"},
		Category:      "Web",
		HeroImage:     up.URL,
		GalleryImages: []string{up.URL},
		Challenge:     "c",
		Solution:      "s",
		Process:       "p",
		Results:       "r",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rec = s.do(http.MethodPost, "/api/projects", string(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create with %q: expected 201, got %d, body: %s", up.URL, rec.Code, rec.Body.String())
	}
}

func TestRouter_UploadsDoNotListDirectories(t *testing.T) {
	s := newTestServer(t, nil)
	if err := os.MkdirAll(filepath.Join(s.uploadDir, "projects"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir, "projects", "a.png"), pngBytes, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, target := range []string{"/uploads/", "/uploads/projects/", "/uploads/projects"} {
		rec := s.do(http.MethodGet, target, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", target, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "a.png") {
			t.Errorf("GET %s leaked a file name: %s", target, rec.Body.String())
		}
	}

	if rec := s.do(http.MethodGet, "/uploads/projects/a.png", ""); rec.Code != http.StatusOK {
		t.Errorf("expected file to be served, got %d", rec.Code)
	}
}
