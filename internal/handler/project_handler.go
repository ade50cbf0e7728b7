package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

const projectNotFound = "project not found"

// ProjectHandler serves the project CRUD endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, nonNilProjects(projects))
}

// Featured handles GET /api/projects/featured.
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListFeatured(r.Context())
	if err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, nonNilProjects(projects))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}

	project, err := h.projectService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id}. The body replaces every editable field.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}

	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

type messageResponse struct {
	Message string `json:"message"`
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, projectNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "project deleted"})
}

// Return [] not null for empty lists.
func nonNilProjects(p []*model.Project) []*model.Project {
	if p == nil {
		return []*model.Project{}
	}
	return p
}
