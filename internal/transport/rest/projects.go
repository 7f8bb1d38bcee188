package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]project.ProjectView, error)
	UpdateProject(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	GetSummary(ctx context.Context, projectID uuid.UUID) (*domain.ProjectSummary, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc   projectService
	tasks taskService
	log   *slog.Logger
}

// NewProjectHandler creates a ProjectHandler. The task service supplies the
// denormalized task listing for GET /api/projects/{id}/tasks.
func NewProjectHandler(svc projectService, tasks taskService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, tasks: tasks, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type projectResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	OwnerID     string        `json:"ownerId"`
	Owner       *userRefModel `json:"owner,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type userRefModel struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type summaryResponse struct {
	TotalTasks    int                  `json:"totalTasks"`
	TasksByStatus statusCountsModel    `json:"tasksByStatus"`
	OverdueTasks  int                  `json:"overdueTasks"`
	TopAssignees  []assigneeCountModel `json:"topAssignees"`
}

type statusCountsModel struct {
	Todo       int `json:"todo"`
	InProgress int `json:"inprogress"`
	Done       int `json:"done"`
}

type assigneeCountModel struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	TaskCount int    `json:"taskCount"`
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListProjects(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]projectResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toProjectResponse(v.Project, v.Owner))
	}
	writeData(w, http.StatusOK, resp)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toProjectResponse(created, nil))
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateProject(r.Context(), id, project.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toProjectResponse(updated, nil))
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "project and associated tasks deleted")
}

// Tasks handles GET /api/projects/{id}/tasks.
func (h *ProjectHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	views, err := h.tasks.ListProjectTasks(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]taskResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toTaskResponse(v))
	}
	writeData(w, http.StatusOK, resp)
}

// Summary handles GET /api/projects/{id}/summary.
func (h *ProjectHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	summary, err := h.svc.GetSummary(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toSummaryResponse(summary))
}

func toProjectResponse(p *domain.Project, owner *domain.UserRef) projectResponse {
	resp := projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if owner != nil {
		resp.Owner = toUserRefModel(owner)
	}
	return resp
}

func toUserRefModel(ref *domain.UserRef) *userRefModel {
	if ref == nil {
		return nil
	}
	return &userRefModel{
		ID:       ref.ID.String(),
		Username: ref.Username,
		Email:    ref.Email,
	}
}

func toSummaryResponse(s *domain.ProjectSummary) summaryResponse {
	top := make([]assigneeCountModel, 0, len(s.TopAssignees))
	for _, a := range s.TopAssignees {
		top = append(top, assigneeCountModel{
			UserID:    a.UserID.String(),
			Username:  a.Username,
			Email:     a.Email,
			TaskCount: a.TaskCount,
		})
	}
	return summaryResponse{
		TotalTasks: s.TotalTasks,
		TasksByStatus: statusCountsModel{
			Todo:       s.TasksByStatus.Todo,
			InProgress: s.TasksByStatus.InProgress,
			Done:       s.TasksByStatus.Done,
		},
		OverdueTasks: s.OverdueTasks,
		TopAssignees: top,
	}
}
