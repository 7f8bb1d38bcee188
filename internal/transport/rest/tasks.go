package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*task.TaskView, error)
	PatchTask(ctx context.Context, id uuid.UUID, input task.PatchTaskInput) (*task.TaskView, error)
	AddComment(ctx context.Context, taskID uuid.UUID, input task.AddCommentInput) (*task.TaskView, error)
	RemoveComment(ctx context.Context, taskID uuid.UUID, commentID uuid.UUID) (*task.TaskView, error)
	ListProjectTasks(ctx context.Context, projectID uuid.UUID) ([]task.TaskView, error)
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ProjectID   string  `json:"projectId"`
	AssigneeID  *string `json:"assigneeId"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// optional distinguishes an absent PATCH field from one explicitly set to
// null. UnmarshalJSON only runs for keys present in the body.
type optional[T any] struct {
	set   bool
	null  bool
	value T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

type patchTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Priority    *string          `json:"priority"`
	AssigneeID  optional[string] `json:"assigneeId"`
	DueDate     optional[string] `json:"dueDate"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

type taskResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ProjectID    string            `json:"projectId"`
	Assignee     *userRefModel     `json:"assignee"`
	Status       string            `json:"status"`
	Priority     string            `json:"priority"`
	DueDate      *time.Time        `json:"dueDate"`
	UpdatesCount int               `json:"updatesCount"`
	Comments     []commentResponse `json:"comments"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type commentResponse struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Author    *userRefModel `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
	}

	if req.ProjectID != "" {
		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid projectId")
			return
		}
		input.ProjectID = projectID
	}

	if req.AssigneeID != nil && *req.AssigneeID != "" {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid assigneeId")
			return
		}
		input.AssigneeID = &assigneeID
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid dueDate, want RFC 3339")
			return
		}
		input.DueDate = &due
	}

	view, err := h.svc.CreateTask(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toTaskResponse(*view))
}

// Patch handles PATCH /api/tasks/{id}. Only fields present in the body are
// applied; assigneeId and dueDate set to null or "" clear the field.
func (h *TaskHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req patchTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.PatchTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	if req.AssigneeID.set {
		if req.AssigneeID.null || req.AssigneeID.value == "" {
			input.ClearAssignee = true
		} else {
			assigneeID, err := uuid.Parse(req.AssigneeID.value)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid assigneeId")
				return
			}
			input.AssigneeID = &assigneeID
		}
	}

	if req.DueDate.set {
		if req.DueDate.null || req.DueDate.value == "" {
			input.ClearDueDate = true
		} else {
			due, err := time.Parse(time.RFC3339, req.DueDate.value)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid dueDate, want RFC 3339")
				return
			}
			input.DueDate = &due
		}
	}

	view, err := h.svc.PatchTask(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toTaskResponse(*view))
}

// AddComment handles POST /api/tasks/{id}/comments.
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.AddComment(r.Context(), id, task.AddCommentInput{Text: req.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toTaskResponse(*view))
}

// RemoveComment handles DELETE /api/tasks/{id}/comments/{commentId}.
func (h *TaskHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	commentID, ok := pathUUID(r, "commentId")
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	view, err := h.svc.RemoveComment(r.Context(), id, commentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toTaskResponse(*view))
}

func toTaskResponse(v task.TaskView) taskResponse {
	comments := make([]commentResponse, 0, len(v.Comments))
	for _, c := range v.Comments {
		comments = append(comments, commentResponse{
			ID:        c.Comment.ID.String(),
			Text:      c.Comment.Text,
			Author:    toUserRefModel(c.Author),
			CreatedAt: c.Comment.CreatedAt,
		})
	}

	return taskResponse{
		ID:           v.Task.ID.String(),
		Title:        v.Task.Title,
		Description:  v.Task.Description,
		ProjectID:    v.Task.ProjectID.String(),
		Assignee:     toUserRefModel(v.Assignee),
		Status:       string(v.Task.Status),
		Priority:     string(v.Task.Priority),
		DueDate:      v.Task.DueDate,
		UpdatesCount: v.Task.UpdatesCount,
		Comments:     comments,
		CreatedAt:    v.Task.CreatedAt,
		UpdatedAt:    v.Task.UpdatedAt,
	}
}
