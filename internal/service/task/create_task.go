package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// CreateTask creates a task inside an existing project. A missing project is
// ErrNotFound; status and priority default to todo/medium.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*TaskView, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	// Normalize input before validation.
	input.Title = strings.TrimSpace(input.Title)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Project must exist
	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("task.CreateTask: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("task.CreateTask get project: %w", err)
	}

	// Step 3: Apply defaults
	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	// Step 4: Create task
	now := time.Now()
	created, err := s.tasks.Create(ctx, &domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		Comments:    []domain.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("task.CreateTask: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()))

	return s.buildView(ctx, created)
}
