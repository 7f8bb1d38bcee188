package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// ListProjectTasks returns all tasks of an existing project, newest first,
// with assignees and comment authors denormalized. A missing project is
// ErrNotFound; a project without tasks is an empty list.
func (s *Service) ListProjectTasks(ctx context.Context, projectID uuid.UUID) ([]TaskView, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: Project must exist
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("task.ListProjectTasks: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("task.ListProjectTasks get project: %w", err)
	}

	// Step 2: Load and denormalize
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("task.ListProjectTasks: %w", err)
	}

	return s.buildViews(ctx, tasks)
}
