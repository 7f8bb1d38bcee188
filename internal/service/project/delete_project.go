package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// DeleteProject removes a project and all of its tasks. Only the owner may
// delete. Both deletions run in one transaction so a failure never leaves
// orphaned tasks or a half-deleted project.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 1: Load project and check ownership
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("project.DeleteProject get: %w", err)
	}
	if project.OwnerID != callerID {
		return domain.ErrForbidden
	}

	// Step 2: Delete tasks and project atomically
	var deletedTasks int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.tasks.DeleteByProject(ctx, id)
		if err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		deletedTasks = n

		if err := s.projects.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("project.DeleteProject: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", id.String()),
		slog.Int("deleted_tasks", deletedTasks))

	return nil
}
