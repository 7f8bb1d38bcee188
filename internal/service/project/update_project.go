package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// UpdateProject applies a partial update to a project. Only the owner may
// update; anyone else gets ErrForbidden.
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load project and check ownership. Existence is checked before
	// ownership so a missing project is 404, not 403.
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.UpdateProject get: %w", err)
	}
	if project.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	// Step 3: Apply update
	updated, err := s.projects.Update(ctx, id, input.toParams())
	if err != nil {
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("project_id", id.String()))

	return updated, nil
}
