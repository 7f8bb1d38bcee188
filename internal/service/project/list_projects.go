package project

import (
	"context"
	"fmt"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// ListProjects returns the caller's projects, newest first, with the owner
// denormalized into each entry.
func (s *Service) ListProjects(ctx context.Context) ([]ProjectView, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("project.ListProjects get owner: %w", err)
	}

	projects, err := s.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("project.ListProjects: %w", err)
	}

	ref := owner.Ref()
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{Project: p, Owner: &ref})
	}
	return views, nil
}
