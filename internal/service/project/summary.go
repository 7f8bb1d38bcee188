package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// GetSummary computes the four-facet summary of a project: total tasks,
// a fixed-shape status histogram, overdue count, and the top assignees.
// All facets derive from one snapshot of the project's tasks, with "now"
// evaluated once, so they are mutually consistent.
func (s *Service) GetSummary(ctx context.Context, projectID uuid.UUID) (*domain.ProjectSummary, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: Project must exist
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("project.GetSummary get project: %w", err)
	}

	// Step 2: One read of the task set
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.GetSummary list tasks: %w", err)
	}

	// Step 3: Reduce
	summary := domain.BuildProjectSummary(tasks, time.Now())

	// Step 4: Join assignee display fields
	ids := make([]uuid.UUID, 0, len(summary.TopAssignees))
	for _, a := range summary.TopAssignees {
		ids = append(ids, a.UserID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("project.GetSummary get assignees: %w", err)
	}
	for i := range summary.TopAssignees {
		if u, ok := users[summary.TopAssignees[i].UserID]; ok {
			summary.TopAssignees[i].Username = u.Username
			summary.TopAssignees[i].Email = u.Email
		}
	}

	return &summary, nil
}
