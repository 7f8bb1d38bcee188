package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// PatchTask applies a partial update to a task. The accepted field set and
// the update-counter increment land in one atomic repository update; an
// empty patch still bumps the counter. Returns the updated task denormalized.
func (s *Service) PatchTask(ctx context.Context, id uuid.UUID, input PatchTaskInput) (*TaskView, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	// Normalize input before validation.
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		input.Title = &title
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Atomic apply + increment
	updated, err := s.tasks.Patch(ctx, id, input.toParams())
	if err != nil {
		return nil, fmt.Errorf("task.PatchTask: %w", err)
	}

	s.log.InfoContext(ctx, "task patched",
		slog.String("task_id", id.String()),
		slog.Int("updates_count", updated.UpdatesCount))

	return s.buildView(ctx, updated)
}
