package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
	"github.com/taskboard/taskboard-backend/pkg/ctxutil"
)

// AddComment appends a comment to a task's embedded comment list. The author
// is always the authenticated caller. Returns the updated task.
func (s *Service) AddComment(ctx context.Context, taskID uuid.UUID, input AddCommentInput) (*TaskView, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: Validate input
	input.Text = strings.TrimSpace(input.Text)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Append to the embedded list
	comment := domain.Comment{
		ID:        uuid.New(),
		Text:      input.Text,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	updated, err := s.tasks.AppendComment(ctx, taskID, comment)
	if err != nil {
		return nil, fmt.Errorf("task.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("task_id", taskID.String()),
		slog.String("comment_id", comment.ID.String()))

	return s.buildView(ctx, updated)
}

// RemoveComment removes a comment from a task by comment ID. Removal is
// idempotent: an absent comment ID leaves the task unchanged and succeeds.
// There is no authorship check; any authenticated user may remove a comment.
func (s *Service) RemoveComment(ctx context.Context, taskID uuid.UUID, commentID uuid.UUID) (*TaskView, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.tasks.RemoveComment(ctx, taskID, commentID)
	if err != nil {
		return nil, fmt.Errorf("task.RemoveComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment removed",
		slog.String("task_id", taskID.String()),
		slog.String("comment_id", commentID.String()))

	return s.buildView(ctx, updated)
}
