package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

// TaskView is a task with its assignee and comment authors denormalized.
// References to deleted users surface as nil, never as an error.
type TaskView struct {
	Task     *domain.Task
	Assignee *domain.UserRef
	Comments []CommentView
}

// CommentView is a comment with its author denormalized.
type CommentView struct {
	Comment domain.Comment
	Author  *domain.UserRef
}

// buildViews resolves assignees and comment authors for a set of tasks in a
// single batched user lookup.
func (s *Service) buildViews(ctx context.Context, tasks []*domain.Task) ([]TaskView, error) {
	idSet := make(map[uuid.UUID]struct{})
	for _, t := range tasks {
		if t.AssigneeID != nil {
			idSet[*t.AssigneeID] = struct{}{}
		}
		for _, c := range t.Comments {
			idSet[c.AuthorID] = struct{}{}
		}
	}

	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve user refs: %w", err)
	}

	ref := func(id uuid.UUID) *domain.UserRef {
		if u, ok := users[id]; ok {
			r := u.Ref()
			return &r
		}
		return nil
	}

	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := TaskView{Task: t, Comments: make([]CommentView, 0, len(t.Comments))}
		if t.AssigneeID != nil {
			view.Assignee = ref(*t.AssigneeID)
		}
		for _, c := range t.Comments {
			view.Comments = append(view.Comments, CommentView{Comment: c, Author: ref(c.AuthorID)})
		}
		views = append(views, view)
	}
	return views, nil
}

// buildView resolves references for a single task.
func (s *Service) buildView(ctx context.Context, t *domain.Task) (*TaskView, error) {
	views, err := s.buildViews(ctx, []*domain.Task{t})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
