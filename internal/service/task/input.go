package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

const maxTitleLen = 200

// CreateTaskInput holds parameters for creating a task. Status and Priority
// default to todo/medium when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   uuid.UUID
	AssigneeID  *uuid.UUID
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
}

// Validate validates the create input. Title is trimmed by the caller.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "projectId", Message: "required"})
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PatchTaskInput holds the partial field set for a task patch. nil means
// "leave unchanged"; Description set to "" clears it; the Clear flags drop
// the assignee or due date entirely.
type PatchTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority

	AssigneeID    *uuid.UUID
	ClearAssignee bool

	DueDate      *time.Time
	ClearDueDate bool
}

// Validate validates the patch input. An empty patch is valid: it still
// increments the task's update counter.
func (i PatchTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toParams converts the input into repository update params.
func (i PatchTaskInput) toParams() domain.TaskUpdateParams {
	return domain.TaskUpdateParams{
		Title:         i.Title,
		Description:   i.Description,
		Status:        i.Status,
		Priority:      i.Priority,
		AssigneeID:    i.AssigneeID,
		ClearAssignee: i.ClearAssignee,
		DueDate:       i.DueDate,
		ClearDueDate:  i.ClearDueDate,
	}
}

// AddCommentInput holds parameters for adding a comment to a task.
type AddCommentInput struct {
	Text string
}

// Validate validates the comment input.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > 2000 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
