package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task belongs to exactly one project and optionally to one assignee.
// Comments are an owned, ordered sub-collection embedded in the task document:
// they are never read or mutated outside their parent task.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	ProjectID   uuid.UUID
	AssigneeID  *uuid.UUID
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	// UpdatesCount increments by exactly one on every accepted field patch.
	// Comment mutations never touch it.
	UpdatesCount int
	Comments     []Comment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOverdue reports whether the task's due date is strictly before now and
// the task is not done. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusDone
}

// Comment is an embedded discussion entry on a task. Insertion order is
// chronological; comments have no lifecycle outside their parent task.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskUpdateParams holds the partial field set for a task patch. A nil
// pointer means "leave unchanged". Description accepts a pointer to "" as an
// explicit clear. AssigneeID and DueDate use a second Clear flag because
// their zero value is a meaningful absence.
type TaskUpdateParams struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority

	AssigneeID    *uuid.UUID
	ClearAssignee bool

	DueDate      *time.Time
	ClearDueDate bool
}

// IsEmpty reports whether the patch carries no field changes. An empty patch
// is still applied: it bumps UpdatesCount without touching any field.
func (p TaskUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AssigneeID == nil && !p.ClearAssignee &&
		p.DueDate == nil && !p.ClearDueDate
}
