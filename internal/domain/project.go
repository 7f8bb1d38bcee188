package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a user-owned container of tasks. Exactly one owner; only the
// owner may mutate or delete it. Deleting a project cascades to its tasks.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectUpdateParams holds partial-update fields for a project.
// nil means "leave unchanged"; for Description a pointer to "" clears it.
type ProjectUpdateParams struct {
	Name        *string
	Description *string
}
