package project

import "github.com/taskboard/taskboard-backend/internal/domain"

// ProjectView is a project with its owner denormalized for responses.
type ProjectView struct {
	Project *domain.Project
	Owner   *domain.UserRef
}
