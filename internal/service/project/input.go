package project

import (
	"strings"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

const maxNameLen = 200

// CreateProjectInput holds parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// Validate validates the create input. Name is trimmed by the caller.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds partial-update parameters for a project.
// nil means "leave unchanged"; Description set to "" clears it.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// Validate validates the update input.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toParams converts the input into repository update params.
func (i UpdateProjectInput) toParams() domain.ProjectUpdateParams {
	params := domain.ProjectUpdateParams{Description: i.Description}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		params.Name = &name
	}
	return params
}
