// Package project implements project CRUD, task listing, and summaries.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

// projectRepo defines the project repository interface needed by this service.
type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// taskRepo defines the task repository interface needed by this service.
type taskRepo interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int, error)
}

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error)
}

// txManager runs a function inside a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	tasks    taskRepo
	users    userRepo
	tx       txManager
}

// NewService creates a new project service instance.
func NewService(
	logger *slog.Logger,
	projects projectRepo,
	tasks taskRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		tasks:    tasks,
		users:    users,
		tx:       tx,
	}
}
