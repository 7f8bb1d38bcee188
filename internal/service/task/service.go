// Package task implements task creation, patching, and comment handling.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

// taskRepo defines the task repository interface needed by this service.
type taskRepo interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	Patch(ctx context.Context, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	AppendComment(ctx context.Context, id uuid.UUID, comment domain.Comment) (*domain.Task, error)
	RemoveComment(ctx context.Context, id uuid.UUID, commentID uuid.UUID) (*domain.Task, error)
}

// projectRepo defines the project repository interface needed by this service.
type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error)
}

// Service implements task operations.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	projects projectRepo
	users    userRepo
}

// NewService creates a new task service instance.
func NewService(
	logger *slog.Logger,
	tasks taskRepo,
	projects projectRepo,
	users userRepo,
) *Service {
	return &Service{
		log:      logger.With("service", "task"),
		tasks:    tasks,
		projects: projects,
		users:    users,
	}
}
