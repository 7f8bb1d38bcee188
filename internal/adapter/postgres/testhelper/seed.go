package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with unique email and username.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates a project owned by the given user.
// Returns a filled domain.Project.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:          uuid.New(),
		Name:        "Test Project " + suffix,
		Description: "Seeded project " + suffix,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, name, description, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.Name, project.Description, project.OwnerID, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// SeedTask creates a task in the given project with status todo and priority
// medium. Returns a filled domain.Task.
func SeedTask(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Task {
	t.Helper()
	return SeedTaskWith(t, pool, domain.Task{ProjectID: projectID})
}

// SeedTaskWith creates a task from the given template, filling in ID, title,
// status, priority, comments, and timestamps when unset.
func SeedTaskWith(t *testing.T, pool *pgxpool.Pool, task domain.Task) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Title == "" {
		task.Title = "Test Task " + suffix
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if task.Comments == nil {
		task.Comments = []domain.Comment{}
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}

	commentsJSON, err := json.Marshal(task.Comments)
	if err != nil {
		t.Fatalf("testhelper: SeedTaskWith marshal comments: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO tasks (id, title, description, project_id, assignee_id, status, priority,
		                    due_date, updates_count, comments, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		task.ID, task.Title, task.Description, task.ProjectID, task.AssigneeID,
		string(task.Status), string(task.Priority), task.DueDate, task.UpdatesCount,
		commentsJSON, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTaskWith insert task: %v", err)
	}

	return task
}
