// Command seeder populates the database with sample users, projects, tasks,
// and comments for local development. It wipes existing data first, so it
// must never run against a production database.
//
// Usage:
//
//	seeder
//
// Requires DATABASE_DSN environment variable to be set. Migrations are
// applied automatically before seeding.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-backend/internal/adapter/postgres/project"
	"github.com/taskboard/taskboard-backend/internal/adapter/postgres/task"
	"github.com/taskboard/taskboard-backend/internal/adapter/postgres/user"
	"github.com/taskboard/taskboard-backend/internal/app"
	"github.com/taskboard/taskboard-backend/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := app.Migrate(ctx, dsn); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		log.Fatalf("seed data: %v", err)
	}
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	users := user.New(pool)
	projects := project.New(pool)
	tasks := task.New(pool)

	// Wipe existing data; refresh tokens and tasks go via FK order.
	for _, table := range []string{"refresh_tokens", "tasks", "projects", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	fmt.Println("Cleared existing data")

	ali, err := createUser(ctx, users, "ali", "ali@example.com", "password123")
	if err != nil {
		return err
	}
	alina, err := createUser(ctx, users, "alina", "alina@example.com", "password123")
	if err != nil {
		return err
	}
	fmt.Println("Created sample users")

	now := time.Now()
	redesign, err := projects.Create(ctx, &domain.Project{
		ID:          uuid.New(),
		Name:        "Website Redesign",
		Description: "Complete redesign of company website",
		OwnerID:     ali.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	mobile, err := projects.Create(ctx, &domain.Project{
		ID:          uuid.New(),
		Name:        "Mobile App Development",
		Description: "Build iOS and Android applications",
		OwnerID:     ali.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	fmt.Println("Created sample projects")

	samples := []*domain.Task{
		{
			Title:       "Design homepage mockup",
			Description: "Create Figma designs for the new homepage",
			ProjectID:   redesign.ID,
			AssigneeID:  &ali.ID,
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			DueDate:     date(2026, time.March, 1),
			Comments: []domain.Comment{
				{ID: uuid.New(), Text: "Started working on this task", AuthorID: ali.ID, CreatedAt: now},
			},
		},
		{
			Title:       "Implement authentication",
			Description: "Add JWT-based authentication system",
			ProjectID:   redesign.ID,
			AssigneeID:  &alina.ID,
			Status:      domain.TaskStatusTodo,
			Priority:    domain.TaskPriorityHigh,
			DueDate:     date(2026, time.February, 15),
		},
		{
			Title:       "Setup database schema",
			Description: "Design and implement the storage schema",
			ProjectID:   redesign.ID,
			AssigneeID:  &ali.ID,
			Status:      domain.TaskStatusDone,
			Priority:    domain.TaskPriorityMedium,
			DueDate:     date(2026, time.January, 20),
		},
		{
			Title:       "Create wireframes",
			Description: "Design wireframes for all app screens",
			ProjectID:   mobile.ID,
			AssigneeID:  &alina.ID,
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityMedium,
			DueDate:     date(2026, time.February, 28),
		},
		{
			// Past due date, stays overdue until done.
			Title:       "Write documentation",
			Description: "Complete API documentation",
			ProjectID:   redesign.ID,
			AssigneeID:  &ali.ID,
			Status:      domain.TaskStatusTodo,
			Priority:    domain.TaskPriorityLow,
			DueDate:     date(2026, time.January, 1),
		},
	}

	var first *domain.Task
	for _, sample := range samples {
		sample.ID = uuid.New()
		sample.CreatedAt = now
		sample.UpdatedAt = now
		if sample.Comments == nil {
			sample.Comments = []domain.Comment{}
		}
		created, err := tasks.Create(ctx, sample)
		if err != nil {
			return fmt.Errorf("create task %q: %w", sample.Title, err)
		}
		if first == nil {
			first = created
		}
	}
	fmt.Println("Created sample tasks")

	_, err = tasks.AppendComment(ctx, first.ID, domain.Comment{
		ID:        uuid.New(),
		Text:      "Looking great! Keep up the good work.",
		AuthorID:  alina.ID,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	fmt.Println("Added sample comments")

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("\nSample credentials:")
	fmt.Println("User 1: ali@example.com / password123")
	fmt.Println("User 2: alina@example.com / password123")
	fmt.Printf("\nProject 1 ID: %s\n", redesign.ID)
	fmt.Printf("Project 2 ID: %s\n", mobile.ID)

	return nil
}

func createUser(ctx context.Context, users *user.Repo, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	return u, nil
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
