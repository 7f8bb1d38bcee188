// Package task implements the Task repository using PostgreSQL.
// All queries use raw SQL (no sqlc) since the comments column is JSONB
// requiring custom marshal/unmarshal logic; the dynamic Patch SET clause is
// built with squirrel.
package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/taskboard/taskboard-backend/internal/adapter/postgres"
	"github.com/taskboard/taskboard-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL. Comments live in a
// JSONB array on the task row, so every comment mutation is a single-row
// atomic update.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const taskColumns = `id, title, description, project_id, assignee_id, status, priority,
	due_date, updates_count, comments, created_at, updated_at`

const createSQL = `
INSERT INTO tasks (id, title, description, project_id, assignee_id, status, priority,
                   due_date, comments, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + taskColumns

const getByIDSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1`

const listByProjectSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE project_id = $1
ORDER BY created_at DESC`

const appendCommentSQL = `
UPDATE tasks
SET comments = comments || $2::jsonb, updated_at = now()
WHERE id = $1
RETURNING ` + taskColumns

const removeCommentSQL = `
UPDATE tasks
SET comments = COALESCE(
        (SELECT jsonb_agg(c) FROM jsonb_array_elements(comments) AS c
         WHERE c->>'id' <> $2),
        '[]'::jsonb),
    updated_at = now()
WHERE id = $1
RETURNING ` + taskColumns

const deleteByProjectSQL = `
DELETE FROM tasks
WHERE project_id = $1`

const countByProjectSQL = `
SELECT count(*) FROM tasks WHERE project_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	task, err := scanTask(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "task", id)
	}

	return task, nil
}

// ListByProject returns all tasks of a project, newest first.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks by project: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}

	return tasks, nil
}

// CountByProject returns the number of tasks in a project.
func (r *Repo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByProjectSQL, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks by project: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new task and returns the persisted domain.Task.
// A missing project surfaces as domain.ErrNotFound via the FK constraint.
func (r *Repo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	comments := task.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("task %s: marshal comments: %w", task.ID, err)
	}

	row := querier.QueryRow(ctx, createSQL,
		task.ID,
		task.Title,
		task.Description,
		task.ProjectID,
		task.AssigneeID,
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		commentsJSON,
		now,
		now,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, mapError(err, "task", task.ID)
	}

	return created, nil
}

// Patch applies a partial field update in a single UPDATE that also
// increments updates_count. The two writes cannot be observed separately:
// either both land or neither does. An empty params still bumps the counter.
// Returns the updated task, or domain.ErrNotFound if it does not exist.
func (r *Repo) Patch(ctx context.Context, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("tasks").
		Set("updates_count", sq.Expr("updates_count + 1")).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + taskColumns)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Status != nil {
		b = b.Set("status", string(*params.Status))
	}
	if params.Priority != nil {
		b = b.Set("priority", string(*params.Priority))
	}
	if params.ClearAssignee {
		b = b.Set("assignee_id", nil)
	} else if params.AssigneeID != nil {
		b = b.Set("assignee_id", *params.AssigneeID)
	}
	if params.ClearDueDate {
		b = b.Set("due_date", nil)
	} else if params.DueDate != nil {
		b = b.Set("due_date", *params.DueDate)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("task %s: build patch: %w", id, err)
	}

	updated, err := scanTask(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, mapError(err, "task", id)
	}

	return updated, nil
}

// AppendComment atomically appends a comment to the task's comments array.
// Does not touch updates_count. Returns the updated task.
func (r *Repo) AppendComment(ctx context.Context, id uuid.UUID, comment domain.Comment) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	commentJSON, err := json.Marshal([]domain.Comment{comment})
	if err != nil {
		return nil, fmt.Errorf("task %s: marshal comment: %w", id, err)
	}

	updated, err := scanTask(querier.QueryRow(ctx, appendCommentSQL, id, commentJSON))
	if err != nil {
		return nil, mapError(err, "task", id)
	}

	return updated, nil
}

// RemoveComment atomically removes the comment with the given ID from the
// task's comments array. Idempotent: removing an absent comment succeeds
// and leaves the array unchanged. Does not touch updates_count.
func (r *Repo) RemoveComment(ctx context.Context, id uuid.UUID, commentID uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTask(querier.QueryRow(ctx, removeCommentSQL, id, commentID.String()))
	if err != nil {
		return nil, mapError(err, "task", id)
	}

	return updated, nil
}

// DeleteByProject removes all tasks of a project in one statement.
// Returns the count of deleted tasks. Called inside the project-delete
// transaction.
func (r *Repo) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByProjectSQL, projectID)
	if err != nil {
		return 0, mapError(err, "task", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanTask scans a single task row from pgx.Row or pgx.Rows.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		task         domain.Task
		status       string
		priority     string
		commentsJSON []byte
	)

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.ProjectID,
		&task.AssigneeID,
		&status,
		&priority,
		&task.DueDate,
		&task.UpdatesCount,
		&commentsJSON,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)

	if err := json.Unmarshal(commentsJSON, &task.Comments); err != nil {
		return nil, fmt.Errorf("task %s: unmarshal comments: %w", task.ID, err)
	}
	if task.Comments == nil {
		task.Comments = []domain.Comment{}
	}

	return &task, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
