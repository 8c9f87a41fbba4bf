package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/focusflow/focusflow-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, title, description, completed, priority, owner_id, created_at`

// Create inserts a new task row.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (id, title, description, completed, priority, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		nullString(task.Description),
		task.Completed,
		string(task.Priority),
		ownerValue(task.Owner),
		task.CreatedAt,
	)
	return err
}

// GetByID retrieves a task by its ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// List retrieves every task, newest first.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`
	return r.queryTasks(ctx, query)
}

// ListByOwner retrieves all tasks owned by the given user, newest first.
func (r *TaskRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, userID)
}

// Update overwrites the mutable columns of a task row. The write is a
// single atomic statement; concurrent updates resolve last-write-wins.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, completed = ?, priority = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		task.Title,
		nullString(task.Description),
		task.Completed,
		string(task.Priority),
		task.ID,
	)
	return err
}

// Delete removes a task row.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*model.Task, error) {
	var (
		task        model.Task
		description sql.NullString
		priority    string
		owner       sql.NullInt64
	)

	err := row.Scan(&task.ID, &task.Title, &description, &task.Completed, &priority, &owner, &task.CreatedAt)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	task.Priority = model.Priority(priority)
	if owner.Valid {
		task.Owner = model.OwnedBy(owner.Int64)
	}
	return &task, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func ownerValue(o model.Owner) sql.NullInt64 {
	return sql.NullInt64{Int64: o.UserID, Valid: o.Valid}
}
