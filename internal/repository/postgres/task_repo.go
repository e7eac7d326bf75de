package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"happenly/internal/domain"
)

type taskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) domain.TaskRepository {
	return &taskRepository{
		DB: db,
	}
}

const taskColumns = `id, event_id, title, description, due_date, assigned_to, status, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }) (*domain.Task, error) {
	t := &domain.Task{}
	var descNull sql.NullString
	err := row.Scan(&t.ID, &t.EventID, &t.Title, &descNull, &t.DueDate, &t.AssignedTo, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		t.Description = &descNull.String
	}
	return t, nil
}

func (r *taskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `
		INSERT INTO tasks (event_id, title, description, due_date, assigned_to, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		t.EventID, t.Title, t.Description, t.DueDate, t.AssignedTo, t.Status, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE event_id = $1 ORDER BY due_date ASC`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}
	if upd.AssignedTo != nil {
		add("assigned_to", *upd.AssignedTo)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, taskColumns)
	t, err := scanTask(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepository) ListRemindersDueOn(ctx context.Context, date string) ([]*domain.TaskReminder, error) {
	query := `
		SELECT t.title, t.due_date, t.assigned_to, e.title, u.email
		FROM tasks t
		JOIN events e ON e.id = t.event_id
		JOIN users u ON u.id = e.owner_id
		WHERE t.due_date = $1 AND t.status <> $2
		ORDER BY u.email, e.title, t.title
	`
	rows, err := r.DB.QueryContext(ctx, query, date, domain.TaskCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reminders := make([]*domain.TaskReminder, 0)
	for rows.Next() {
		rem := &domain.TaskReminder{}
		if err := rows.Scan(&rem.TaskTitle, &rem.DueDate, &rem.AssignedTo, &rem.EventTitle, &rem.OwnerEmail); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}
