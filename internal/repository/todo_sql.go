package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jaekwang-park/todo-rest-api/internal/model"
)

const todoColumns = "id, title, description, completed, created_at, updated_at"

// SQLTodoRepository stores todos in any database/sql driver known to sqlx.
// Queries are written with ? placeholders and rebound for the driver.
type SQLTodoRepository struct {
	db *sqlx.DB
}

func NewSQLTodo(db *sqlx.DB) *SQLTodoRepository {
	return &SQLTodoRepository{db: db}
}

type todoRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Completed   bool      `db:"completed"`
	CreatedAt   timestamp `db:"created_at"`
	UpdatedAt   timestamp `db:"updated_at"`
}

func (r todoRow) toModel() model.Todo {
	return model.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

func (r *SQLTodoRepository) Create(ctx context.Context, todo model.NewTodo) (model.Todo, error) {
	query := r.db.Rebind(`
		INSERT INTO todos (title, description, completed)
		VALUES (?, ?, ?)
		RETURNING ` + todoColumns)

	var row todoRow
	if err := r.db.GetContext(ctx, &row, query, todo.Title, todo.Description, todo.Completed); err != nil {
		return model.Todo{}, fmt.Errorf("failed to insert todo: %w", err)
	}
	return row.toModel(), nil
}

func (r *SQLTodoRepository) GetByID(ctx context.Context, id int64) (model.Todo, error) {
	query := r.db.Rebind(`SELECT ` + todoColumns + ` FROM todos WHERE id = ?`)

	var row todoRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return model.Todo{}, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return row.toModel(), nil
}

func (r *SQLTodoRepository) List(ctx context.Context, params model.TodoListParams) ([]model.Todo, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = model.DefaultListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.Rebind(`
		SELECT ` + todoColumns + `
		FROM todos
		ORDER BY id DESC
		LIMIT ? OFFSET ?`)

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	todos := make([]model.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, row.toModel())
	}
	return todos, nil
}

// Update applies only the fields set in patch and refreshes updated_at in a
// single statement. An empty patch reads the current row instead.
func (r *SQLTodoRepository) Update(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	if patch.Title.Set {
		sets = append(sets, "title = ?")
		args = append(args, patch.Title.Value)
	}
	if patch.Description.Set {
		sets = append(sets, "description = ?")
		args = append(args, patch.Description.Value)
	}
	if patch.Completed.Set {
		sets = append(sets, "completed = ?")
		args = append(args, patch.Completed.Value)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := r.db.Rebind(`
		UPDATE todos
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = ?
		RETURNING ` + todoColumns)

	var row todoRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return model.Todo{}, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return row.toModel(), nil
}

func (r *SQLTodoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`DELETE FROM todos WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// ensure compile-time interface compliance
var _ TodoRepository = (*SQLTodoRepository)(nil)
