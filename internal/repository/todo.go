package repository

import (
	"context"

	"github.com/jaekwang-park/todo-rest-api/internal/model"
)

// TodoRepository is the storage contract for todos. Missing rows surface as
// errors wrapping sql.ErrNoRows, except Delete which reports them as false.
type TodoRepository interface {
	Create(ctx context.Context, todo model.NewTodo) (model.Todo, error)
	GetByID(ctx context.Context, id int64) (model.Todo, error)
	List(ctx context.Context, params model.TodoListParams) ([]model.Todo, error)
	Update(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
