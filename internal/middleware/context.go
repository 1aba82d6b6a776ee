package middleware

import (
	"context"
	"net/http"

	"github.com/jaekwang-park/todo-rest-api/internal/model"
)

type contextKey string

const (
	todoIDKey     contextKey = "todo_id"
	bodyKey       contextKey = "body"
	listParamsKey contextKey = "list_params"
)

func SetTodoID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, todoIDKey, id)
}

// GetTodoID returns the path id accepted by RequireID.
func GetTodoID(r *http.Request) (int64, bool) {
	v, ok := r.Context().Value(todoIDKey).(int64)
	return v, ok
}

func SetBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey, body)
}

// GetBody returns the JSON object accepted by ValidateBody, or nil.
func GetBody(r *http.Request) map[string]any {
	v, _ := r.Context().Value(bodyKey).(map[string]any)
	return v
}

func SetListParams(ctx context.Context, params model.TodoListParams) context.Context {
	return context.WithValue(ctx, listParamsKey, params)
}

// GetListParams returns the page accepted by ValidateQuery, falling back to
// the default page.
func GetListParams(r *http.Request) model.TodoListParams {
	v, ok := r.Context().Value(listParamsKey).(model.TodoListParams)
	if !ok {
		return model.TodoListParams{Limit: model.DefaultListLimit}
	}
	return v
}
