package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
	"github.com/jaekwang-park/todo-rest-api/internal/middleware"
	"github.com/jaekwang-park/todo-rest-api/internal/model"
	"github.com/jaekwang-park/todo-rest-api/internal/repository"
	"github.com/jaekwang-park/todo-rest-api/internal/service"
	"github.com/jaekwang-park/todo-rest-api/internal/validation"
)

const msgTodoNotFound = "Todo not found"

// TodoHandler serves /api/todos. Bodies, query strings and path ids are
// validated by middleware before these methods run.
type TodoHandler struct {
	svc    *service.TodoService
	logger *slog.Logger
}

func NewTodoHandler(svc *service.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, logger: logger}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.List(r.Context(), middleware.GetListParams(r))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	response.WriteData(w, http.StatusOK, todos)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	body := middleware.GetBody(r)

	todo, err := h.svc.Create(r.Context(), service.CreateTodoInput{
		Title:       stringField(body, "title"),
		Description: nullableString(body, "description"),
		Completed:   boolField(body, "completed"),
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	response.WriteData(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	response.WriteData(w, http.StatusOK, todo)
}

func (h *TodoHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	body := middleware.GetBody(r)

	todo, err := h.svc.Replace(r.Context(), id, service.ReplaceTodoInput{
		Title:       stringField(body, "title"),
		Description: nullableString(body, "description"),
		Completed:   boolField(body, "completed"),
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	response.WriteData(w, http.StatusOK, todo)
}

func (h *TodoHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.svc.Patch(r.Context(), id, patchFromBody(middleware.GetBody(r)))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	response.WriteData(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// todoID prefers the id stored by RequireID and parses the path otherwise.
func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	if id, ok := middleware.GetTodoID(r); ok {
		return id, true
	}
	id, res := validation.ParseID(r.PathValue("id"))
	if !res.Valid {
		response.ValidationFailed(w, res.Errors)
		return 0, false
	}
	return id, true
}

// patchFromBody keeps key presence: an explicit null description clears it,
// an absent one leaves it untouched.
func patchFromBody(body map[string]any) model.TodoPatch {
	var patch model.TodoPatch
	if _, ok := body["title"]; ok {
		patch.Title = model.Some(stringField(body, "title"))
	}
	if _, ok := body["description"]; ok {
		patch.Description = model.Some(nullableString(body, "description"))
	}
	if _, ok := body["completed"]; ok {
		patch.Completed = model.Some(boolField(body, "completed"))
	}
	return patch
}

func stringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

func nullableString(body map[string]any, key string) *string {
	s, ok := body[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func boolField(body map[string]any, key string) bool {
	b, _ := body[key].(bool)
	return b
}

func (h *TodoHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(w, msgTodoNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		response.ValidationFailed(w, []validation.FieldError{{Path: "body", Message: err.Error()}})
	default:
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"sqlstate", repository.SQLState(err),
		)
		response.InternalError(w)
	}
}
