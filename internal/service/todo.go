package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-rest-api/internal/model"
	"github.com/jaekwang-park/todo-rest-api/internal/repository"
)

type CreateTodoInput struct {
	Title       string
	Description *string
	Completed   bool
}

// ReplaceTodoInput is a full overwrite of the mutable fields. A nil
// Description stores null.
type ReplaceTodoInput struct {
	Title       string
	Description *string
	Completed   bool
}

type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (model.Todo, error) {
	if input.Title == "" {
		return model.Todo{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, model.NewTodo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return created, nil
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (model.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context, params model.TodoListParams) ([]model.Todo, error) {
	todos, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Replace(ctx context.Context, id int64, input ReplaceTodoInput) (model.Todo, error) {
	if input.Title == "" {
		return model.Todo{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}

	return s.update(ctx, id, model.TodoPatch{
		Title:       model.Some(input.Title),
		Description: model.Some(input.Description),
		Completed:   model.Some(input.Completed),
	})
}

// Patch applies the fields present in patch. An empty patch is rejected.
func (s *TodoService) Patch(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, error) {
	if patch.IsEmpty() {
		return model.Todo{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if patch.Title.Set && patch.Title.Value == "" {
		return model.Todo{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}

	return s.update(ctx, id, patch)
}

func (s *TodoService) update(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
