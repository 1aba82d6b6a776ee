package model

import "time"

// DefaultListLimit is the page size used when a list request omits limit.
const DefaultListLimit = 50

type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTodo carries the fields accepted on creation. ID and timestamps are
// assigned by storage.
type NewTodo struct {
	Title       string
	Description *string
	Completed   bool
}

// Optional is a field that may be absent from an update. Set reports whether
// the caller supplied the field at all, independently of its value.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// TodoPatch describes an in-place modification. Description distinguishes
// absent (Set=false), explicit null (Set=true, Value=nil) and a value.
type TodoPatch struct {
	Title       Optional[string]
	Description Optional[*string]
	Completed   Optional[bool]
}

func (p TodoPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Completed.Set
}

type TodoListParams struct {
	Limit  int
	Offset int
}
