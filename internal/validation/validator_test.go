package validation_test

import (
	"reflect"
	"testing"

	"github.com/jaekwang-park/todo-rest-api/internal/validation"
)

func TestValidate_Rules(t *testing.T) {
	rs := validation.RuleSet{
		Fields: []validation.Field{
			{Name: "name", Rule: validation.Rule{Required: true, Type: validation.TypeString}},
			{Name: "note", Rule: validation.Rule{Type: validation.TypeString, Nullable: true}},
			{Name: "done", Rule: validation.Rule{Type: validation.TypeBoolean}},
		},
	}

	tests := []struct {
		name  string
		input map[string]any
		want  []validation.FieldError
	}{
		{
			name:  "all valid",
			input: map[string]any{"name": "a", "note": "b", "done": true},
		},
		{
			name:  "optional fields omitted",
			input: map[string]any{"name": "a"},
		},
		{
			name:  "nullable accepts null",
			input: map[string]any{"name": "a", "note": nil},
		},
		{
			name:  "required missing",
			input: map[string]any{},
			want:  []validation.FieldError{{Path: "name", Message: "is required"}},
		},
		{
			name:  "null on non-nullable field",
			input: map[string]any{"name": "a", "done": nil},
			want:  []validation.FieldError{{Path: "done", Message: "must be a boolean"}},
		},
		{
			name:  "type mismatch",
			input: map[string]any{"name": 42.0, "done": "yes"},
			want: []validation.FieldError{
				{Path: "name", Message: "must be a string"},
				{Path: "done", Message: "must be a boolean"},
			},
		},
		{
			name:  "unknown keys allowed by default",
			input: map[string]any{"name": "a", "extra": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.Validate(rs, tt.input)

			if got.Valid != (len(tt.want) == 0) {
				t.Errorf("Valid = %v, want %v (errors: %+v)", got.Valid, len(tt.want) == 0, got.Errors)
			}
			if !reflect.DeepEqual(got.Errors, tt.want) {
				t.Errorf("Errors = %+v, want %+v", got.Errors, tt.want)
			}
		})
	}
}

func TestValidate_DisallowUnknownSorted(t *testing.T) {
	rs := validation.RuleSet{
		Fields:          []validation.Field{{Name: "name", Rule: validation.Rule{Type: validation.TypeString}}},
		DisallowUnknown: true,
	}

	got := validation.Validate(rs, map[string]any{"zeta": 1, "alpha": 2, "name": "ok"})

	want := []validation.FieldError{
		{Path: "alpha", Message: "is not allowed"},
		{Path: "zeta", Message: "is not allowed"},
	}
	if got.Valid {
		t.Fatal("expected invalid result")
	}
	if !reflect.DeepEqual(got.Errors, want) {
		t.Errorf("Errors = %+v, want %+v", got.Errors, want)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{"title": 1.0, "other": "x"}

	validation.CreateTodo.Validate(input)

	want := map[string]any{"title": 1.0, "other": "x"}
	if !reflect.DeepEqual(input, want) {
		t.Errorf("input mutated: %+v", input)
	}
}
