package validation

import (
	"net/url"
	"strconv"

	"github.com/jaekwang-park/todo-rest-api/internal/model"
)

var (
	titleRule       = Rule{Type: TypeString, NotEmpty: true}
	descriptionRule = Rule{Type: TypeString, Nullable: true}
	completedRule   = Rule{Type: TypeBoolean}
)

func required(r Rule) Rule {
	r.Required = true
	return r
}

// CreateTodo requires a title; description and completed are optional.
var CreateTodo = RuleSet{
	Fields: []Field{
		{Name: "title", Rule: required(titleRule)},
		{Name: "description", Rule: descriptionRule},
		{Name: "completed", Rule: completedRule},
	},
	DisallowUnknown: true,
}

// ReplaceTodo requires the full resource shape. Description may be null but
// must be present.
var ReplaceTodo = RuleSet{
	Fields: []Field{
		{Name: "title", Rule: required(titleRule)},
		{Name: "description", Rule: required(descriptionRule)},
		{Name: "completed", Rule: required(completedRule)},
	},
	DisallowUnknown: true,
}

// PatchTodo accepts any non-empty subset of the updatable fields.
var PatchTodo Schema = patchSchema{
	RuleSet: RuleSet{
		Fields: []Field{
			{Name: "title", Rule: titleRule},
			{Name: "description", Rule: descriptionRule},
			{Name: "completed", Rule: completedRule},
		},
		DisallowUnknown: true,
	},
}

type patchSchema struct {
	RuleSet
}

func (s patchSchema) Validate(input map[string]any) Result {
	res := Validate(s.RuleSet, input)
	if len(input) == 0 {
		res.add("body", "must include at least one updatable field")
	}
	return res
}

// ListQuery validates limit and offset query parameters and returns the
// resulting page with defaults applied. Other parameters are ignored.
func ListQuery(q url.Values) (model.TodoListParams, Result) {
	params := model.TodoListParams{Limit: model.DefaultListLimit}
	res := Result{Valid: true}

	if q.Has("limit") {
		n, err := strconv.Atoi(q.Get("limit"))
		if err != nil || n <= 0 {
			res.add("limit", "must be a positive integer")
		} else {
			params.Limit = n
		}
	}

	if q.Has("offset") {
		n, err := strconv.Atoi(q.Get("offset"))
		if err != nil || n < 0 {
			res.add("offset", "must be a non-negative integer")
		} else {
			params.Offset = n
		}
	}

	return params, res
}

// ParseID parses a path id. Only positive base-10 integers are accepted.
func ParseID(raw string) (int64, Result) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, Result{Errors: []FieldError{{Path: "id", Message: "must be a positive integer"}}}
	}
	return id, Result{Valid: true}
}
