// Package validation evaluates declarative field rules against decoded JSON
// request bodies and query strings.
package validation

import (
	"fmt"
	"sort"
)

type Type string

const (
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
)

// Rule constrains a single input field. A zero Type skips the type check.
type Rule struct {
	Required bool
	Type     Type
	Nullable bool
	// NotEmpty rejects "" for string fields.
	NotEmpty bool
}

type Field struct {
	Name string
	Rule Rule
}

// RuleSet is an ordered list of field rules. Fields are checked and reported
// in declaration order. Keys with no rule are accepted unless DisallowUnknown
// is set.
type RuleSet struct {
	Fields          []Field
	DisallowUnknown bool
}

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type Result struct {
	Valid  bool
	Errors []FieldError
}

func (r *Result) add(path, message string) {
	r.Errors = append(r.Errors, FieldError{Path: path, Message: message})
	r.Valid = false
}

// Schema validates a decoded JSON object.
type Schema interface {
	Validate(input map[string]any) Result
}

func (rs RuleSet) Validate(input map[string]any) Result {
	return Validate(rs, input)
}

// Validate checks input against rs. Errors accumulate across fields; within a
// field a missing required value stops further checks.
func Validate(rs RuleSet, input map[string]any) Result {
	res := Result{Valid: true}

	declared := make(map[string]struct{}, len(rs.Fields))
	for _, f := range rs.Fields {
		declared[f.Name] = struct{}{}

		value, present := input[f.Name]
		if !present {
			if f.Rule.Required {
				res.add(f.Name, "is required")
			}
			continue
		}

		if msg, ok := checkValue(f.Rule, value); !ok {
			res.add(f.Name, msg)
		}
	}

	if rs.DisallowUnknown {
		var unknown []string
		for key := range input {
			if _, ok := declared[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			res.add(key, "is not allowed")
		}
	}

	return res
}

func checkValue(rule Rule, value any) (string, bool) {
	if value == nil {
		if rule.Nullable || rule.Type == "" {
			return "", true
		}
		return typeMessage(rule.Type), false
	}

	switch rule.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return typeMessage(rule.Type), false
		}
		if rule.NotEmpty && s == "" {
			return "must not be empty", false
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return typeMessage(rule.Type), false
		}
	}
	return "", true
}

func typeMessage(t Type) string {
	return fmt.Sprintf("must be a %s", t)
}
