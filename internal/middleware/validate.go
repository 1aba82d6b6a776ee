package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
	"github.com/jaekwang-park/todo-rest-api/internal/validation"
)

var errNotObject = errors.New("body is not a single JSON object")

var invalidBody = []validation.FieldError{{Path: "body", Message: "must be a valid JSON object"}}

// RequireID accepts only positive integer {id} path values.
func RequireID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, res := validation.ParseID(r.PathValue("id"))
		if !res.Valid {
			response.ValidationFailed(w, res.Errors)
			return
		}
		next.ServeHTTP(w, r.WithContext(SetTodoID(r.Context(), id)))
	})
}

// ValidateBody decodes the request body as a JSON object and checks it
// against schema. An empty body is treated as {}.
func ValidateBody(schema validation.Schema) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := decodeObject(r.Body)
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					response.PayloadTooLarge(w, maxErr.Limit)
					return
				}
				response.ValidationFailed(w, invalidBody)
				return
			}

			if res := schema.Validate(body); !res.Valid {
				response.ValidationFailed(w, res.Errors)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetBody(r.Context(), body)))
		})
	}
}

// ValidateQuery checks limit and offset and stores the resulting page.
func ValidateQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, res := validation.ListQuery(r.URL.Query())
		if !res.Valid {
			response.ValidationFailed(w, res.Errors)
			return
		}
		next.ServeHTTP(w, r.WithContext(SetListParams(r.Context(), params)))
	})
}

func decodeObject(body io.Reader) (map[string]any, error) {
	if body == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errNotObject
	}
	return obj, nil
}
