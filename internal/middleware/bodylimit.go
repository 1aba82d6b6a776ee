package middleware

import (
	"net/http"

	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
)

// BodyLimit rejects requests whose declared Content-Length exceeds maxBytes
// and caps the readable body for the rest. Reads past the cap fail with
// *http.MaxBytesError, which ValidateBody reports as 413.
func BodyLimit(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasBody(r.Method) && r.ContentLength > maxBytes {
				response.PayloadTooLarge(w, maxBytes)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
