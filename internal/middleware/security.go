package middleware

import "net/http"

var securityHeaders = []struct {
	name  string
	value string
}{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "no-referrer"},
	{"Permissions-Policy", "geolocation=()"},
}

// SecureHeaders sets baseline security headers. Values already present, or
// set later by a handler, take precedence.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, sh := range securityHeaders {
			if h.Get(sh.name) == "" {
				h.Set(sh.name, sh.value)
			}
		}
		next.ServeHTTP(w, r)
	})
}
