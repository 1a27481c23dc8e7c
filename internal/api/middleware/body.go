package middleware

import "net/http"

// DefaultMaxBodyBytes is the request body limit used by the API router
const DefaultMaxBodyBytes = 1 << 16

// BodyLimit caps every request body at n bytes. Reads past the limit fail
// with *http.MaxBytesError, which handlers report as an invalid request.
func BodyLimit(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
