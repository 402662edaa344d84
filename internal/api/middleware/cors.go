package middleware

import (
	"net/http"
	"strings"
)

// Headers and methods browsers may use against the API.
var (
	corsAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}
	corsAllowedMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}
)

// CORS sets permissive cross-origin headers on every response and answers
// preflight OPTIONS requests with an empty 200 without calling next.
func CORS(next http.Handler) http.Handler {
	allowHeaders := strings.Join(corsAllowedHeaders, ", ")
	allowMethods := strings.Join(corsAllowedMethods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		h.Set("Access-Control-Allow-Methods", allowMethods)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
