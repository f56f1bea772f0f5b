package middleware

import (
	"net/http"
	"strings"
)

var (
	corsAllowedHeaders = strings.Join([]string{
		"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization",
	}, ", ")
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
)

// CORS allows browser clients on any origin to call the API and answers
// preflight requests directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowedMethods)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
