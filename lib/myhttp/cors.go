package myhttp

import (
	"net/http"
	"strings"
)

// WithCORS only lets the given origin call h from a browser. Preflight
// requests are answered directly.
func WithCORS(allowedOrigin string, methods []string, h http.HandlerFunc) http.HandlerFunc {
	allowedMethods := strings.Join(append(append([]string{}, methods...), http.MethodOptions), ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.WriteHeader(http.StatusOK)
			return
		}

		h(w, r)
	}
}
