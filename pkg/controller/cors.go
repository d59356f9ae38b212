package controller

import (
	"net/http"
	"slices"
)

const (
	allowHeaders = "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Request-Id"
	allowMethods = "GET, POST, OPTIONS"
)

// WithCORS returns a middleware that sets CORS headers for requests coming from
// one of allowedOrigins and short-circuits OPTIONS preflight requests with
// 204 No Content. A "*" entry allows any origin. Preflights from other origins
// are rejected with 403; their simple requests are served without CORS headers.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	anyOrigin := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := anyOrigin || (origin != "" && slices.Contains(allowedOrigins, origin))

			if allowed {
				if anyOrigin {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
				w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			}

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				if !allowed {
					w.WriteHeader(http.StatusForbidden)

					return
				}
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
