package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORS returns middleware that answers cross-origin requests for the
// configured origins. Disabled config, an empty origin list, or an
// unlisted Origin header all leave the response untouched. Preflight
// OPTIONS requests are terminated here and never reach the routes.
func CORS(cfg *CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || len(cfg.Origins) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")

			if slices.Contains(cfg.Origins, origin) {
				headers := w.Header()
				headers.Set("Access-Control-Allow-Origin", origin)
				headers.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				headers.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
				headers.Add("Vary", "Origin")

				if cfg.AllowCredentials {
					headers.Set("Access-Control-Allow-Credentials", "true")
				}

				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
