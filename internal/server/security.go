package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to the observability
// endpoints.
type SecurityConfig struct {
	// EnableCORS adds CORS headers for cross-origin scrapes and dashboards.
	EnableCORS bool
	// AllowedOrigins lists origins permitted when EnableCORS is set.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods the endpoints accept.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used unless overridden.
// The endpoints are read-only, so only GET and OPTIONS are accepted.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware applies security headers, method filtering and CORS
// handling before delegating to next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			h.Set("Access-Control-Allow-Origin", strings.Join(config.AllowedOrigins, ", "))
			h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if !methodAllowed(config.AllowedMethods, r.Method) {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		next(w, r)
	}
}

// methodAllowed reports whether method appears in the allowed list.
func methodAllowed(allowed []string, method string) bool {
	for _, m := range allowed {
		if m == method {
			return true
		}
	}
	return false
}
