package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"teenpatti_tracker/internal/models"
)

// CheckJWTMiddleware validates the Authorization header of requests that change data.
// GET, HEAD and OPTIONS requests pass through, as does everything when the issuer is disabled.
func CheckJWTMiddleware(issuer *Issuer) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if !issuer.Enabled() || isReadOnly(r.Method) {
				h.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeErrorResponse(w, "missing auth header", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeErrorResponse(w, "invalid auth header", http.StatusUnauthorized)
				return
			}

			if _, err := issuer.ParseToken(parts[1]); err != nil {
				writeErrorResponse(w, "invalid token", http.StatusUnauthorized)
				return
			}

			h.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func isReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// writeErrorResponse writes a JSON-formatted error response to the HTTP response writer.
func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
