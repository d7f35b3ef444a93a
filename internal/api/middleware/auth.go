package middleware

import (
	"crypto/subtle"
	"net/http"
)

// SecretAuth creates a middleware that validates the shared API secret
// presented in the key query parameter, matching the legacy contract.
func SecretAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Query().Get("key")

			// Constant-time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"Invalid API key"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
