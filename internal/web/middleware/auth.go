package middleware

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
)

type contextKey string

const clientContextKey contextKey = "client"

// RequireAPIKey is middleware that requires the configured key either as a
// bearer token or in the X-API-Key header. An empty key disables the check.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		expected := sha256.Sum256([]byte(key))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := presentedKey(r)
			got := sha256.Sum256([]byte(presented))
			if presented == "" || subtle.ConstantTimeCompare(got[:], expected[:]) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer realm="mrzname"`)
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			ctx := context.WithValue(r.Context(), clientContextKey, clientID(expected))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientFromContext returns the short fingerprint of the key the request
// authenticated with, or "" for unauthenticated requests.
func GetClientFromContext(ctx context.Context) string {
	client, _ := ctx.Value(clientContextKey).(string)
	return client
}

func presentedKey(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(r.Header.Get("X-API-Key"))
}

func clientID(sum [sha256.Size]byte) string {
	return hex.EncodeToString(sum[:4])
}
