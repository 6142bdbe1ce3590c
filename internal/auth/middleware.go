package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// contextKey is a private type for context values set by this package.
type contextKey string

// ownerContextKey holds the authenticated owner's email.
const ownerContextKey contextKey = "owner_email"

// Middleware returns an http middleware that requires a valid bearer token
// and stores the resolved owner email in the request context.
func Middleware(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if header == "" || !strings.HasPrefix(header, prefix) {
				writeAuthError(w, ErrMissingAuthHeader)
				return
			}

			email, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				log.Debug().Str("path", r.URL.Path).Msg("bearer token verification failed")
				writeAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ownerContextKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the authenticated owner's email, if any.
func OwnerFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ownerContextKey).(string)
	return email, ok && email != ""
}

// writeAuthError writes a 401 response in the API's error envelope.
func writeAuthError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": err.Error()})
}
