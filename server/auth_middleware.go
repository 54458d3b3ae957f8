package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-profile-server/internal/errors"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyUserID stores the authenticated user ID
const ContextKeyUserID ContextKey = "user_id"

// TokenHeader carries the session token on guarded requests.
const TokenHeader = "x-auth-token"

// RequireAuth resolves the session token to a user id and stores it on the request
// context. The token is read from x-auth-token, falling back to a Bearer
// Authorization header. Requests without a valid token never reach next.
func (s *Server) RequireAuth() Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, err := s.auth.Authenticate(tokenFromRequest(r))
			if err != nil {
				if errors.Is(err, errors.ErrNoToken) {
					writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
					return
				}
				writeMessage(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			next(w, r.WithContext(ctx))
		}
	}
}

// UserIDFromContext returns the id stored by RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(string)
	return id, ok && id != ""
}

func tokenFromRequest(r *http.Request) string {
	if tok := strings.TrimSpace(r.Header.Get(TokenHeader)); tok != "" {
		return tok
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
