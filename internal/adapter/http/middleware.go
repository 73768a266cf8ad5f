package adapthttp

import (
	"context"
	"errors"
	"net/http"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

type contextKey string

const accountContextKey contextKey = "account"

// authMiddleware validates the session cookie and puts the account on the
// request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		acct, err := s.sessions.ValidateSession(r.Context(), cookie.Value)
		if errors.Is(err, app.ErrSessionNotFound) || errors.Is(err, app.ErrSessionExpired) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, acct)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountFromContext(r *http.Request) *domain.Account {
	acct, _ := r.Context().Value(accountContextKey).(*domain.Account)
	return acct
}
