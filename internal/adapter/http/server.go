// Package adapthttp implements the HTTP presentation adapter. It forwards
// user intents to the application services and owns no persistence logic.
package adapthttp

import (
	"net/http"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	credentials *app.CredentialService
	ledger      *app.LedgerService
	sessions    *app.SessionService
	progress    *app.ProgressService

	notifier   domain.Notifier
	notifyTo   string
	oidcConfig OIDCConfig
}

// New creates a Server wired to the given application services. notifyTo is
// the phone number goal notifications are sent to; an empty value disables
// notification sends.
func New(cs *app.CredentialService, ls *app.LedgerService, ss *app.SessionService, ps *app.ProgressService, n domain.Notifier, notifyTo string, oidc OIDCConfig) *Server {
	return &Server{
		credentials: cs,
		ledger:      ls,
		sessions:    ss,
		progress:    ps,
		notifier:    n,
		notifyTo:    notifyTo,
		oidcConfig:  oidc,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	api.HandleFunc("/config", s.handleConfig)

	protected := http.NewServeMux()
	protected.HandleFunc("/entries", s.handleEntries)
	protected.HandleFunc("/entries/", s.handleEntryByID)
	protected.HandleFunc("/progress/daily", s.handleProgressDaily)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	return root
}
