package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"weightlog/internal/app"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	acct := accountFromContext(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.ledger.ListEntries(r.Context(), acct.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Date   string  `json:"date"`
			Weight float64 `json:"weight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		id, err := s.ledger.AddEntry(r.Context(), acct.ID, body.Date, body.Weight)
		if errors.Is(err, app.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		s.sendEntryNotification(r, body.Weight, acct.GoalWeight)
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleEntryByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/entries/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid entry id %q", idStr))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body struct {
			Date   string  `json:"date"`
			Weight float64 `json:"weight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		rows, err := s.ledger.UpdateEntry(r.Context(), id, body.Date, body.Weight)
		if errors.Is(err, app.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"updated": rows})

	case http.MethodDelete:
		if err := s.ledger.DeleteEntry(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// sendEntryNotification fires the goal/progress SMS after a successful add.
// Delivery is best effort: failures are logged and never surfaced.
func (s *Server) sendEntryNotification(r *http.Request, weight, goalWeight float64) {
	if s.notifier == nil || s.notifyTo == "" {
		return
	}

	var message string
	if weight == goalWeight {
		message = fmt.Sprintf("Congratulations! You've reached your goal weight of %g lbs.", goalWeight)
	} else {
		message = fmt.Sprintf("Weight added: %g lbs. Keep up the good work!", weight)
	}

	if err := s.notifier.Notify(r.Context(), s.notifyTo, message); err != nil {
		logrus.WithError(err).Warn("entry notification failed")
	}
}

func (s *Server) handleProgressDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	acct := accountFromContext(r)
	days := intQuery(r, "days", 30)

	points, err := s.progress.Daily(r.Context(), acct.ID, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":       days,
		"goalWeight": acct.GoalWeight,
		"items":      points,
	})
}
