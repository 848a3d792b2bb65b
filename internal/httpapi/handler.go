package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwellapp/streak-service/internal/auth"
	"github.com/inkwellapp/streak-service/internal/envconfig"
	"github.com/inkwellapp/streak-service/internal/journal"
	"github.com/inkwellapp/streak-service/internal/server"
	"github.com/inkwellapp/streak-service/internal/streak"
)

// errorResponse is the canonical error envelope returned by Inkwell APIs.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusFor(code string) int {
	switch code {
	case "not_found":
		return http.StatusNotFound
	case "unauthorized":
		return http.StatusUnauthorized
	case "bad_request":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, code, message string) {
	server.WriteJSON(w, statusFor(code), errorResponse{Code: code, Message: message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, journal.ErrInvalidJournalType), errors.Is(err, journal.ErrInvalidEntryDate):
		writeError(w, "bad_request", err.Error())
	case errors.Is(err, journal.ErrBadgeNotFound):
		writeError(w, "not_found", err.Error())
	case errors.Is(err, journal.ErrMissingUserID):
		writeError(w, "unauthorized", err.Error())
	default:
		writeError(w, "internal", "streak service error")
	}
}

func userID(r *http.Request) (string, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user.UserID == "" {
		return "", false
	}
	return user.UserID, true
}

// RegisterRoutes registers all streak service routes.
func RegisterRoutes(r chi.Router, service journal.Service) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/entries", recordEntry(service))
		r.Get("/streaks", getStreaks(service))
		r.Post("/streaks/{journalType}/recalculate", recalculateStreak(service))
		r.Get("/milestones/{journalType}", getMilestones(service))
		r.Post("/badges/{badgeID}/celebrate", celebrateBadge(service))
	})
}

func recordEntry(service journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, "unauthorized", "authentication required")
			return
		}

		var input journal.EntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, "bad_request", "invalid JSON body")
			return
		}
		if err := envconfig.Validate(input); err != nil {
			writeError(w, "bad_request", "journal_type and date are required")
			return
		}

		result, err := service.RecordEntry(r.Context(), uid, input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		server.WriteJSON(w, http.StatusCreated, result)
	}
}

func getStreaks(service journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, "unauthorized", "authentication required")
			return
		}

		states, err := service.GetStreaks(r.Context(), uid)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		server.WriteJSON(w, http.StatusOK, map[string]any{"streaks": states})
	}
}

func getMilestones(service journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, "unauthorized", "authentication required")
			return
		}

		journalType := streak.JournalType(chi.URLParam(r, "journalType"))
		view, err := service.GetMilestones(r.Context(), uid, journalType)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		server.WriteJSON(w, http.StatusOK, view)
	}
}

func celebrateBadge(service journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, "unauthorized", "authentication required")
			return
		}

		badgeID := chi.URLParam(r, "badgeID")
		if err := service.CelebrateBadge(r.Context(), uid, badgeID); err != nil {
			writeServiceError(w, err)
			return
		}

		server.WriteJSON(w, http.StatusOK, map[string]string{"status": "celebrated", "badge_id": badgeID})
	}
}

func recalculateStreak(service journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, "unauthorized", "authentication required")
			return
		}

		journalType := streak.JournalType(chi.URLParam(r, "journalType"))
		result, err := service.RecalculateStreak(r.Context(), uid, journalType)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		server.WriteJSON(w, http.StatusOK, result)
	}
}
