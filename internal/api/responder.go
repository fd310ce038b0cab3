package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/utakatalp/fixture-generator/internal/league"
	"github.com/utakatalp/fixture-generator/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger logrus.FieldLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger logrus.FieldLogger) {
	body := map[string]string{"error": message}
	if reqID := RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNoTournament):
		return http.StatusNotFound
	case errors.Is(err, league.ErrMalformedScore):
		return http.StatusBadRequest
	case errors.Is(err, league.ErrInvalidRoster),
		errors.Is(err, league.ErrDuplicateTeam),
		errors.Is(err, league.ErrEmptyName),
		errors.Is(err, league.ErrUnknownTeam),
		errors.Is(err, league.ErrSameTeam):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// reasonBadBody labels request bodies that are not valid JSON for the route.
const reasonBadBody = "bad_body"

// reasonFor names a rejected input for metrics labels.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, store.ErrNoTournament):
		return "no_tournament"
	case errors.Is(err, league.ErrMalformedScore):
		return "malformed_score"
	case errors.Is(err, league.ErrInvalidRoster):
		return "invalid_roster"
	case errors.Is(err, league.ErrDuplicateTeam):
		return "duplicate_team"
	case errors.Is(err, league.ErrEmptyName):
		return "empty_name"
	case errors.Is(err, league.ErrUnknownTeam):
		return "unknown_team"
	case errors.Is(err, league.ErrSameTeam):
		return "same_team"
	default:
		return "other"
	}
}
