package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/utakatalp/fixture-generator/internal/league"
	"github.com/utakatalp/fixture-generator/internal/metrics"
	"github.com/utakatalp/fixture-generator/internal/store"
)

const maxBodyBytes = 1 << 20

// Handler serves the tournament API over a Store.
type Handler struct {
	store   *store.Store
	metrics *metrics.Recorder
	logger  *logrus.Logger
}

// NewHandler wires a Handler. metrics may be nil.
func NewHandler(s *store.Store, rec *metrics.Recorder, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{store: s, metrics: rec, logger: logger}
}

type tournamentRequest struct {
	Count *int     `json:"count,omitempty"`
	Teams []string `json:"teams"`
}

type scheduleResponse struct {
	Teams     []string       `json:"teams"`
	FirstLeg  []league.Round `json:"firstLeg"`
	SecondLeg []league.Round `json:"secondLeg"`
}

type resultRequest struct {
	Result    string `json:"result,omitempty"`
	Home      string `json:"home,omitempty"`
	Away      string `json:"away,omitempty"`
	HomeGoals *int   `json:"homeGoals,omitempty"`
	AwayGoals *int   `json:"awayGoals,omitempty"`
}

type standingsResponse struct {
	Standings []standingView `json:"standings"`
}

type standingView struct {
	Rank         int    `json:"rank"`
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	Points       int    `json:"points"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r.Context(), h.logger))
}

// CreateTournament starts a new tournament and returns its schedule.
func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context(), h.logger)

	var req tournamentRequest
	if err := decodeBody(r, &req); err != nil {
		h.badBody(w, r, err, logger)
		return
	}
	if req.Count != nil && *req.Count != len(req.Teams) {
		h.metrics.RecordRejected("team_count_mismatch")
		writeError(w, r, http.StatusUnprocessableEntity,
			fmt.Sprintf("please enter exactly %d team names", *req.Count), logger)
		return
	}

	teams, rounds, err := h.store.InitFullSeason(req.Teams)
	if err != nil {
		h.reject(w, r, err, logger)
		return
	}
	h.metrics.RecordSeason()
	logger.WithField("teams", len(teams)).Info("tournament created")
	writeJSON(w, http.StatusCreated, newScheduleResponse(teams, rounds), logger)
}

// DeleteTournament drops the current tournament.
func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteAll()
	w.WriteHeader(http.StatusNoContent)
}

// Fixtures returns the schedule split into legs.
func (h *Handler) Fixtures(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context(), h.logger)

	teams, rounds, err := h.store.GetSchedule()
	if err != nil {
		writeError(w, r, statusFor(err), err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, newScheduleResponse(teams, rounds), logger)
}

// RecordResult applies one result and returns the updated standings.
func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context(), h.logger)

	var req resultRequest
	if err := decodeBody(r, &req); err != nil {
		h.badBody(w, r, err, logger)
		return
	}
	result, err := req.matchResult()
	if err != nil {
		h.reject(w, r, err, logger)
		return
	}

	if err := h.store.UpdateTeams(result); err != nil {
		h.reject(w, r, err, logger)
		return
	}
	h.metrics.RecordResult(result)
	logger.WithField("result", result.String()).Info("result recorded")

	h.writeStandings(w, r, logger)
}

// Results lists accepted results in arrival order.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context(), h.logger)
	results, err := h.store.Results()
	if err != nil {
		writeError(w, r, statusFor(err), err.Error(), logger)
		return
	}
	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = res.String()
	}
	writeJSON(w, http.StatusOK, map[string][]string{"results": lines}, logger)
}

// Standings returns the current ranked table.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	h.writeStandings(w, r, loggerFromContext(r.Context(), h.logger))
}

func (h *Handler) writeStandings(w http.ResponseWriter, r *http.Request, logger logrus.FieldLogger) {
	table, err := h.store.GetTable()
	if err != nil {
		writeError(w, r, statusFor(err), err.Error(), logger)
		return
	}
	resp := standingsResponse{Standings: make([]standingView, len(table))}
	for i, s := range table {
		resp.Standings[i] = standingView{
			Rank:         s.Rank,
			Team:         s.Team.Name,
			Played:       s.Team.Played,
			Wins:         s.Team.Wins,
			Draws:        s.Team.Draws,
			Losses:       s.Team.Losses,
			GoalsFor:     s.Team.GoalsFor,
			GoalsAgainst: s.Team.GoalsAgainst,
			GoalDiff:     s.Team.GoalDiff(),
			Points:       s.Team.Points,
		}
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error, logger logrus.FieldLogger) {
	status := statusFor(err)
	h.metrics.RecordRejected(reasonFor(err))
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error("request failed")
	} else {
		logger.WithError(err).Warn("input rejected")
	}
	writeError(w, r, status, err.Error(), logger)
}

func (h *Handler) badBody(w http.ResponseWriter, r *http.Request, err error, logger logrus.FieldLogger) {
	h.metrics.RecordRejected(reasonBadBody)
	logger.WithError(err).Warn("request body rejected")
	writeError(w, r, http.StatusBadRequest, err.Error(), logger)
}

func (req resultRequest) matchResult() (league.MatchResult, error) {
	if strings.TrimSpace(req.Result) != "" {
		return league.ParseResult(req.Result)
	}
	if req.HomeGoals == nil || req.AwayGoals == nil {
		return league.MatchResult{}, &league.ScoreError{Input: "", Reason: "homeGoals and awayGoals are required"}
	}
	return league.MatchResult{
		Home:      strings.TrimSpace(req.Home),
		Away:      strings.TrimSpace(req.Away),
		HomeGoals: *req.HomeGoals,
		AwayGoals: *req.AwayGoals,
	}, nil
}

func newScheduleResponse(teams []string, rounds []league.Round) scheduleResponse {
	resp := scheduleResponse{
		Teams:     teams,
		FirstLeg:  []league.Round{},
		SecondLeg: []league.Round{},
	}
	for _, rnd := range rounds {
		if rnd.Leg == league.SecondLeg {
			resp.SecondLeg = append(resp.SecondLeg, rnd)
		} else {
			resp.FirstLeg = append(resp.FirstLeg, rnd)
		}
	}
	return resp
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
