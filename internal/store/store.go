package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/utakatalp/fixture-generator/internal/league"
)

// ErrNoTournament is returned when results or tables are requested before a
// tournament has been started.
var ErrNoTournament = errors.New("no tournament in progress")

// Store keeps the current tournament in memory: its schedule and the table
// fed by reported results. It is safe for concurrent use; each recorded
// result is applied under the write lock so both teams change together.
type Store struct {
	mu      sync.RWMutex
	teams   []string
	rounds  []league.Round
	tracker *league.Tracker
	results []league.MatchResult
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{}
}

// InitFullSeason replaces the current tournament with a fresh one for the
// given roster and returns its trimmed team names and schedule. On error the
// previous tournament is left untouched.
func (s *Store) InitFullSeason(names []string) ([]string, []league.Round, error) {
	rounds, err := league.GenerateSchedule(names)
	if err != nil {
		return nil, nil, fmt.Errorf("generating schedule: %w", err)
	}
	tracker, err := league.NewTracker(names)
	if err != nil {
		return nil, nil, fmt.Errorf("building table: %w", err)
	}

	teams := make([]string, 0, len(names))
	for _, t := range tracker.Teams() {
		teams = append(teams, t.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = teams
	s.rounds = rounds
	s.tracker = tracker
	s.results = nil
	return append([]string(nil), teams...), copyRounds(rounds), nil
}

// UpdateTeams records one result against the current tournament.
func (s *Store) UpdateTeams(r league.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tracker == nil {
		return ErrNoTournament
	}
	if err := s.tracker.RecordResult(r); err != nil {
		return fmt.Errorf("recording %q: %w", r.String(), err)
	}
	s.results = append(s.results, r)
	return nil
}

// GetTable returns the current standings.
func (s *Store) GetTable() ([]league.Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tracker == nil {
		return nil, ErrNoTournament
	}
	return s.tracker.Rank(), nil
}

// GetSchedule returns copies of the roster and schedule of the current
// tournament, read under one lock.
func (s *Store) GetSchedule() ([]string, []league.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tracker == nil {
		return nil, nil, ErrNoTournament
	}
	return append([]string(nil), s.teams...), copyRounds(s.rounds), nil
}

// Results returns the accepted results in the order they were recorded.
func (s *Store) Results() ([]league.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tracker == nil {
		return nil, ErrNoTournament
	}
	return append([]league.MatchResult(nil), s.results...), nil
}

// DeleteAll drops the current tournament.
func (s *Store) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = nil
	s.rounds = nil
	s.tracker = nil
	s.results = nil
}

func copyRounds(rounds []league.Round) []league.Round {
	out := make([]league.Round, len(rounds))
	for i, rnd := range rounds {
		out[i] = league.Round{
			Leg:      rnd.Leg,
			Number:   rnd.Number,
			Fixtures: append([]league.Fixture(nil), rnd.Fixtures...),
		}
	}
	return out
}
