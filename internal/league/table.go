package league

import (
	"math"
	"sort"
)

// Tracker accumulates results for one tournament and ranks its roster.
// It is not safe for concurrent use; see store.Store.
type Tracker struct {
	order []string         // fold keys in roster order
	teams map[string]*Team // keyed by fold key
}

// NewTracker builds an empty table for the given roster. The roster rules are
// the same as for GenerateSchedule.
func NewTracker(names []string) (*Tracker, error) {
	roster, err := validateRoster(names)
	if err != nil {
		return nil, err
	}
	t := &Tracker{
		order: make([]string, len(roster)),
		teams: make(map[string]*Team, len(roster)),
	}
	for i, name := range roster {
		key := foldName(name)
		t.order[i] = key
		t.teams[key] = &Team{Name: name}
	}
	return t, nil
}

// RecordResult applies one result to both teams. Nothing changes unless the
// whole result is valid.
func (t *Tracker) RecordResult(r MatchResult) error {
	if r.HomeGoals < 0 || r.AwayGoals < 0 {
		return &ScoreError{Input: r.String(), Reason: "goals must be non-negative"}
	}
	home, ok := t.teams[foldName(r.Home)]
	if !ok {
		return &TeamError{Name: r.Home, Err: ErrUnknownTeam}
	}
	away, ok := t.teams[foldName(r.Away)]
	if !ok {
		return &TeamError{Name: r.Away, Err: ErrUnknownTeam}
	}
	if home == away {
		return &TeamError{Name: r.Home, Err: ErrSameTeam}
	}
	if !home.canAdd(r.HomeGoals, r.AwayGoals) || !away.canAdd(r.AwayGoals, r.HomeGoals) {
		return &ScoreError{Input: r.String(), Reason: "goal totals out of range"}
	}

	home.apply(r.HomeGoals, r.AwayGoals)
	away.apply(r.AwayGoals, r.HomeGoals)
	return nil
}

// canAdd reports whether the goal totals can absorb another match without
// wrapping.
func (t *Team) canAdd(goalsFor, goalsAgainst int) bool {
	return t.GoalsFor <= math.MaxInt-goalsFor && t.GoalsAgainst <= math.MaxInt-goalsAgainst
}

func (t *Team) apply(goalsFor, goalsAgainst int) {
	t.Played++
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		t.Wins++
		t.Points += 3
	case goalsFor < goalsAgainst:
		t.Losses++
	default:
		t.Draws++
		t.Points++
	}
}

// Rank orders the roster by points, then goal difference. Teams level on
// both keep their roster order. Ranks are positional, 1..N.
func (t *Tracker) Rank() []Standing {
	standings := make([]Standing, len(t.order))
	for i, key := range t.order {
		standings[i] = Standing{Team: *t.teams[key]}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i].Team, standings[j].Team
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.GoalDiff() > b.GoalDiff()
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Team looks a team up case-insensitively.
func (t *Tracker) Team(name string) (Team, bool) {
	team, ok := t.teams[foldName(name)]
	if !ok {
		return Team{}, false
	}
	return *team, true
}

// Teams returns copies of every team in roster order.
func (t *Tracker) Teams() []Team {
	teams := make([]Team, len(t.order))
	for i, key := range t.order {
		teams[i] = *t.teams[key]
	}
	return teams
}
