package league

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"
)

func newTracker(t *testing.T, names ...string) *Tracker {
	t.Helper()
	tr, err := NewTracker(names)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return tr
}

func rankedNames(standings []Standing) []string {
	out := make([]string, len(standings))
	for i, s := range standings {
		out[i] = s.Team.Name
	}
	return out
}

func TestRecordResultWin(t *testing.T) {
	tr := newTracker(t, "A", "B")
	if err := tr.RecordResult(MatchResult{Home: "A", Away: "B", HomeGoals: 2, AwayGoals: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := tr.Team("A")
	b, _ := tr.Team("B")
	if a.Points != 3 || a.GoalsFor != 2 || a.GoalsAgainst != 1 || a.Wins != 1 {
		t.Fatalf("unexpected winner stats: %+v", a)
	}
	if b.Points != 0 || b.GoalsFor != 1 || b.GoalsAgainst != 2 || b.Losses != 1 {
		t.Fatalf("unexpected loser stats: %+v", b)
	}
	if a.Played != 1 || b.Played != 1 {
		t.Fatalf("expected both played once, got %d and %d", a.Played, b.Played)
	}
}

func TestRecordResultOutcomes(t *testing.T) {
	tests := []struct {
		name                 string
		homeGoals, awayGoals int
		homePts, awayPts     int
	}{
		{name: "home win", homeGoals: 3, awayGoals: 0, homePts: 3, awayPts: 0},
		{name: "away win", homeGoals: 0, awayGoals: 1, homePts: 0, awayPts: 3},
		{name: "score draw", homeGoals: 1, awayGoals: 1, homePts: 1, awayPts: 1},
		{name: "goalless draw", homeGoals: 0, awayGoals: 0, homePts: 1, awayPts: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(t, "Home", "Away")
			err := tr.RecordResult(MatchResult{Home: "Home", Away: "Away", HomeGoals: tt.homeGoals, AwayGoals: tt.awayGoals})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			home, _ := tr.Team("Home")
			away, _ := tr.Team("Away")
			if home.Points != tt.homePts || away.Points != tt.awayPts {
				t.Fatalf("expected points %d/%d, got %d/%d", tt.homePts, tt.awayPts, home.Points, away.Points)
			}
			if home.GoalDiff() != tt.homeGoals-tt.awayGoals || away.GoalDiff() != tt.awayGoals-tt.homeGoals {
				t.Fatalf("unexpected goal difference %d/%d", home.GoalDiff(), away.GoalDiff())
			}
		})
	}
}

func TestRecordResultCaseInsensitiveLookup(t *testing.T) {
	tr := newTracker(t, "Ajax", "PSV")
	if err := tr.RecordResult(MatchResult{Home: "ajax", Away: "psv", HomeGoals: 1, AwayGoals: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ajax, ok := tr.Team("AJAX")
	if !ok {
		t.Fatalf("expected to find AJAX")
	}
	if ajax.Name != "Ajax" {
		t.Fatalf("expected display name Ajax, got %q", ajax.Name)
	}
	if ajax.Points != 3 {
		t.Fatalf("expected 3 points, got %d", ajax.Points)
	}
}

func TestRecordResultRejectsWithoutMutation(t *testing.T) {
	tests := []struct {
		name   string
		result MatchResult
		want   error
	}{
		{name: "unknown home", result: MatchResult{Home: "X", Away: "B", HomeGoals: 1}, want: ErrUnknownTeam},
		{name: "unknown away", result: MatchResult{Home: "A", Away: "X", HomeGoals: 1}, want: ErrUnknownTeam},
		{name: "negative home goals", result: MatchResult{Home: "A", Away: "B", HomeGoals: -1}, want: ErrMalformedScore},
		{name: "negative away goals", result: MatchResult{Home: "A", Away: "B", AwayGoals: -2}, want: ErrMalformedScore},
		{name: "same team", result: MatchResult{Home: "A", Away: "a", HomeGoals: 1}, want: ErrSameTeam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(t, "A", "B")
			before := tr.Teams()
			err := tr.RecordResult(tt.result)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if after := tr.Teams(); !reflect.DeepEqual(before, after) {
				t.Fatalf("state changed on error: %+v -> %+v", before, after)
			}
		})
	}
}

func TestRecordResultRejectsGoalTotalOverflow(t *testing.T) {
	tr := newTracker(t, "A", "B")
	huge, err := ParseResult("A " + strconv.Itoa(math.MaxInt) + "-0 B")
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	mustRecord(t, tr, huge)

	before := tr.Teams()
	for _, r := range []MatchResult{
		{Home: "A", Away: "B", HomeGoals: 1},
		{Home: "B", Away: "A", AwayGoals: 1},
	} {
		if err := tr.RecordResult(r); !errors.Is(err, ErrMalformedScore) {
			t.Fatalf("RecordResult(%v): expected ErrMalformedScore, got %v", r, err)
		}
	}
	if after := tr.Teams(); !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed on error: %+v -> %+v", before, after)
	}
	for _, team := range tr.Teams() {
		if team.GoalsFor < 0 || team.GoalsAgainst < 0 {
			t.Fatalf("expected non-negative goal totals, got %+v", team)
		}
	}

	mustRecord(t, tr, MatchResult{Home: "A", Away: "B"})
	if a, _ := tr.Team("A"); a.Played != 2 || a.GoalsFor != math.MaxInt {
		t.Fatalf("expected goalless draw to still apply, got %+v", a)
	}
}

func TestRankOrdersByPointsThenGoalDifference(t *testing.T) {
	tr := newTracker(t, "C", "B", "A", "D")
	results := []MatchResult{
		{Home: "A", Away: "C", HomeGoals: 2, AwayGoals: 1}, // A 3pts +1
		{Home: "B", Away: "D", HomeGoals: 0, AwayGoals: 0}, // B, D 1pt
		{Home: "B", Away: "D", HomeGoals: 3, AwayGoals: 3}, // B, D 2pts
		{Home: "B", Away: "C", HomeGoals: 1, AwayGoals: 0}, // B 5pts +1
	}
	for _, r := range results {
		if err := tr.RecordResult(r); err != nil {
			t.Fatalf("RecordResult(%v): %v", r, err)
		}
	}

	standings := tr.Rank()
	if got, want := rankedNames(standings), []string{"B", "A", "D", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, s := range standings {
		if s.Rank != i+1 {
			t.Fatalf("expected rank %d at position %d, got %d", i+1, i, s.Rank)
		}
	}
}

func TestRankGoalDifferenceBreaksPointsTie(t *testing.T) {
	tr := newTracker(t, "A", "B", "C", "D")
	// A: 3pts/+1, B: 3pts/0, C: 0pts
	mustRecord(t, tr, MatchResult{Home: "A", Away: "C", HomeGoals: 1, AwayGoals: 0})
	mustRecord(t, tr, MatchResult{Home: "B", Away: "D", HomeGoals: 2, AwayGoals: 1})
	mustRecord(t, tr, MatchResult{Home: "D", Away: "B", HomeGoals: 1, AwayGoals: 0})

	got := rankedNames(tr.Rank())
	if got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected A then B, got %v", got)
	}
	if again := rankedNames(tr.Rank()); !reflect.DeepEqual(got, again) {
		t.Fatalf("rank changed between calls: %v vs %v", got, again)
	}
}

func TestRankKeepsRosterOrderForFullTies(t *testing.T) {
	tr := newTracker(t, "Zulu", "Alpha", "Mike", "Bravo")
	if got, want := rankedNames(tr.Rank()), []string{"Zulu", "Alpha", "Mike", "Bravo"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	mustRecord(t, tr, MatchResult{Home: "Mike", Away: "Bravo", HomeGoals: 2, AwayGoals: 2})
	mustRecord(t, tr, MatchResult{Home: "Zulu", Away: "Alpha", HomeGoals: 2, AwayGoals: 2})
	if got, want := rankedNames(tr.Rank()), []string{"Zulu", "Alpha", "Mike", "Bravo"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankReturnsCopies(t *testing.T) {
	tr := newTracker(t, "A", "B")
	standings := tr.Rank()
	standings[0].Team.Points = 99

	a, _ := tr.Team("A")
	if a.Points != 0 {
		t.Fatalf("expected tracker to remain unchanged, got %d", a.Points)
	}
}

func TestNewTrackerValidatesRoster(t *testing.T) {
	if _, err := NewTracker([]string{"A", "B", "C"}); !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
	if _, err := NewTracker([]string{"A", "a"}); !errors.Is(err, ErrDuplicateTeam) {
		t.Fatalf("expected ErrDuplicateTeam, got %v", err)
	}
}

func TestTeamNotFound(t *testing.T) {
	tr := newTracker(t, "A", "B")
	if _, ok := tr.Team("missing"); ok {
		t.Fatalf("expected missing team to return false")
	}
}

func mustRecord(t *testing.T, tr *Tracker, r MatchResult) {
	t.Helper()
	if err := tr.RecordResult(r); err != nil {
		t.Fatalf("RecordResult(%v): %v", r, err)
	}
}
