package league

import "fmt"

// Leg tells which half of a double round-robin a fixture belongs to.
type Leg int

const (
	FirstLeg Leg = iota + 1
	SecondLeg
)

func (l Leg) String() string {
	switch l {
	case FirstLeg:
		return "First Leg"
	case SecondLeg:
		return "Second Leg"
	default:
		return fmt.Sprintf("Leg(%d)", int(l))
	}
}

// Team represents a club in the league.
type Team struct {
	Name         string `json:"name"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	Points       int    `json:"points"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

// GoalDiff is goals scored minus goals conceded.
func (t Team) GoalDiff() int {
	return t.GoalsFor - t.GoalsAgainst
}

// Fixture is one scheduled match. Round numbering restarts at 1 in each leg.
type Fixture struct {
	Home  string `json:"home"`
	Away  string `json:"away"`
	Leg   Leg    `json:"leg"`
	Round int    `json:"round"`
}

// Round groups the fixtures played on the same matchday.
type Round struct {
	Leg      Leg       `json:"leg"`
	Number   int       `json:"number"`
	Fixtures []Fixture `json:"fixtures"`
}

// MatchResult is a reported score between two roster teams.
type MatchResult struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals int    `json:"homeGoals"`
	AwayGoals int    `json:"awayGoals"`
}

// String renders the result the way ParseResult reads it, e.g. "Ajax 2-1 PSV".
func (r MatchResult) String() string {
	return fmt.Sprintf("%s %d-%d %s", r.Home, r.HomeGoals, r.AwayGoals, r.Away)
}

// Standing holds the standings info for one team.
type Standing struct {
	Rank int  `json:"rank"`
	Team Team `json:"team"`
}
