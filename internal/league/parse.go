package league

import (
	"strconv"
	"strings"
)

// ParseResult reads a result line of the form "<Team1> <g1>-<g2> <Team2>",
// e.g. "Ajax 2-1 PSV". Team names therefore cannot contain spaces here.
// Team names are not checked against any roster.
func ParseResult(line string) (MatchResult, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return MatchResult{}, &ScoreError{Input: line, Reason: "expected <Team1> <g1>-<g2> <Team2>"}
	}

	left, right, ok := strings.Cut(fields[1], "-")
	if !ok {
		return MatchResult{}, &ScoreError{Input: line, Reason: "score must look like 2-1"}
	}
	homeGoals, err := parseGoals(left)
	if err != nil {
		return MatchResult{}, &ScoreError{Input: line, Reason: err.Error()}
	}
	awayGoals, err := parseGoals(right)
	if err != nil {
		return MatchResult{}, &ScoreError{Input: line, Reason: err.Error()}
	}

	return MatchResult{
		Home:      fields[0],
		Away:      fields[2],
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}, nil
}

type goalsError string

func (e goalsError) Error() string { return string(e) }

func parseGoals(s string) (int, error) {
	if s == "" {
		return 0, goalsError("missing goal count")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, goalsError("goal count " + strconv.Quote(s) + " is not a non-negative integer")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, goalsError("goal count " + strconv.Quote(s) + " is out of range")
	}
	return n, nil
}
