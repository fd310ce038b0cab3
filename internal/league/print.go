package league

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSchedule renders rounds as plain text, one section per leg.
func WriteSchedule(w io.Writer, rounds []Round) error {
	bw := bufio.NewWriter(w)
	var leg Leg
	for _, rnd := range rounds {
		if rnd.Leg != leg {
			if leg != 0 {
				fmt.Fprintln(bw)
			}
			leg = rnd.Leg
			fmt.Fprintf(bw, "%s Fixtures:\n", leg)
		}
		fmt.Fprintf(bw, "Round %d:\n", rnd.Number)
		for _, f := range rnd.Fixtures {
			fmt.Fprintf(bw, "%s vs %s\n", f.Home, f.Away)
		}
	}
	return bw.Flush()
}

// WriteTable renders the leaderboard, one "<rank>. <name> - Points: <p>, GD: <gd>" line per team.
func WriteTable(w io.Writer, standings []Standing) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Leaderboard:")
	for _, s := range standings {
		fmt.Fprintf(bw, "%d. %s - Points: %d, GD: %d\n",
			s.Rank, s.Team.Name, s.Team.Points, s.Team.GoalDiff())
	}
	return bw.Flush()
}
