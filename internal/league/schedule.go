package league

// GenerateSchedule returns a double round-robin schedule for the provided
// team names, grouped into rounds: N-1 first-leg rounds followed by N-1
// second-leg rounds with home and away reversed.
//
// It uses the circle method. Team 0 stays seated while the others rotate one
// place after every round; the rotation carries on through the second leg.
// The input slice is not modified.
func GenerateSchedule(names []string) ([]Round, error) {
	roster, err := validateRoster(names)
	if err != nil {
		return nil, err
	}
	n := len(roster)

	// seat[k] is the roster index sitting at position k of the circle.
	seat := make([]int, n)
	for i := range seat {
		seat[i] = i
	}

	rounds := make([]Round, 0, 2*(n-1))
	for _, leg := range []Leg{FirstLeg, SecondLeg} {
		for r := 1; r < n; r++ {
			round := Round{Leg: leg, Number: r, Fixtures: make([]Fixture, 0, n/2)}
			for i := 0; i < n/2; i++ {
				home := roster[seat[i]]
				away := roster[seat[n-1-i]]
				if leg == SecondLeg {
					home, away = away, home
				}
				round.Fixtures = append(round.Fixtures, Fixture{Home: home, Away: away, Leg: leg, Round: r})
			}
			rounds = append(rounds, round)

			// Rotate seats (except first)
			last := seat[n-1]
			copy(seat[2:], seat[1:n-1])
			seat[1] = last
		}
	}
	return rounds, nil
}

// GenerateFullSeason returns every fixture of the double round-robin in
// playing order. There are N*(N-1) of them.
func GenerateFullSeason(names []string) ([]Fixture, error) {
	rounds, err := GenerateSchedule(names)
	if err != nil {
		return nil, err
	}
	n := len(names)
	fixtures := make([]Fixture, 0, n*(n-1))
	for _, rnd := range rounds {
		fixtures = append(fixtures, rnd.Fixtures...)
	}
	return fixtures, nil
}
