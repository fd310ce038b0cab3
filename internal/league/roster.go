package league

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldName returns the lookup key for a team name. Display always keeps the
// name as entered.
func foldName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

// validateRoster checks size, blank names and case-insensitive duplicates, in
// that order, and returns the trimmed names.
func validateRoster(names []string) ([]string, error) {
	if len(names) < 2 || len(names)%2 != 0 {
		return nil, &RosterError{Size: len(names)}
	}

	roster := make([]string, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, &TeamError{Name: name, Err: ErrEmptyName}
		}
		roster[i] = trimmed
	}

	seen := make(map[string]struct{}, len(roster))
	for _, name := range roster {
		key := foldName(name)
		if _, dup := seen[key]; dup {
			return nil, &TeamError{Name: name, Err: ErrDuplicateTeam}
		}
		seen[key] = struct{}{}
	}
	return roster, nil
}
