package players

import (
	"slices"
	"strings"
)

// Scope selects which names a suggestion query draws from.
type Scope string

const (
	ScopeAll      Scope = "all"      // tracked or active names
	ScopeActive   Scope = "active"   // names in the roster
	ScopeExplicit Scope = "explicit" // names with an explicit color
)

// ParseScope converts a flag value into a Scope.
func ParseScope(s string) (Scope, bool) {
	switch sc := Scope(strings.ToLower(s)); sc {
	case ScopeAll, ScopeActive, ScopeExplicit:
		return sc, true
	}
	return "", false
}

// Suggest returns the names in scope that start with prefix, compared
// case-insensitively. The result is sorted and free of duplicates.
func (s *Store) Suggest(roster Roster, scope Scope, prefix string) []string {
	var sources [][]string

	switch scope {
	case ScopeActive:
		sources = append(sources, activeNames(roster))
	case ScopeExplicit:
		sources = append(sources, s.ExplicitNames())
	default:
		sources = append(sources, activeNames(roster), s.Names())
	}

	return FilterPrefix(prefix, sources...)
}

// FilterPrefix merges the given name lists, keeping names that start with
// prefix ignoring case.
func FilterPrefix(prefix string, sources ...[]string) []string {
	prefix = strings.ToLower(prefix)
	seen := make(map[string]struct{})
	out := []string{}

	for _, names := range sources {
		for _, name := range names {
			if !strings.HasPrefix(strings.ToLower(name), prefix) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	slices.Sort(out)
	return out
}

func activeNames(r Roster) []string {
	if r == nil {
		return nil
	}
	return r.ActiveNames()
}
