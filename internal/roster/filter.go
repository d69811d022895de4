package roster

import "strings"

// Filter screens names loaded from external sources. It is plain lookup
// data: full names in the allow set pass outright, (first, last) pairs in
// the deny set are rejected, and when a first or last name set is present
// the matching part of the name must appear in it. Everything else is
// accepted. The zero value accepts every name.
type Filter struct {
	allow      map[string]struct{}
	firstNames map[string]struct{}
	lastNames  map[string]struct{}
	denied     map[namePair]struct{}
}

type namePair struct {
	first string
	last  string
}

// FilterData is the lookup data a Filter screens with.
type FilterData struct {
	// Allow lists full names accepted outright, before any other check.
	Allow []string
	// FirstNames and LastNames restrict the corresponding part of a name
	// when non-empty. An empty set leaves that part unconstrained.
	FirstNames []string
	LastNames  []string
	// DenyPairs lists rejected (first, last) combinations. Entries need at
	// least two elements; shorter ones are ignored.
	DenyPairs [][]string
}

// NewFilter creates a filter over the given lookup data.
func NewFilter(data FilterData) *Filter {
	f := &Filter{
		allow:      toSet(data.Allow),
		firstNames: toSet(data.FirstNames),
		lastNames:  toSet(data.LastNames),
		denied:     make(map[namePair]struct{}, len(data.DenyPairs)),
	}
	for _, pair := range data.DenyPairs {
		if len(pair) < 2 {
			continue
		}
		f.denied[namePair{first: pair[0], last: pair[1]}] = struct{}{}
	}
	return f
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Valid reports whether name passes the screening data. Single word names
// always pass; the deny pairs and the name part sets only see names with at
// least a first and a last part.
func (f *Filter) Valid(name string) bool {
	if _, ok := f.allow[name]; ok {
		return true
	}
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return true
	}
	first, last := parts[0], parts[len(parts)-1]
	if _, ok := f.denied[namePair{first: first, last: last}]; ok {
		return false
	}
	if len(f.firstNames) > 0 {
		if _, ok := f.firstNames[first]; !ok {
			return false
		}
	}
	if len(f.lastNames) > 0 {
		if _, ok := f.lastNames[last]; !ok {
			return false
		}
	}
	return true
}

// apply returns the names accepted by the filter, in input order.
func (f *Filter) apply(names []string) []string {
	valid := make([]string, 0, len(names))
	for _, name := range names {
		if f.Valid(name) {
			valid = append(valid, name)
		}
	}
	return valid
}
