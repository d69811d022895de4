// Package roster manages the list of historical figures used as greeting
// targets. A roster is built explicitly from a source (defaults, a local
// file, or a remote fetch) and passed to whoever needs it; nothing here is
// package-level state.
package roster

import "math/rand"

// Roster is an immutable list of figure names.
type Roster struct {
	names []string
}

// New creates a roster from the given names.
func New(names []string) *Roster {
	copied := make([]string, len(names))
	copy(copied, names)
	return &Roster{names: copied}
}

// Len returns the number of names in the roster.
func (r *Roster) Len() int {
	return len(r.names)
}

// Names returns a copy of the roster's names.
func (r *Roster) Names() []string {
	copied := make([]string, len(r.names))
	copy(copied, r.names)
	return copied
}

// Random returns a uniformly random name from the roster.
// The second return is false when the roster is empty.
func (r *Roster) Random() (string, bool) {
	if len(r.names) == 0 {
		return "", false
	}
	return r.names[rand.Intn(len(r.names))], true
}
