// Package greeting formats greeting lines and picks greeting targets.
package greeting

import (
	"fmt"

	"hullo.dev/hullo/internal/roster"
)

// Greet returns the greeting line for name. An empty name greets the world.
func Greet(name string) string {
	if name == "" {
		return "Hello, World!"
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// GreetRandomFigure returns a greeting addressed to a random entry from the
// roster. An empty roster falls back to an anonymous figure rather than
// failing, since the greeting itself is best-effort.
func GreetRandomFigure(r *roster.Roster) string {
	name, ok := r.Random()
	if !ok {
		return Greet("a mysterious historical figure")
	}
	return Greet(name)
}
