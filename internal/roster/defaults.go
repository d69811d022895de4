package roster

// MaxNames caps how many names a loaded roster keeps.
const MaxNames = 50

// DefaultFigures returns the built-in roster used when no other source is
// available.
func DefaultFigures() []string {
	return []string{
		"Albert Einstein",
		"Marie Curie",
		"Leonardo da Vinci",
		"Isaac Newton",
		"Charles Darwin",
		"Galileo Galilei",
		"Nikola Tesla",
		"Ada Lovelace",
		"Alan Turing",
		"Rosalind Franklin",
		"Stephen Hawking",
		"Katherine Johnson",
		"Aristotle",
		"Cleopatra",
		"William Shakespeare",
		"Jane Austen",
		"Mahatma Gandhi",
		"Martin Luther King Jr.",
		"Nelson Mandela",
		"Eleanor Roosevelt",
	}
}

// DefaultFilter returns the built-in screening data: a handful of well-known
// figures accepted outright and the handful of mix-and-match combinations
// rejected. The first and last name sets start empty, so names outside the
// deny list pass.
func DefaultFilter() *Filter {
	return NewFilter(FilterData{
		Allow: []string{
			"Albert Einstein",
			"Isaac Newton",
			"Marie Curie",
			"Leonardo da Vinci",
			"Nikola Tesla",
			"Charles Darwin",
			"William Shakespeare",
			"George Washington",
			"Martin Luther King Jr.",
			"Rosa Parks",
			"Ada Lovelace",
			"Alan Turing",
		},
		DenyPairs: [][]string{
			{"Albert", "Newton"},
			{"Isaac", "Einstein"},
			{"Marie", "Tesla"},
			{"Nikola", "Darwin"},
			{"Leonardo", "Shakespeare"},
		},
	})
}
