package css

// Package level functions start a new builder with a single part applied.

func Element(value string) *Builder {
	return New().Element(value)
}

func ID(value string) *Builder {
	return New().ID(value)
}

func Class(value string) *Builder {
	return New().Class(value)
}

func Attr(value string) *Builder {
	return New().Attr(value)
}

func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}

// Combine returns new builder representing "left combinator right".
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return New().Combine(left, combinator, right)
}
