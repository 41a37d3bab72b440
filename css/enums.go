package css

//go:generate go tool go-enum --names --nocomments

// Selector part kind. Declaration order is the order parts must appear in
// within a compound selector.
// ENUM(element, id, class, attribute, pseudo-class, pseudo-element)
type Category int

// Unique reports whether category may appear at most once in a compound selector.
func (x Category) Unique() bool {
	return x == CategoryElement || x == CategoryId || x == CategoryPseudoElement
}

// Relationship between two selectors.
// ENUM(descendant, child, next-sibling, subsequent-sibling)
type Combinator int

// Token returns CSS representation of the combinator.
func (x Combinator) Token() string {
	switch x {
	case CombinatorDescendant:
		return " "
	case CombinatorChild:
		return ">"
	case CombinatorNextSibling:
		return "+"
	case CombinatorSubsequentSibling:
		return "~"
	default:
		// this should never happen
		panic("unsupported combinator requested")
	}
}

// ParseCombinatorToken maps CSS token (" ", ">", "+", "~") to Combinator.
func ParseCombinatorToken(token string) (Combinator, error) {
	for _, c := range []Combinator{CombinatorDescendant, CombinatorChild, CombinatorNextSibling, CombinatorSubsequentSibling} {
		if c.Token() == token {
			return c, nil
		}
	}
	return Combinator(0), &CombinatorError{Token: token}
}
