package css

import (
	"errors"
	"strings"
)

// Builder accumulates parts of a CSS selector:
//
//	element#id.class[attr]:pseudo-class::pseudo-element
//
// Parts must be added in category order. Element, id and pseudo-element may be
// added once, class and pseudo-class accumulate, attribute keeps the last
// value only.
//
// Methods return the same builder to allow chaining. The first error is
// sticky: every call after it does nothing, and the error is reported by Err
// and Stringify. A builder which failed should be discarded.
type Builder struct {
	element       string
	id            string
	classes       string
	attribute     string
	pseudoClasses string
	pseudoElement string
	combined      string

	// kept for Explain
	parts       []part
	left, right *Builder
	combinator  string

	stage   Category // latest category used, valid only when touched is not empty
	touched uint8    // bit per Category
	err     error
}

type part struct {
	cat   Category
	value string
}

// New returns empty builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) Element(value string) *Builder {
	return b.Apply(CategoryElement, value)
}

func (b *Builder) ID(value string) *Builder {
	return b.Apply(CategoryId, value)
}

func (b *Builder) Class(value string) *Builder {
	return b.Apply(CategoryClass, value)
}

func (b *Builder) Attr(value string) *Builder {
	return b.Apply(CategoryAttribute, value)
}

func (b *Builder) PseudoClass(value string) *Builder {
	return b.Apply(CategoryPseudoClass, value)
}

func (b *Builder) PseudoElement(value string) *Builder {
	return b.Apply(CategoryPseudoElement, value)
}

// Apply adds selector part of the given category.
func (b *Builder) Apply(cat Category, value string) *Builder {
	if b.err != nil {
		return b
	}
	if !cat.IsValid() {
		b.err = ErrInvalidCategory
		return b
	}
	if cat.Unique() && b.has(cat) {
		b.err = &DuplicateSelectorError{Category: cat, Value: value}
		return b
	}
	if b.touched != 0 && cat < b.stage {
		b.err = &OrderError{Category: cat, Value: value, After: b.stage}
		return b
	}

	switch cat {
	case CategoryElement:
		b.element = value
	case CategoryId:
		b.id = "#" + value
	case CategoryClass:
		b.classes += "." + value
	case CategoryAttribute:
		b.attribute = "[" + value + "]"
	case CategoryPseudoClass:
		b.pseudoClasses += ":" + value
	case CategoryPseudoElement:
		b.pseudoElement = "::" + value
	}
	b.parts = append(b.parts, part{cat: cat, value: value})
	b.touched |= 1 << cat
	b.stage = cat
	return b
}

// Combine makes builder represent "left combinator right". Combinator must
// be one of " ", ">", "+", "~". Errors of either operand are carried over.
func (b *Builder) Combine(left *Builder, combinator string, right *Builder) *Builder {
	if b.err != nil {
		return b
	}
	if left == nil || right == nil {
		b.err = errors.New("combine requires both selectors")
		return b
	}
	if left.err != nil {
		b.err = left.err
		return b
	}
	if right.err != nil {
		b.err = right.err
		return b
	}
	if _, err := ParseCombinatorToken(combinator); err != nil {
		b.err = err
		return b
	}
	b.combined = left.String() + " " + combinator + " " + right.String()
	b.left, b.right, b.combinator = left, right, combinator
	return b
}

// Err returns the first error encountered by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Stringify returns selector text or the builder error.
func (b *Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// String returns selector text built so far. Parts rejected by an error are
// not included.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.Grow(len(b.element) + len(b.id) + len(b.classes) + len(b.attribute) +
		len(b.pseudoClasses) + len(b.pseudoElement) + len(b.combined))
	sb.WriteString(b.element)
	sb.WriteString(b.id)
	sb.WriteString(b.classes)
	sb.WriteString(b.attribute)
	sb.WriteString(b.pseudoClasses)
	sb.WriteString(b.pseudoElement)
	// combined selector goes last, builder normally has either parts or combination
	sb.WriteString(b.combined)
	return sb.String()
}

func (b *Builder) has(cat Category) bool {
	return b.touched&(1<<cat) != 0
}
