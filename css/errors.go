package css

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicate = errors.New("element, id and pseudo-element should not occur more then one time inside the selector")
	ErrOrder     = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// DuplicateSelectorError is returned when element, id or pseudo-element is
// set second time on the same builder.
type DuplicateSelectorError struct {
	Category Category
	Value    string
}

func (e *DuplicateSelectorError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Category, e.Value, ErrDuplicate)
}

func (e *DuplicateSelectorError) Unwrap() error {
	return ErrDuplicate
}

// OrderError is returned when selector part is added after a part which must
// follow it.
type OrderError struct {
	Category Category
	Value    string
	After    Category
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s %q after %s: %v", e.Category, e.Value, e.After, ErrOrder)
}

func (e *OrderError) Unwrap() error {
	return ErrOrder
}

// CombinatorError is returned for combinator token other than " ", ">", "+"
// and "~".
type CombinatorError struct {
	Token string
}

func (e *CombinatorError) Error() string {
	return fmt.Sprintf("unsupported combinator %q", e.Token)
}

// SyntaxError reports selector text which could not be tokenized or contains
// unsupported constructs.
type SyntaxError struct {
	Offset int
	Token  string
	Reason string
}

func (e *SyntaxError) Error() string {
	if len(e.Token) == 0 {
		return fmt.Sprintf("selector syntax error at %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("selector syntax error at %d near %q: %s", e.Offset, e.Token, e.Reason)
}
