package jsonbridge

import (
	"bytes"
	"fmt"
)

// ParseError reports malformed JSON text. Offset is the 0-based index of the
// byte where decoding failed, Line and Column are 1-based.
type ParseError struct {
	Offset int64
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed json at line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(data []byte, offset int64, err error) *ParseError {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := int(offset) + 1
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = int(offset) - i
	}
	return &ParseError{Offset: offset, Line: line, Column: col, Err: err}
}
