// Package jsonbridge converts values to JSON text and back, including
// restoring JSON text into typed Go values.
//
// Restoring never runs constructors: attributes come from the JSON text and
// behavior comes from the method set of the requested type.
package jsonbridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
)

// Record is a plain parsed JSON object without any behavior attached.
type Record map[string]any

// Bridge holds serialization settings. Zero configuration is strict,
// compact JSON.
type Bridge struct {
	log      *zap.Logger
	comments bool
	indent   string
}

type Option func(*Bridge)

// WithComments allows // and /* */ comments and trailing commas in input.
func WithComments(allow bool) Option {
	return func(b *Bridge) {
		b.comments = allow
	}
}

// WithIndent makes Serialize produce indented output.
func WithIndent(indent string) Option {
	return func(b *Bridge) {
		b.indent = indent
	}
}

func New(log *zap.Logger, opts ...Option) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Bridge{log: log.Named("json-bridge")}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Serialize returns JSON text of v. Struct fields keep declaration order,
// map keys are sorted. HTML characters are not escaped.
func (b *Bridge) Serialize(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if len(b.indent) > 0 {
		enc.SetIndent("", b.indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("unable to serialize %T: %w", v, err)
	}
	// Encode always terminates value with newline
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// Parse decodes JSON text into generic Go values: objects become
// map[string]any, arrays []any, numbers float64.
func (b *Bridge) Parse(text string) (any, error) {
	var v any
	if err := b.decode(text, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseRecord decodes JSON text which must contain an object.
func (b *Bridge) ParseRecord(text string) (Record, error) {
	var rec Record
	if err := b.decode(text, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("json text does not contain an object")
	}
	return rec, nil
}

func (b *Bridge) decode(text string, v any) error {
	data := []byte(text)
	if b.comments {
		data = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		var (
			se *json.SyntaxError
			te *json.UnmarshalTypeError
		)
		switch {
		case errors.As(err, &se):
			// syntax error offset counts the offending byte
			return newParseError(data, se.Offset-1, err)
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return newParseError(data, int64(len(data)), io.ErrUnexpectedEOF)
		case errors.As(err, &te):
			return fmt.Errorf("unable to restore field %q into %T: %w", te.Field, v, err)
		default:
			return fmt.Errorf("unable to decode json: %w", err)
		}
	}

	// only a single value is allowed, anything but whitespace after it is an error
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return newParseError(data, dec.InputOffset(), err)
	}

	b.log.Debug("Decoded json", zap.Int("bytes", len(data)), zap.String("type", fmt.Sprintf("%T", v)))
	return nil
}

// RestoreWith decodes JSON text into a new zero value of T using bridge
// settings. T's constructor, if any, is not called.
func RestoreWith[T any](b *Bridge, text string) (*T, error) {
	v := new(T)
	if err := b.decode(text, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Bind pairs already parsed data with behavior supplied by adapt. It is the
// run time counterpart of Restore when the target type is not known
// statically.
func Bind[T any](rec Record, adapt func(Record) (T, error)) (T, error) {
	if rec == nil {
		var zero T
		return zero, errors.New("nothing to bind: record is nil")
	}
	return adapt(rec)
}

var std = New(nil)

// Serialize returns compact JSON text of v.
func Serialize(v any) (string, error) {
	return std.Serialize(v)
}

// Parse decodes strict JSON text into generic Go values.
func Parse(text string) (any, error) {
	return std.Parse(text)
}

// ParseRecord decodes strict JSON text which must contain an object.
func ParseRecord(text string) (Record, error) {
	return std.ParseRecord(text)
}

// Restore decodes strict JSON text into a new value of T. Malformed text is
// reported as *ParseError.
func Restore[T any](text string) (*T, error) {
	return RestoreWith[T](std, text)
}
