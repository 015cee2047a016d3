// Package diag implements the compiler's error taxonomy: every stage of the
// pipeline (grammar validation, parsing, lowering, codegen) reports failures
// as a *diag.Error carrying a source location and a Kind, instead of ad hoc
// fmt.Errorf strings.
package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic by which pipeline stage raised it and why.
type Kind int

const (
	Grammar Kind = iota
	Parse
	Alignment
	Arity
	Internal
)

func (k Kind) String() string {
	switch k {
	case Grammar:
		return "grammar error"
	case Parse:
		return "parse error"
	case Alignment:
		return "alignment error"
	case Arity:
		return "arity error"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// Level indicates the severity of a diagnostic. The core compiler only ever
// produces Fatal diagnostics, but the level exists so that a future dump-mode
// notice (see cmd/l1c) doesn't need its own parallel type.
type Level int

const (
	LevelError Level = iota
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal error"
	default:
		return "error"
	}
}

// Location pinpoints where in the source a diagnostic applies.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	if l.Line == 0 {
		return l.File
	}
	if l.Column == 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Error is the single error type returned by every compiler stage.
type Error struct {
	Kind     Kind
	Level    Level
	Location Location
	Message  string

	// Wrapped is the underlying error, if this diagnostic wraps a lower-level
	// failure (e.g. grammar.Parse wrapping a grammar self-check error).
	Wrapped error
}

func (e *Error) Error() string {
	var b strings.Builder
	if loc := e.Location.String(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}
	b.WriteString(e.Level.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Wrapped }

// New builds a fatal diagnostic of the given kind at the given location.
func New(kind Kind, loc Location, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Level:    LevelFatal,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a location and kind to an underlying error, preserving it via
// Unwrap so callers can still errors.Is/As through to the original cause.
func Wrap(kind Kind, loc Location, err error, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Level:    LevelFatal,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
		Wrapped:  err,
	}
}
