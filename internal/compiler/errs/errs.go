package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a compile error
type Kind string

const (
	LexError               Kind = "LexError"
	SyntaxError            Kind = "SyntaxError"
	UndefinedVariableError Kind = "UndefinedVariableError"
	DivisionByZeroError    Kind = "DivisionByZeroError"
)

// Error is a static-analysis failure. All kinds are terminal for the current
// statement only: the symbol table is rolled back and the next statement
// starts from a fresh pipeline.
type Error struct {
	Kind    Kind
	Message string
	Column  int // 1-indexed, 0 when no position applies
}

func (e *Error) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s: %s (col %d)", e.Kind, e.Message, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func New(kind Kind, col int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Column: col}
}

// Is reports whether err is a compile error of the given kind.
func Is(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
