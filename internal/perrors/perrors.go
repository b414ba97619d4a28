// Package perrors defines the error kinds surfaced by the compiler
// frontend: lexical, construction, syntax, semantic, and I/O errors.
package perrors

import "fmt"

// Kind identifies which of the five error categories an error belongs to.
type Kind int

const (
	KindLexical Kind = iota
	KindConstruction
	KindSyntax
	KindSemantic
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindConstruction:
		return "construction"
	case KindSyntax:
		return "syntax"
	case KindSemantic:
		return "semantic"
	case KindIO:
		return "I/O"
	default:
		return "unknown"
	}
}

// frontendError is the concrete type backing all five exported error kinds.
// It carries an optional source position so callers can render a caret
// underline, and an optional wrapped cause.
type frontendError struct {
	kind    Kind
	msg     string
	line    int
	col     int
	hasPos  bool
	expect  []string
	wrapped error
}

func (e *frontendError) Error() string {
	if e.hasPos {
		return fmt.Sprintf("%s error at %d:%d: %s", e.kind, e.line, e.col, e.msg)
	}
	return fmt.Sprintf("%s error: %s", e.kind, e.msg)
}

func (e *frontendError) Unwrap() error {
	return e.wrapped
}

// Kind returns the category of this error.
func (e *frontendError) Kind() Kind {
	return e.kind
}

// Position returns the line and column the error occurred at, and whether
// one was recorded.
func (e *frontendError) Position() (line, col int, ok bool) {
	return e.line, e.col, e.hasPos
}

// Expected returns the human-readable names of tokens that would have been
// accepted at the point of failure, if known.
func (e *frontendError) Expected() []string {
	return e.expect
}

// NewLexical returns a new lexical error (unknown character, invalid
// numeric literal, token too long) positioned at line/col.
func NewLexical(msg string, line, col int) error {
	return &frontendError{kind: KindLexical, msg: msg, line: line, col: col, hasPos: true}
}

// NewConstruction returns a new grammar/table construction error (unknown
// symbol reference, missing augmented start production). Construction
// errors have no source position; they describe a static defect in the
// grammar itself.
func NewConstruction(msg string, a ...interface{}) error {
	return &frontendError{kind: KindConstruction, msg: fmt.Sprintf(msg, a...)}
}

// NewSyntax returns a new parse (syntax) error at the given position, with
// an optional list of expected token names for diagnostic display.
func NewSyntax(msg string, line, col int, expected []string) error {
	return &frontendError{kind: KindSyntax, msg: msg, line: line, col: col, hasPos: true, expect: expected}
}

// NewSemantic returns a new SDT/semantic error naming the offending
// production and the missing attribute or allocator failure.
func NewSemantic(msg string, a ...interface{}) error {
	return &frontendError{kind: KindSemantic, msg: fmt.Sprintf(msg, a...)}
}

// NewIO wraps a file open/read/write failure.
func NewIO(op string, wrapped error) error {
	return &frontendError{kind: KindIO, msg: fmt.Sprintf("%s: %v", op, wrapped), wrapped: wrapped}
}

// KindOf returns the Kind of err if it is one produced by this package, and
// false otherwise.
func KindOf(err error) (Kind, bool) {
	fe, ok := err.(*frontendError)
	if !ok {
		return 0, false
	}
	return fe.kind, true
}
