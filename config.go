package pastac

import "github.com/dekarrin/pastac/internal/parsetable"

// ParserVariant selects which parsing strategy a Frontend drives the
// pipeline with.
type ParserVariant int

const (
	RecursiveDescent ParserVariant = iota
	LR0
	SLR1
	LR1
)

func (v ParserVariant) String() string {
	switch v {
	case RecursiveDescent:
		return "recursive-descent"
	case LR0:
		return "LR(0)"
	case SLR1:
		return "SLR(1)"
	case LR1:
		return "LR(1)"
	default:
		return "unknown"
	}
}

// Config controls how a Frontend parses and translates source.
type Config struct {
	// Variant selects the parsing strategy. NewDefault sets it to SLR1. The
	// zero value is RecursiveDescent, a valid choice that New uses as is.
	Variant ParserVariant

	// EmitTree requests that Compile's Result retain the full syntax tree
	// (it always does; this flag only controls whether callers like the
	// CLI bother to render it, since ASCII-tree rendering of a large
	// program is its own cost).
	EmitTree bool

	// EmitDerivation requests the production trace be retained for
	// display. As with EmitTree, the trace is always computed; this only
	// gates whether a caller renders it.
	EmitDerivation bool

	// Policy overrides the LR conflict-resolution policy. Nil means
	// parsetable.ShiftPreferred. Unused when Variant is RecursiveDescent.
	Policy parsetable.ConflictPolicy
}

// NewDefault returns a Config with SLR1 parsing and both tree and
// derivation output enabled — a reasonable default for interactive and
// CLI use.
func NewDefault() Config {
	return Config{Variant: SLR1, EmitTree: true, EmitDerivation: true}
}
