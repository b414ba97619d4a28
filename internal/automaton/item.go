// Package automaton builds the LR(0)/SLR(1)/LR(1) viable-prefix automaton:
// items, states, closure, GOTO, and the canonical collection. Items are
// indexed by integer production ID and dot position rather than by a
// generic string-keyed DFA/NFA abstraction.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/util"
)

// Variant selects which flavor of canonical collection and lookahead
// tracking Build should use.
type Variant int

const (
	LR0 Variant = iota
	SLR1
	LR1
)

func (v Variant) String() string {
	switch v {
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

// Item is an LR item: a production, a dot position within its RHS, and
// (LR(1) only) a set of lookahead terminals.
type Item struct {
	Prod int
	Dot  int
	// Lookaheads is nil in LR(0)/SLR(1) mode, where lookahead-independent
	// core equality is the only notion of identity.
	Lookaheads util.StringSet
}

// IsCore reports whether it is a core item: dot > 0, or it belongs to the
// augmented start production (production 0).
func (it Item) IsCore() bool {
	return it.Dot > 0 || it.Prod == grammar.AugmentedStartProdID
}

// SymbolAfterDot returns the grammar symbol immediately following the dot,
// and whether one exists (false when the dot is at the end, or the RHS is
// a bare epsilon).
func (it Item) SymbolAfterDot(g *grammar.Grammar) (string, bool) {
	p := g.Production(it.Prod)
	if p.Len() == 0 {
		return "", false
	}
	if it.Dot >= len(p.RHS) {
		return "", false
	}
	return p.RHS[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Lookaheads: it.Lookaheads}
}

// coreKey is the identity used for core-equality: production + dot.
func (it Item) coreKey() string {
	return fmt.Sprintf("%d.%d", it.Prod, it.Dot)
}

// fullKey additionally folds in the (sorted) lookahead set, for LR(1)
// fully-equal comparison.
func (it Item) fullKey() string {
	if it.Lookaheads == nil {
		return it.coreKey()
	}
	las := it.Lookaheads.Elements()
	sort.Strings(las)
	return it.coreKey() + "|" + strings.Join(las, ",")
}

func (it Item) String(g *grammar.Grammar) string {
	p := g.Production(it.Prod)
	rhs := p.RHS
	if p.Len() == 0 {
		rhs = nil
	}
	var sb strings.Builder
	sb.WriteString(p.LHS)
	sb.WriteString(" -> ")
	for i := 0; i <= len(rhs); i++ {
		if i == it.Dot {
			sb.WriteString(". ")
		}
		if i < len(rhs) {
			sb.WriteString(rhs[i])
			sb.WriteRune(' ')
		}
	}
	if it.Lookaheads != nil {
		sb.WriteString(", ")
		sb.WriteString(it.Lookaheads.StringOrdered())
	}
	return strings.TrimRight(sb.String(), " ")
}
