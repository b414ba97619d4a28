// Package grammar models the context-free grammar driving both the LR and
// recursive-descent parsers: symbols, productions, and FIRST/FOLLOW sets.
// Productions carry explicit integer IDs and the grammar always includes
// an augmented start production.
package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/pastac/internal/perrors"
	"github.com/dekarrin/pastac/internal/util"
)

// AugmentedStartProdID is the production ID always reserved for the
// augmented start production `S' -> S`, regardless of which language's
// grammar this is.
const AugmentedStartProdID = 0

// Epsilon is the empty-string pseudo-symbol.
const Epsilon = "ε"

// EndMarker is the end-of-input pseudo-terminal, always in every FOLLOW set
// of the true start symbol.
const EndMarker = "$"

// Production is one rewrite rule, lhs -> rhs. Production 0 is always the
// augmented start production `S' -> S`; every other production is numbered
// in the order it was registered with AddProduction. An RHS of exactly
// [Epsilon] is an epsilon production; its effective length for reduction
// purposes is 0.
type Production struct {
	ID  int
	LHS string
	RHS []string
}

// Len returns the effective RHS length for LR reduction: 0 for an epsilon
// production, len(RHS) otherwise.
func (p Production) Len() int {
	if len(p.RHS) == 1 && p.RHS[0] == Epsilon {
		return 0
	}
	return len(p.RHS)
}

func (p Production) String() string {
	rhs := p.RHS
	if len(rhs) == 0 {
		rhs = []string{Epsilon}
	}
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(rhs, " "))
}

// Grammar is a registered set of terminals, non-terminals, and productions
// over them, plus their computed FIRST/FOLLOW sets.
type Grammar struct {
	Productions []Production

	terminals    []string
	nonTerminals []string
	symbolSeen   map[string]bool
	termSeen     map[string]bool

	start         string // the true (un-augmented) start symbol, e.g. "P"
	augmentedLHS  string // e.g. "P'"
	first         map[string]util.StringSet
	follow        map[string]util.StringSet
	computed      bool
}

// New creates a grammar whose augmented start production (id 0) is
// `start' -> start`. Call AddTerminal/AddNonTerminal to register symbols,
// then AddProduction to register the rest of the grammar, then Validate
// and ComputeSets.
func New(start string) *Grammar {
	g := &Grammar{
		symbolSeen:   map[string]bool{},
		termSeen:     map[string]bool{},
		start:        start,
		augmentedLHS: start + "'",
	}
	g.nonTerminals = append(g.nonTerminals, g.augmentedLHS)
	g.symbolSeen[g.augmentedLHS] = true
	g.AddNonTerminal(start)
	g.Productions = append(g.Productions, Production{ID: 0, LHS: g.augmentedLHS, RHS: []string{start}})
	return g
}

// AugmentedStart returns the synthetic start symbol name ("P'" etc).
func (g *Grammar) AugmentedStart() string {
	return g.augmentedLHS
}

// StartSymbol returns the grammar's true start symbol ("P" etc).
func (g *Grammar) StartSymbol() string {
	return g.start
}

// AddTerminal registers name as a terminal symbol, idempotently.
func (g *Grammar) AddTerminal(name string) {
	if g.symbolSeen[name] {
		return
	}
	g.symbolSeen[name] = true
	g.termSeen[name] = true
	g.terminals = append(g.terminals, name)
}

// AddNonTerminal registers name as a non-terminal symbol, idempotently.
func (g *Grammar) AddNonTerminal(name string) {
	if g.symbolSeen[name] {
		return
	}
	g.symbolSeen[name] = true
	g.nonTerminals = append(g.nonTerminals, name)
}

// AddProduction registers lhs -> rhs and returns its production ID. Pass no
// rhs symbols (or Epsilon alone) to register an epsilon production. lhs and
// every non-epsilon rhs symbol must already be registered via AddTerminal
// or AddNonTerminal, or Validate will later fail.
func (g *Grammar) AddProduction(lhs string, rhs ...string) int {
	if len(rhs) == 0 {
		rhs = []string{Epsilon}
	}
	id := len(g.Productions)
	g.Productions = append(g.Productions, Production{ID: id, LHS: lhs, RHS: rhs})
	g.computed = false
	return id
}

// Terminals returns the registered terminal names in registration order.
func (g *Grammar) Terminals() []string {
	return g.terminals
}

// NonTerminals returns the registered non-terminal names in registration
// order, including the augmented start symbol.
func (g *Grammar) NonTerminals() []string {
	return g.nonTerminals
}

// IsTerminal reports whether name was registered as a terminal.
func (g *Grammar) IsTerminal(name string) bool {
	return g.termSeen[name]
}

// IsNonTerminal reports whether name was registered as a non-terminal.
func (g *Grammar) IsNonTerminal(name string) bool {
	return g.symbolSeen[name] && !g.termSeen[name]
}

// Production returns the production with the given ID.
func (g *Grammar) Production(id int) Production {
	return g.Productions[id]
}

// ProductionsFor returns every production whose LHS is nt, in registration
// order.
func (g *Grammar) ProductionsFor(nt string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.LHS == nt {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that every symbol referenced by a production's LHS or RHS
// was registered, and that production 0 is the augmented start production.
// There is no partial grammar: the first unknown reference fails
// construction.
func (g *Grammar) Validate() error {
	if len(g.Productions) == 0 || g.Productions[0].LHS != g.augmentedLHS {
		return perrors.NewConstruction("grammar is missing its augmented start production")
	}
	for _, p := range g.Productions {
		if !g.symbolSeen[p.LHS] {
			return perrors.NewConstruction("production %d references unknown non-terminal %q", p.ID, p.LHS)
		}
		for _, sym := range p.RHS {
			if sym == Epsilon {
				continue
			}
			if !g.symbolSeen[sym] {
				return perrors.NewConstruction("production %d references unknown symbol %q", p.ID, sym)
			}
		}
	}
	return nil
}
