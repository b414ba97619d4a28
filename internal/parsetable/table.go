package parsetable

import (
	"strconv"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/pastac/internal/automaton"
	"github.com/dekarrin/pastac/internal/grammar"
)

// Table is a dense ACTION/GOTO table over the states of an Automaton: one
// ACTION row per state per terminal (including the end-marker), and one
// GOTO row per state per non-terminal.
type Table struct {
	Automaton *automaton.Automaton
	Grammar   *grammar.Grammar

	action [][]Action // [state][terminal index]
	goTo   [][]int    // [state][non-terminal index]; -1 = error

	terms   []string
	nonterm []string
	termIdx map[string]int
	ntIdx   map[string]int

	Conflicts []Conflict
	Policy    ConflictPolicy
}

// Initial returns the table's initial state ID.
func (t *Table) Initial() int {
	return t.Automaton.Start
}

// Action returns the ACTION table entry for (state, terminal).
func (t *Table) Action(state int, terminal string) Action {
	i, ok := t.termIdx[terminal]
	if !ok {
		return Action{Type: Error}
	}
	return t.action[state][i]
}

// Goto returns the GOTO table entry for (state, nonTerminal), or -1 if
// there is no transition.
func (t *Table) Goto(state int, nonTerminal string) int {
	i, ok := t.ntIdx[nonTerminal]
	if !ok {
		return -1
	}
	return t.goTo[state][i]
}

// Build constructs the ACTION/GOTO table for g under variant, using policy
// to resolve any conflicts encountered (ShiftPreferred if policy is nil).
// Construction never fails on a conflict: it is recorded in the returned
// Table's Conflicts and resolved.
func Build(g *grammar.Grammar, variant automaton.Variant, policy ConflictPolicy) *Table {
	if policy == nil {
		policy = ShiftPreferred
	}

	a := automaton.Build(g, variant)

	terms := append(append([]string{}, g.Terminals()...), grammar.EndMarker)
	nonterms := g.NonTerminals()

	t := &Table{
		Automaton: a,
		Grammar:   g,
		terms:     terms,
		nonterm:   nonterms,
		termIdx:   map[string]int{},
		ntIdx:     map[string]int{},
		Policy:    policy,
	}
	for i, term := range terms {
		t.termIdx[term] = i
	}
	for i, nt := range nonterms {
		t.ntIdx[nt] = i
	}

	n := len(a.States)
	t.action = make([][]Action, n)
	t.goTo = make([][]int, n)
	for i := 0; i < n; i++ {
		t.action[i] = make([]Action, len(terms))
		t.goTo[i] = make([]int, len(nonterms))
		for j := range t.goTo[i] {
			t.goTo[i][j] = -1
		}
	}

	for _, s := range a.States {
		for sym, dest := range s.Transitions {
			if g.IsTerminal(sym) {
				t.set(s.ID, sym, Action{Type: Shift, State: dest})
			} else {
				t.goTo[s.ID][t.ntIdx[sym]] = dest
			}
		}

		for _, it := range s.Items {
			_, hasNext := it.SymbolAfterDot(g)
			if hasNext {
				continue // not a reduce/accept item
			}

			p := g.Production(it.Prod)

			if p.LHS == g.AugmentedStart() {
				t.set(s.ID, grammar.EndMarker, Action{Type: Accept})
				continue
			}

			lookaheads := t.reduceLookaheads(it, p, variant)
			for _, term := range lookaheads {
				t.set(s.ID, term, Action{Type: Reduce, Production: it.Prod})
			}
		}
	}

	return t
}

// reduceLookaheads returns the terminals a reduce item fires on, depending
// on variant: every terminal for LR(0), FOLLOW(lhs) for SLR(1), and the
// item's own lookahead set for LR(1).
func (t *Table) reduceLookaheads(it automaton.Item, p grammar.Production, variant automaton.Variant) []string {
	switch variant {
	case automaton.LR0:
		return t.terms
	case automaton.SLR1:
		return t.Grammar.Follow(p.LHS).Elements()
	default: // LR1
		return it.Lookaheads.Elements()
	}
}

// set writes an ACTION cell, diagnosing and resolving any conflict with an
// existing non-Error entry instead of failing construction.
func (t *Table) set(state int, terminal string, candidate Action) {
	i, ok := t.termIdx[terminal]
	if !ok {
		return
	}
	existing := t.action[state][i]
	if existing.Type == Error {
		t.action[state][i] = candidate
		return
	}
	if existing.Equal(candidate) {
		return
	}

	resolved := t.Policy(existing, candidate)
	t.Conflicts = append(t.Conflicts, Conflict{
		State: state, Terminal: terminal,
		Existing: existing, Rejected: rejectOf(existing, candidate, resolved),
		Resolved: resolved,
	})
	t.action[state][i] = resolved
}

func rejectOf(existing, candidate, resolved Action) Action {
	if resolved.Equal(existing) {
		return candidate
	}
	return existing
}

// String renders the table as an ASCII grid using rosed.
func (t *Table) String() string {
	headers := []string{"state"}
	for _, term := range t.terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range t.nonterm {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}
	for s := 0; s < len(t.action); s++ {
		row := []string{stateLabel(s)}
		for j := range t.terms {
			row = append(row, t.action[s][j].String())
		}
		row = append(row, "|")
		for j := range t.nonterm {
			if t.goTo[s][j] < 0 {
				row = append(row, "")
			} else {
				row = append(row, stateLabel(t.goTo[s][j]))
			}
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func stateLabel(s int) string {
	return strconv.Itoa(s)
}
