package automaton

import "github.com/dekarrin/pastac/internal/grammar"

// Automaton is the viable-prefix automaton (DFA) for a grammar under a
// given variant: a set of states indexed by ID, with a distinguished start
// state, plus a back-reference to the grammar it was built from.
type Automaton struct {
	Start   int
	States  []*State
	Grammar *grammar.Grammar
	Variant Variant
}

// Build constructs the canonical collection of item sets for g under the
// given variant (Algorithm 3.20/4.53/4.56-equivalent): start from the
// closure of the augmented start item, then repeatedly compute GOTO for
// every state/symbol pair, canonicalizing each candidate against existing
// states by core-equality (LR(0)/SLR(1)) or full equality including
// lookaheads (LR(1) — this is the canonical collection, not the
// LALR-merged one, so two items differing only by lookahead set produce
// distinct states).
func Build(g *grammar.Grammar, variant Variant) *Automaton {
	withLA := variant == LR1

	startItem := Item{Prod: grammar.AugmentedStartProdID, Dot: 0}
	if withLA {
		la := emptyLookaheadSet()
		la.Add(grammar.EndMarker)
		startItem.Lookaheads = la
	}

	startItems := closure([]Item{startItem}, g, withLA)

	a := &Automaton{Grammar: g, Variant: variant}
	signatures := map[string]int{}

	addState := func(items []Item) int {
		id := len(a.States)
		a.States = append(a.States, &State{ID: id, Items: items, Transitions: map[string]int{}})
		return id
	}

	startID := addState(startItems)
	a.Start = startID
	signatures[coreSignature(startItems, withLA)] = startID

	worklist := []int{startID}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]
		state := a.States[i]

		symbols := state.symbolsNeedingGoto(state.Items, func(it Item) (string, bool) {
			return it.SymbolAfterDot(g)
		})

		for _, sym := range symbols {
			candidate := gotoItems(state.Items, sym, g, withLA)
			if len(candidate) == 0 {
				continue
			}
			sig := coreSignature(candidate, withLA)
			if existing, ok := signatures[sig]; ok {
				state.Transitions[sym] = existing
				continue
			}
			newID := addState(candidate)
			signatures[sig] = newID
			state.Transitions[sym] = newID
			worklist = append(worklist, newID)
		}
	}

	return a
}
