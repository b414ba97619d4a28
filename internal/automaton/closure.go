package automaton

import (
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/util"
)

func emptyLookaheadSet() util.StringSet {
	return util.NewStringSet()
}

// closure saturates items with ·-introduction items for every non-terminal
// immediately right of a dot. In LR(1) mode,
// lookaheads are propagated via FIRST(βa) for each existing lookahead a; in
// LR(0)/SLR(1) mode no lookaheads are tracked and core-equality alone
// governs membership.
func closure(items []Item, g *grammar.Grammar, withLA bool) []Item {
	result := append([]Item(nil), items...)

	for {
		changed := false

		for _, it := range result {
			sym, ok := it.SymbolAfterDot(g)
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}

			p := g.Production(it.Prod)
			beta := p.RHS[it.Dot+1:]

			var la util.StringSet
			if withLA {
				la = emptyLookaheadSet()
				for _, a := range it.Lookaheads.Elements() {
					seq := append(append([]string{}, beta...), a)
					for _, t := range g.FirstOfSequence(seq).Elements() {
						if t != grammar.Epsilon {
							la.Add(t)
						}
					}
				}
			}

			for _, prod := range g.ProductionsFor(sym) {
				newItem := Item{Prod: prod.ID, Dot: 0}
				if withLA {
					newItem.Lookaheads = la.Copy().(util.StringSet)
				}
				var wasChanged bool
				result, wasChanged = addItem(result, newItem, withLA)
				if wasChanged {
					changed = true
				}
			}
		}

		if !changed {
			break
		}
	}

	return result
}

// addItem merges newItem into items: if a core-equal item already exists,
// its lookahead set is unioned with newItem's (in LR(1) mode), and addItem
// reports whether anything new was added (used to detect closure fixpoint).
// Otherwise newItem is appended and addItem reports true.
func addItem(items []Item, newItem Item, withLA bool) ([]Item, bool) {
	for i, existing := range items {
		if existing.Prod != newItem.Prod || existing.Dot != newItem.Dot {
			continue
		}
		if !withLA {
			return items, false
		}
		added := false
		for _, a := range newItem.Lookaheads.Elements() {
			if !existing.Lookaheads.Has(a) {
				existing.Lookaheads.Add(a)
				added = true
			}
		}
		items[i] = existing
		return items, added
	}
	return append(items, newItem), true
}

// gotoItems advances the dot over sym for every item where sym follows the
// dot, then closes the result — GOTO(state, X).
func gotoItems(items []Item, sym string, g *grammar.Grammar, withLA bool) []Item {
	var advanced []Item
	for _, it := range items {
		s, ok := it.SymbolAfterDot(g)
		if !ok || s != sym {
			continue
		}
		advanced = append(advanced, it.Advance())
	}
	if len(advanced) == 0 {
		return nil
	}
	return closure(advanced, g, withLA)
}
