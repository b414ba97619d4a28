package automaton

import "sort"

// State is a set of LR items (a node of the viable-prefix automaton) plus
// its outgoing transitions over grammar symbols (terminal or non-terminal).
type State struct {
	ID          int
	Items       []Item
	Transitions map[string]int
}

// coreSignature is the identity used when canonicalizing a candidate state
// against existing ones: the sorted set of core-item keys (LR(0)/SLR(1)), or
// core+lookahead keys (LR(1), "fully-equal").
func coreSignature(items []Item, full bool) string {
	keys := make([]string, 0, len(items))
	for _, it := range items {
		if !it.IsCore() {
			continue
		}
		if full {
			keys = append(keys, it.fullKey())
		} else {
			keys = append(keys, it.coreKey())
		}
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "\x00"
		}
		out += k
	}
	return out
}

// symbolsNeedingGoto returns the grammar symbols that appear immediately
// after a dot in some item of items, in deterministic (sorted) order — the set GOTO must be
// computed for.
func (s *State) symbolsNeedingGoto(items []Item, symbolAfter func(Item) (string, bool)) []string {
	seen := map[string]bool{}
	var syms []string
	for _, it := range items {
		sym, ok := symbolAfter(it)
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
