package grammar

import "github.com/dekarrin/pastac/internal/util"

// ComputeSets computes FIRST and FOLLOW for every symbol by iterating to a
// fixed point: for each production
// A -> X1 X2 ... Xn, FIRST(X1)\{ε} is added to FIRST(A); if X1 is nullable,
// continue into X2, and so on; if every Xi is nullable, ε is added to
// FIRST(A). FOLLOW propagates symmetrically, with FOLLOW(start) always
// containing EndMarker.
func (g *Grammar) ComputeSets() {
	g.first = map[string]util.StringSet{}
	g.follow = map[string]util.StringSet{}

	for _, t := range g.terminals {
		g.first[t] = util.StringSetOf([]string{t})
	}
	for _, nt := range g.nonTerminals {
		g.first[nt] = util.NewStringSet()
		g.follow[nt] = util.NewStringSet()
	}

	g.follow[g.start].Add(EndMarker)

	for {
		changed := false

		for _, p := range g.Productions {
			if g.extendFirst(p) {
				changed = true
			}
		}
		for _, p := range g.Productions {
			if g.extendFollow(p) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	g.computed = true
}

// extendFirst adds to FIRST(p.LHS) per production p, returning whether
// anything new was added.
func (g *Grammar) extendFirst(p Production) bool {
	changed := false
	lhsFirst := g.first[p.LHS]

	allNullable := true
	for _, sym := range p.RHS {
		if sym == Epsilon {
			continue
		}
		symFirst := g.first[sym]
		for _, t := range symFirst.Elements() {
			if t == Epsilon {
				continue
			}
			if !lhsFirst.Has(t) {
				lhsFirst.Add(t)
				changed = true
			}
		}
		if !symFirst.Has(Epsilon) {
			allNullable = false
			break
		}
	}
	if allNullable {
		if !lhsFirst.Has(Epsilon) {
			lhsFirst.Add(Epsilon)
			changed = true
		}
	}
	return changed
}

// extendFollow adds to FOLLOW per production p, returning whether anything
// new was added.
func (g *Grammar) extendFollow(p Production) bool {
	changed := false
	rhs := p.RHS

	for i, sym := range rhs {
		if sym == Epsilon || g.IsTerminal(sym) {
			continue
		}
		// sym is a non-terminal at position i; beta = rhs[i+1:]
		beta := rhs[i+1:]
		betaFirst := g.FirstOfSequence(beta)

		symFollow := g.follow[sym]
		for _, t := range betaFirst.Elements() {
			if t == Epsilon {
				continue
			}
			if !symFollow.Has(t) {
				symFollow.Add(t)
				changed = true
			}
		}
		if betaFirst.Has(Epsilon) {
			for _, t := range g.follow[p.LHS].Elements() {
				if !symFollow.Has(t) {
					symFollow.Add(t)
					changed = true
				}
			}
		}
	}
	return changed
}

// FirstOfSequence computes FIRST(X1 X2 ... Xk) by the standard
// nullability-respecting prefix walk. The empty sequence returns {ε}.
func (g *Grammar) FirstOfSequence(seq []string) util.StringSet {
	result := util.NewStringSet()
	if len(seq) == 0 {
		result.Add(Epsilon)
		return result
	}

	allNullable := true
	for _, sym := range seq {
		if sym == Epsilon {
			continue
		}
		symFirst := g.First(sym)
		for _, t := range symFirst.Elements() {
			if t != Epsilon {
				result.Add(t)
			}
		}
		if !symFirst.Has(Epsilon) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.Add(Epsilon)
	}
	return result
}

// First returns FIRST(sym). sym may be a terminal (FIRST(t) = {t}), the
// EndMarker (FIRST($) = {$}), a non-terminal, or Epsilon (FIRST(ε) = {ε}).
func (g *Grammar) First(sym string) util.StringSet {
	if sym == Epsilon {
		return util.StringSetOf([]string{Epsilon})
	}
	if sym == EndMarker {
		return util.StringSetOf([]string{EndMarker})
	}
	return g.first[sym]
}

// Follow returns FOLLOW(nt) for a non-terminal nt.
func (g *Grammar) Follow(nt string) util.StringSet {
	return g.follow[nt]
}

// Nullable reports whether sym can derive ε.
func (g *Grammar) Nullable(sym string) bool {
	if sym == Epsilon {
		return true
	}
	return g.First(sym).Has(Epsilon)
}
