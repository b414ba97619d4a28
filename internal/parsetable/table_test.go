package parsetable

import (
	"testing"

	"github.com/dekarrin/pastac/internal/automaton"
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Build_SLR1_LanguageConflictsResolveToShift(t *testing.T) {
	g := grammar.Language()
	tbl := Build(g, automaton.SLR1, nil)
	require.NotNil(t, tbl)
	// The dangling else (N -> ε against shifting "else") and the statement
	// tail (T -> ε against shifting the first token of another statement)
	// are shift/reduce conflicts under SLR(1); the default policy shifts.
	assert.NotEmpty(t, tbl.Conflicts, "this grammar has SLR(1) shift/reduce conflicts")
	for _, c := range tbl.Conflicts {
		assert.Equal(t, Shift, c.Resolved.Type, c.String())
	}
}

func Test_Build_NeverAbortsOnConflict(t *testing.T) {
	// A deliberately ambiguous grammar (classic dangling-else-free but
	// still ambiguous E -> E + E | id) to exercise the always-resolve path.
	g := grammar.New("S")
	g.AddNonTerminal("E")
	g.AddTerminal("+")
	g.AddTerminal("id")
	g.AddProduction("S", "E")
	g.AddProduction("E", "E", "+", "E")
	g.AddProduction("E", "id")
	g.ComputeSets()

	require.NotPanics(t, func() {
		tbl := Build(g, automaton.SLR1, nil)
		assert.NotEmpty(t, tbl.Conflicts, "ambiguous grammar should produce diagnosed conflicts, not a failure")
	})
}

func Test_ShiftPreferred_PrefersShift(t *testing.T) {
	existing := Action{Type: Reduce, Production: 3}
	candidate := Action{Type: Shift, State: 7}
	assert.Equal(t, candidate, ShiftPreferred(existing, candidate))
	assert.Equal(t, candidate, ShiftPreferred(candidate, existing))
}

func Test_ShiftPreferred_ReduceReduceKeepsEarlierProduction(t *testing.T) {
	a := Action{Type: Reduce, Production: 5}
	b := Action{Type: Reduce, Production: 2}
	assert.Equal(t, b, ShiftPreferred(a, b))
	assert.Equal(t, b, ShiftPreferred(b, a))
}
