package automaton

import (
	"testing"

	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Build_StartStateIsClosureOfAugmentedItem(t *testing.T) {
	g := grammar.Language()
	a := Build(g, SLR1)

	require.NotEmpty(t, a.States)
	start := a.States[a.Start]

	var found bool
	for _, it := range start.Items {
		if it.Prod == grammar.AugmentedStartProdID && it.Dot == 0 {
			found = true
		}
	}
	assert.True(t, found, "start state should contain the augmented start item")
}

func Test_Build_DeterministicStateCount(t *testing.T) {
	g := grammar.Language()

	a1 := Build(g, SLR1)
	a2 := Build(g, SLR1)

	assert.Equal(t, len(a1.States), len(a2.States))
	for i := range a1.States {
		assert.Equal(t, len(a1.States[i].Items), len(a2.States[i].Items), "state %d item count", i)
		assert.Equal(t, len(a1.States[i].Transitions), len(a2.States[i].Transitions), "state %d transition count", i)
	}
}

func Test_Build_LR0_HasNoLookaheads(t *testing.T) {
	g := grammar.Language()
	a := Build(g, LR0)

	for _, s := range a.States {
		for _, it := range s.Items {
			assert.Nil(t, it.Lookaheads)
		}
	}
}

func Test_Build_LR1_StartLookaheadIsEndMarker(t *testing.T) {
	g := grammar.Language()
	a := Build(g, LR1)

	start := a.States[a.Start]
	for _, it := range start.Items {
		if it.Prod == grammar.AugmentedStartProdID {
			require.NotNil(t, it.Lookaheads)
			assert.True(t, it.Lookaheads.Has(grammar.EndMarker))
		}
	}
}
