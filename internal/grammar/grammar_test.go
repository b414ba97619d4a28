package grammar

import (
	"testing"

	"github.com/dekarrin/pastac/internal/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Language_Validates(t *testing.T) {
	g := Language()
	require.NoError(t, g.Validate())
}

func Test_Language_FirstSets(t *testing.T) {
	g := Language()

	expected := []string{string(lex.OpLParen), string(lex.Ident), string(lex.Int8), string(lex.Int10), string(lex.Int16)}

	for _, nt := range []string{NTExpr, NTTerm, NTFactor} {
		first := g.First(nt)
		assert.Equal(t, len(expected), first.Len(), "FIRST(%s)", nt)
		for _, e := range expected {
			assert.True(t, first.Has(e), "FIRST(%s) should contain %q", nt, e)
		}
	}

	firstX := g.First(NTExprTail)
	assert.True(t, firstX.Has(string(lex.OpPlus)))
	assert.True(t, firstX.Has(string(lex.OpMinus)))
	assert.True(t, firstX.Has(Epsilon))
	assert.Equal(t, 3, firstX.Len())

	firstY := g.First(NTTermTail)
	assert.True(t, firstY.Has(string(lex.OpStar)))
	assert.True(t, firstY.Has(string(lex.OpSlash)))
	assert.True(t, firstY.Has(Epsilon))
	assert.Equal(t, 3, firstY.Len())
}

func Test_Language_FollowProgramHasEndMarker(t *testing.T) {
	g := Language()
	assert.True(t, g.Follow(NTProgram).Has(EndMarker))
}

func Test_Language_FixpointIsStable(t *testing.T) {
	g := Language()
	before := map[string][]string{}
	for _, nt := range g.NonTerminals() {
		before[nt] = g.First(nt).Elements()
	}

	g.ComputeSets() // recompute; should be a no-op fixed point

	for _, nt := range g.NonTerminals() {
		assert.ElementsMatch(t, before[nt], g.First(nt).Elements(), "FIRST(%s) changed on recompute", nt)
	}
}

func Test_Language_ProductionNumberingIsCanonical(t *testing.T) {
	g := Language()
	assert.Equal(t, NTProgram, g.Production(ProdProgram).LHS)
	assert.Equal(t, NTFactor, g.Production(ProdFactorId).LHS)
	assert.Equal(t, g.AugmentedStart(), g.Production(ProdAugmentedStart).LHS)
}
