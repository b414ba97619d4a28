package lrparser

import (
	"testing"

	"github.com/dekarrin/pastac/internal/automaton"
	"github.com/dekarrin/pastac/internal/grammar"
	"github.com/dekarrin/pastac/internal/lex"
	"github.com/dekarrin/pastac/internal/parsetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, variant automaton.Variant) (*Parser, *grammar.Grammar) {
	t.Helper()
	g := grammar.Language()
	table := parsetable.Build(g, variant, nil)
	return New(g, table), g
}

func Test_Parse_SimpleAssign(t *testing.T) {
	for _, variant := range []automaton.Variant{automaton.LR0, automaton.SLR1, automaton.LR1} {
		p, _ := newParser(t, variant)
		stream, err := lex.Lex("x = 1 + 2 ;")
		require.NoError(t, err)

		tree, trace, err := p.Parse(stream)
		require.NoError(t, err, "variant %s", variant)
		require.NotNil(t, tree)
		assert.Equal(t, []string{"x", "=", "1", "+", "2", ";"}, tree.PreorderTerminals())
		assert.NotEmpty(t, trace)
	}
}

func Test_Parse_IfThenElse(t *testing.T) {
	p, _ := newParser(t, automaton.SLR1)
	stream, err := lex.Lex("if x > 0 then y = 1 else y = 2 ;")
	require.NoError(t, err)

	tree, _, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func Test_Parse_While(t *testing.T) {
	p, _ := newParser(t, automaton.SLR1)
	stream, err := lex.Lex("while i < 10 do i = i + 1 ;")
	require.NoError(t, err)

	tree, _, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func Test_Parse_Block(t *testing.T) {
	p, _ := newParser(t, automaton.SLR1)
	stream, err := lex.Lex("begin x = 1 ; y = 2 ; end ;")
	require.NoError(t, err)

	tree, _, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func Test_Parse_SyntaxErrorOnMissingExpr(t *testing.T) {
	p, _ := newParser(t, automaton.SLR1)
	stream, err := lex.Lex("x = ;")
	require.NoError(t, err)

	_, _, err = p.Parse(stream)
	assert.Error(t, err)
}

func Test_Parse_NestedParenCondition(t *testing.T) {
	p, _ := newParser(t, automaton.SLR1)
	stream, err := lex.Lex("if ( x > 0 ) then y = 1 ;")
	require.NoError(t, err)

	tree, _, err := p.Parse(stream)
	require.NoError(t, err)
	require.NotNil(t, tree)
}
