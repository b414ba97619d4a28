package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindOf(t *testing.T, src string) Kind {
	t.Helper()
	stream, err := Lex(src)
	require.NoError(t, err)
	require.True(t, stream.HasNext())
	return stream.Next().Kind
}

func Test_Lex_RoundTrip(t *testing.T) {
	cases := map[string]Kind{
		"0":       Int10,
		"007":     Int8,
		"089":     IllegalInt8,
		"0xFF":    Int16,
		"0xZZ":    IllegalInt16,
		"abc123":  Ident,
		"begin":   KwBegin,
	}

	for src, want := range cases {
		assert.Equal(t, want, kindOf(t, src), "lexing %q", src)
	}
}

func Test_Lex_Statement(t *testing.T) {
	stream, err := Lex("x = 1 + 2;")
	require.NoError(t, err)

	var kinds []Kind
	for stream.HasNext() {
		kinds = append(kinds, stream.Next().Kind)
	}

	assert.Equal(t, []Kind{Ident, OpEq, Int10, OpPlus, Int10, OpSemi}, kinds)
}

func Test_Lex_RelationalOperators(t *testing.T) {
	stream, err := Lex("<= >= <>")
	require.NoError(t, err)

	var kinds []Kind
	for stream.HasNext() {
		kinds = append(kinds, stream.Next().Kind)
	}
	assert.Equal(t, []Kind{OpLe, OpGe, OpNe}, kinds)
}

func Test_Lex_UnknownCharacter(t *testing.T) {
	_, err := Lex("@")
	assert.Error(t, err)
}

func Test_Lex_EndMarkerAfterExhaustion(t *testing.T) {
	stream, err := Lex("x")
	require.NoError(t, err)
	require.True(t, stream.HasNext())
	stream.Next()
	assert.False(t, stream.HasNext())
	assert.Equal(t, EndMarker, stream.Next().Kind)
	assert.Equal(t, EndMarker, stream.Peek().Kind)
}
