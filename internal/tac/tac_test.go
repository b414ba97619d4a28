package tac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Program_Assign(t *testing.T) {
	p := New()
	p.Emit(ADD, "t0", "1", "2", 1)
	p.Emit(ASSIGN, "x", "t0", "", 1)

	assert.Equal(t, "t0 := 1 + 2\nx := t0\n", p.String())
}

func Test_Program_LabelFollowedByBody(t *testing.T) {
	p := New()
	p.Emit(LABEL, "L0", "", "", 1)
	p.Emit(ASSIGN, "y", "1", "", 1)
	p.Emit(LABEL, "L1", "", "", 1)

	assert.Equal(t, "L0:\n    y := 1\nL1:\n", p.String())
}

func Test_Program_ConsecutiveLabelsOwnLines(t *testing.T) {
	p := New()
	p.Emit(LABEL, "L0", "", "", 1)
	p.Emit(LABEL, "L1", "", "", 1)

	assert.Equal(t, "L0:\nL1:\n", p.String())
}

func Test_Program_ConditionalAndGoto(t *testing.T) {
	p := New()
	p.Emit(LT, "L1", "i", "10", 1)
	p.Emit(GOTO, "L2", "", "", 1)

	assert.Equal(t, "if i < 10 goto L1\ngoto L2\n", p.String())
}

func Test_Program_Labels(t *testing.T) {
	p := New()
	p.Emit(LABEL, "L0", "", "", 1)
	p.Emit(GOTO, "L0", "", "", 1)

	labels := p.Labels()
	assert.True(t, labels["L0"])
	assert.False(t, labels["L1"])
}
