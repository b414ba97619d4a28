package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Temps_Monotonic(t *testing.T) {
	var g Temps
	assert.Equal(t, "t0", g.New())
	assert.Equal(t, "t1", g.New())
	assert.Equal(t, "t2", g.New())
}

func Test_Labels_Monotonic(t *testing.T) {
	var g Labels
	assert.Equal(t, "L0", g.New())
	assert.Equal(t, "L1", g.New())
}

func Test_Temps_IndependentFromLabels(t *testing.T) {
	var temps Temps
	var labels Labels
	assert.Equal(t, "t0", temps.New())
	assert.Equal(t, "L0", labels.New())
	assert.Equal(t, "t1", temps.New())
}
