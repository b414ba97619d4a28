package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringSet_UnionIntersectionDifference(t *testing.T) {
	a := StringSetOf([]string{"x", "y", "z"})
	b := StringSetOf([]string{"y", "z", "w"})

	assert.Equal(t, StringSetOf([]string{"x", "y", "z", "w"}), a.Union(b))
	assert.Equal(t, StringSetOf([]string{"y", "z"}), a.Intersection(b))
	assert.Equal(t, StringSetOf([]string{"x"}), a.Difference(b))
	assert.False(t, a.DisjointWith(b))
}

func Test_StringSet_Equal(t *testing.T) {
	a := StringSetOf([]string{"1", "2"})
	b := StringSetOf([]string{"2", "1"})
	assert.True(t, a.Equal(b))
}

func Test_Stack_PushPopPeek(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Peek())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Len())
}

func Test_MakeTextList(t *testing.T) {
	assert.Equal(t, "a", MakeTextList([]string{"a"}))
	assert.Equal(t, "a and b", MakeTextList([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", MakeTextList([]string{"a", "b", "c"}))
}
