package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBasics(t *testing.T) {
	s := NewSet("b", "a", "c")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())

	s.Add("d")
	assert.True(t, s.Has("d"))
	s.Remove("d")
	assert.False(t, s.Has("d"))
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := NewSet("a", "b")
	c := s.Clone()
	c.Add("x")

	assert.False(t, s.Has("x"))
	assert.True(t, c.Has("x"))
}

func TestSetAlgebra(t *testing.T) {
	a := NewSet("a", "b", "c")
	b := NewSet("b", "c", "d")

	assert.Equal(t, NewSet("b", "c"), a.Intersect(b))
	assert.Equal(t, NewSet("a", "b", "c", "d"), a.Union(b))
	assert.Equal(t, NewSet("a"), a.Diff(b))
	assert.Equal(t, NewSet("d"), b.Diff(a))
}

func TestSetSubsetRelations(t *testing.T) {
	assert.True(t, NewSet("a").SubsetOf(NewSet("a", "b")))
	assert.True(t, NewSet("a").StrictSubsetOf(NewSet("a", "b")))
	assert.True(t, NewSet("a", "b").SubsetOf(NewSet("a", "b")))
	assert.False(t, NewSet("a", "b").StrictSubsetOf(NewSet("a", "b")))
	assert.False(t, NewSet("a", "z").SubsetOf(NewSet("a", "b")))
	assert.True(t, NewSet().SubsetOf(NewSet("a")))
}

func TestSetEqual(t *testing.T) {
	assert.True(t, NewSet("a", "b").Equal(NewSet("b", "a")))
	assert.False(t, NewSet("a").Equal(NewSet("a", "b")))
	assert.True(t, NewSet().Equal(NewSet()))
}

func TestSetKeyCanonical(t *testing.T) {
	assert.Equal(t, NewSet("b", "a").Key(), NewSet("a", "b").Key())
	assert.NotEqual(t, NewSet("ab").Key(), NewSet("a", "b").Key())
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{a, b}", NewSet("b", "a").String())
	assert.Equal(t, "{}", NewSet().String())
}
