package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allSubsets enumerates every subset of the given attribute order.
func allSubsets(order []string) []Set {
	n := len(order)
	out := make([]Set, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		s := make(Set)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s.Add(order[i])
			}
		}
		out = append(out, s)
	}
	return out
}

func TestUpEmptySetConvention(t *testing.T) {
	ctx, err := New(fruitRelation())
	require.NoError(t, err)

	// Up of the empty set is the empty set, diverging from the textbook
	// "all entities" definition. Down of the empty set is the full
	// attribute universe. Both conventions are preserved together; the
	// enumerator depends on their interaction.
	assert.Empty(t, ctx.Up(NewSet()))
	assert.Equal(t, ctx.Attributes(), ctx.Down(NewSet()))
	assert.Equal(t, ctx.Attributes(), ctx.ClosureAttrs(NewSet()))
}

func TestUpSkipsUnknownAttributes(t *testing.T) {
	ctx, err := New(fruitRelation())
	require.NoError(t, err)

	// An attribute absent from the inverted relation is skipped rather
	// than forcing an empty intersection.
	assert.Equal(t, NewSet("banana", "lemon"), ctx.Up(NewSet("yellow", "does-not-exist")))

	// A query of only unknown attributes intersects nothing.
	assert.Empty(t, ctx.Up(NewSet("does-not-exist")))
}

func TestDownSkipsUnknownEntities(t *testing.T) {
	ctx, err := New(fruitRelation())
	require.NoError(t, err)

	assert.Equal(t, NewSet("red", "sweet"), ctx.Down(NewSet("apple", "does-not-exist")))
}

func TestUpDownBasics(t *testing.T) {
	ctx, err := New(map[string][]string{
		"e1": {"a", "b"},
		"e2": {"b", "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, NewSet("e1", "e2"), ctx.Up(NewSet("b")))
	assert.Equal(t, NewSet("e1"), ctx.Up(NewSet("a", "b")))
	assert.Empty(t, ctx.Up(NewSet("a", "c")))
	assert.Equal(t, NewSet("b"), ctx.Down(NewSet("e1", "e2")))
}

func TestClosureLaws(t *testing.T) {
	ctx, err := New(fruitRelation())
	require.NoError(t, err)

	for _, a := range allSubsets(ctx.AttributeOrder()) {
		closed := ctx.ClosureAttrs(a)

		// Extensive: A ⊆ closure(A).
		require.True(t, a.SubsetOf(closed), "closure not extensive for %v", a)

		// Idempotent: closure(closure(A)) == closure(A).
		require.True(t, ctx.ClosureAttrs(closed).Equal(closed), "closure not idempotent for %v", a)
	}
}

func TestClosureMonotone(t *testing.T) {
	ctx, err := New(map[string][]string{
		"e1": {"a", "b"},
		"e2": {"b", "c"},
	})
	require.NoError(t, err)

	// The empty set is excluded: under the up(∅)=∅ convention its closure
	// is the full universe, which dominates every other closure.
	subsets := allSubsets(ctx.AttributeOrder())
	for _, a := range subsets {
		if len(a) == 0 {
			continue
		}
		for _, b := range subsets {
			if !a.SubsetOf(b) {
				continue
			}
			require.True(t, ctx.ClosureAttrs(a).SubsetOf(ctx.ClosureAttrs(b)),
				"closure not monotone for %v ⊆ %v", a, b)
		}
	}
}

func TestGaloisConnectionInflation(t *testing.T) {
	ctx, err := New(fruitRelation())
	require.NoError(t, err)

	// down(up(Y)) ⊇ Y for attribute subsets, up(down(X)) ⊇ X for
	// non-empty entity subsets (the up(∅)=∅ convention breaks the
	// inclusion only at X=∅, where down(∅) is the full universe).
	for _, y := range []Set{NewSet("red"), NewSet("yellow", "sour"), NewSet("orange")} {
		assert.True(t, y.SubsetOf(ctx.ClosureAttrs(y)))
	}
	for _, x := range []Set{NewSet("apple"), NewSet("banana", "lemon"), ctx.Entities()} {
		assert.True(t, x.SubsetOf(ctx.ClosureEnts(x)))
	}
}

func TestClosureEquality(t *testing.T) {
	ctx, err := New(map[string][]string{
		"e1": {"a", "b"},
		"e2": {"b", "c"},
	})
	require.NoError(t, err)

	// Equality holds exactly on closed sets: {b} is a closed intension,
	// {a} is not (it closes to {a, b}).
	assert.True(t, ctx.ClosureAttrs(NewSet("b")).Equal(NewSet("b")))
	assert.True(t, ctx.ClosureAttrs(NewSet("a")).Equal(NewSet("a", "b")))

	// {e1, e2} is a closed extension, {e1} is too (it determines {a, b}).
	assert.True(t, ctx.ClosureEnts(NewSet("e1", "e2")).Equal(NewSet("e1", "e2")))
	assert.True(t, ctx.ClosureEnts(NewSet("e1")).Equal(NewSet("e1")))
}

func TestClosureMemoizationReturnsCopies(t *testing.T) {
	ctx, err := New(fruitRelation())
	require.NoError(t, err)

	first := ctx.ClosureAttrs(NewSet("yellow"))
	first.Add("tampered")
	second := ctx.ClosureAttrs(NewSet("yellow"))

	assert.False(t, second.Has("tampered"), "memoized closure leaked to caller")
}
