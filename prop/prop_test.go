package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/galois/errors"
)

// diagnosisExpr builds D(d, p, c): doctor d diagnoses patient p with
// condition c.
func diagnosisExpr(t *testing.T, doctor, patient, condition string) Expression {
	t.Helper()
	pred, err := NewPredicate("D", "diagnosis", 3, "doctor", "patient", "condition")
	require.NoError(t, err)
	expr, err := NewExpression(pred,
		Constant{Symbol: doctor},
		Constant{Symbol: patient},
		Constant{Symbol: condition},
	)
	require.NoError(t, err)
	return expr
}

func TestTermEquality(t *testing.T) {
	assert.True(t, Constant{Symbol: "d1", Name: "doctor 1"}.Equal(Constant{Symbol: "d1", Name: "doctor 1"}))
	assert.False(t, Constant{Symbol: "d1"}.Equal(Constant{Symbol: "d2"}))
	assert.False(t, Constant{Symbol: "x"}.Equal(Variable{Symbol: "x"}))
	assert.True(t, Variable{Symbol: "x"}.Equal(Variable{Symbol: "x"}))
}

func TestFunctionArityValidation(t *testing.T) {
	_, err := NewFunction("f", "father-of", 1, "person", "extra")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrArityMismatch))

	fn, err := NewFunction("f", "father-of", 1, "person")
	require.NoError(t, err)
	assert.Equal(t, 1, fn.Arity)

	// Roles are optional.
	_, err = NewFunction("g", "mother-of", 2)
	require.NoError(t, err)
}

func TestGroundingArityValidation(t *testing.T) {
	fn, err := NewFunction("f", "father-of", 1)
	require.NoError(t, err)

	_, err = NewGrounding(fn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrArityMismatch))

	g, err := NewGrounding(fn, Constant{Symbol: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "f(alice)", g.String())
}

func TestGroundingAsTerm(t *testing.T) {
	fn, err := NewFunction("f", "father-of", 1)
	require.NoError(t, err)
	inner, err := NewGrounding(fn, Constant{Symbol: "alice"})
	require.NoError(t, err)
	outer, err := NewGrounding(fn, inner)
	require.NoError(t, err)

	assert.Equal(t, "f(f(alice))", outer.String())

	same, err := NewGrounding(fn, inner)
	require.NoError(t, err)
	assert.True(t, outer.Equal(same))
	assert.False(t, outer.Equal(inner))
}

func TestExpressionArityValidation(t *testing.T) {
	pred, err := NewPredicate("D", "diagnosis", 3, "doctor", "patient", "condition")
	require.NoError(t, err)

	_, err = NewExpression(pred, Constant{Symbol: "d1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrArityMismatch))
}

func TestPredicateRolesMismatch(t *testing.T) {
	_, err := NewPredicate("D", "diagnosis", 3, "doctor")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrArityMismatch))
}

func TestExpressionRendering(t *testing.T) {
	expr := diagnosisExpr(t, "d1", "p1", "c1")
	assert.Equal(t, "D(d1, p1, c1)", expr.String())

	nullary, err := NewPredicate("R", "it rains", 0)
	require.NoError(t, err)
	rain, err := NewExpression(nullary)
	require.NoError(t, err)
	assert.Equal(t, "R", rain.String())
}

func TestComplexPropositionRendering(t *testing.T) {
	a := diagnosisExpr(t, "d1", "p1", "c1")
	b := diagnosisExpr(t, "d2", "p2", "c1")

	conj := Conjunction{Left: a, Right: b}
	neg := Negation{Prop: conj}

	assert.Equal(t, "(D(d1, p1, c1) ∧ D(d2, p2, c1))", conj.String())
	assert.Equal(t, "¬((D(d1, p1, c1) ∧ D(d2, p2, c1)))", neg.String())
	assert.Equal(t, "¬D(d1, p1, c1)", Negation{Prop: a}.String())
	assert.Equal(t, "¬¬D(d1, p1, c1)", Negation{Prop: Negation{Prop: a}}.String())
	assert.Equal(t, "(D(d1, p1, c1) ∨ D(d2, p2, c1))", Disjunction{Left: a, Right: b}.String())
	assert.Equal(t, "(D(d1, p1, c1) → D(d2, p2, c1))", Implication{Left: a, Right: b}.String())
	assert.Equal(t, "(D(d1, p1, c1) ↔ D(d2, p2, c1))", Biconditional{Left: a, Right: b}.String())
}

func TestEvaluation(t *testing.T) {
	a := diagnosisExpr(t, "d1", "p1", "c1")
	b := diagnosisExpr(t, "d2", "p2", "c1")

	w := World{a.String(): true, b.String(): false}

	assert.True(t, a.Evaluate(w))
	assert.False(t, b.Evaluate(w))
	assert.False(t, Conjunction{Left: a, Right: b}.Evaluate(w))
	assert.True(t, Disjunction{Left: a, Right: b}.Evaluate(w))
	assert.False(t, Implication{Left: a, Right: b}.Evaluate(w))
	assert.True(t, Implication{Left: b, Right: a}.Evaluate(w))
	assert.False(t, Biconditional{Left: a, Right: b}.Evaluate(w))
	assert.True(t, Negation{Prop: b}.Evaluate(w))

	// Unassigned atoms are false.
	c := diagnosisExpr(t, "d3", "p3", "c3")
	assert.False(t, c.Evaluate(w))
}

func TestImplicationTruthTable(t *testing.T) {
	p, err := NewPredicate("P", "p", 0)
	require.NoError(t, err)
	q, err := NewPredicate("Q", "q", 0)
	require.NoError(t, err)
	pe, _ := NewExpression(p)
	qe, _ := NewExpression(q)
	impl := Implication{Left: pe, Right: qe}

	tests := []struct {
		p, q, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, true},
		{false, false, true},
	}
	for _, tt := range tests {
		w := World{pe.String(): tt.p, qe.String(): tt.q}
		assert.Equal(t, tt.want, impl.Evaluate(w), "p=%v q=%v", tt.p, tt.q)
	}
}

func TestAtoms(t *testing.T) {
	a := diagnosisExpr(t, "d1", "p1", "c1")
	b := diagnosisExpr(t, "d2", "p2", "c1")

	// Duplicate atoms collapse.
	compound := Conjunction{
		Left:  Implication{Left: a, Right: b},
		Right: Negation{Prop: a},
	}
	atoms := compound.Atoms()
	require.Len(t, atoms, 2)
	assert.True(t, atoms[0].Equal(a))
	assert.True(t, atoms[1].Equal(b))
}
