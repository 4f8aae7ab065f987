package prop

import (
	"strings"

	"github.com/teranos/galois/errors"
)

// Predicate is a predicate schema: a symbol, a display name, an arity,
// and optional argument roles indexed by position.
type Predicate struct {
	Symbol string
	Name   string
	Arity  int
	Roles  []string
}

// NewPredicate validates that the roles, when given, match the arity.
func NewPredicate(symbol, name string, arity int, roles ...string) (Predicate, error) {
	if len(roles) != 0 && len(roles) != arity {
		return Predicate{}, errors.NewArityMismatchError(
			"predicate %q expects %d arguments, got %d roles", symbol, arity, len(roles))
	}
	return Predicate{Symbol: symbol, Name: name, Arity: arity, Roles: roles}, nil
}

// Equal compares predicate schemas by symbol and name.
func (p Predicate) Equal(o Predicate) bool {
	return p.Symbol == o.Symbol && p.Name == o.Name
}

// World assigns truth values to atomic propositions, keyed by their
// canonical rendering.
type World map[string]bool

// Proposition is anything with a truth value under a World: predicate
// expressions and the complex propositions built over them.
type Proposition interface {
	String() string
	Evaluate(w World) bool
	Atoms() []Expression
}

// Expression is a predicate applied to a full argument list — an atomic
// proposition.
type Expression struct {
	Predicate Predicate
	Args      []Term
}

// NewExpression validates the argument count against the predicate's
// arity.
func NewExpression(pred Predicate, args ...Term) (Expression, error) {
	if len(args) != pred.Arity {
		return Expression{}, errors.NewArityMismatchError(
			"predicate %q expects %d arguments, got %d", pred.Symbol, pred.Arity, len(args))
	}
	return Expression{Predicate: pred, Args: args}, nil
}

func (e Expression) String() string {
	if len(e.Args) == 0 {
		return e.Predicate.Symbol
	}
	parts := make([]string, len(e.Args))
	for i, arg := range e.Args {
		parts[i] = arg.String()
	}
	return e.Predicate.Symbol + "(" + strings.Join(parts, ", ") + ")"
}

// Equal compares expressions by predicate and arguments.
func (e Expression) Equal(o Expression) bool {
	if !e.Predicate.Equal(o.Predicate) || len(e.Args) != len(o.Args) {
		return false
	}
	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Evaluate looks the atom up in the world; an unassigned atom is false.
func (e Expression) Evaluate(w World) bool {
	return w[e.String()]
}

func (e Expression) Atoms() []Expression {
	return []Expression{e}
}

// Negation negates a proposition.
type Negation struct {
	Prop Proposition
}

func (n Negation) String() string {
	switch n.Prop.(type) {
	case Expression, Negation:
		return "¬" + n.Prop.String()
	}
	return "¬(" + n.Prop.String() + ")"
}

func (n Negation) Evaluate(w World) bool {
	return !n.Prop.Evaluate(w)
}

func (n Negation) Atoms() []Expression {
	return n.Prop.Atoms()
}

// Conjunction, Disjunction, Implication, and Biconditional are the binary
// propositions. Each renders with its connective glyph and evaluates by
// its truth table.
type Conjunction struct {
	Left  Proposition
	Right Proposition
}

func (c Conjunction) String() string {
	return "(" + c.Left.String() + " ∧ " + c.Right.String() + ")"
}

func (c Conjunction) Evaluate(w World) bool {
	return c.Left.Evaluate(w) && c.Right.Evaluate(w)
}

func (c Conjunction) Atoms() []Expression {
	return mergeAtoms(c.Left, c.Right)
}

type Disjunction struct {
	Left  Proposition
	Right Proposition
}

func (d Disjunction) String() string {
	return "(" + d.Left.String() + " ∨ " + d.Right.String() + ")"
}

func (d Disjunction) Evaluate(w World) bool {
	return d.Left.Evaluate(w) || d.Right.Evaluate(w)
}

func (d Disjunction) Atoms() []Expression {
	return mergeAtoms(d.Left, d.Right)
}

type Implication struct {
	Left  Proposition
	Right Proposition
}

func (i Implication) String() string {
	return "(" + i.Left.String() + " → " + i.Right.String() + ")"
}

func (i Implication) Evaluate(w World) bool {
	return !i.Left.Evaluate(w) || i.Right.Evaluate(w)
}

func (i Implication) Atoms() []Expression {
	return mergeAtoms(i.Left, i.Right)
}

type Biconditional struct {
	Left  Proposition
	Right Proposition
}

func (b Biconditional) String() string {
	return "(" + b.Left.String() + " ↔ " + b.Right.String() + ")"
}

func (b Biconditional) Evaluate(w World) bool {
	return b.Left.Evaluate(w) == b.Right.Evaluate(w)
}

func (b Biconditional) Atoms() []Expression {
	return mergeAtoms(b.Left, b.Right)
}

// mergeAtoms collects the distinct atoms of two subtrees, left first.
func mergeAtoms(left, right Proposition) []Expression {
	out := left.Atoms()
	for _, atom := range right.Atoms() {
		dup := false
		for _, have := range out {
			if have.Equal(atom) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, atom)
		}
	}
	return out
}
