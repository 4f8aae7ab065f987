// Package prop provides a propositional-logic framework: terms, predicate
// schemas, predicate expressions as atomic propositions, and complex
// propositions with truth-table evaluation under an assignment.
//
// It is a separate logic subsystem from the concept-lattice engine and the
// Horn reasoner, with its own contract.
package prop

import (
	"strings"

	"github.com/teranos/galois/errors"
)

// Term is the base of the term hierarchy: constants, variables, and
// grounded function applications.
type Term interface {
	String() string
	Equal(Term) bool
}

// Constant is a named individual with a symbol.
type Constant struct {
	Symbol string
	Name   string
}

func (c Constant) String() string {
	return c.Symbol
}

func (c Constant) Equal(o Term) bool {
	oc, ok := o.(Constant)
	return ok && oc.Symbol == c.Symbol && oc.Name == c.Name
}

// Variable is an unbound term with a symbol.
type Variable struct {
	Symbol string
}

func (v Variable) String() string {
	return v.Symbol
}

func (v Variable) Equal(o Term) bool {
	ov, ok := o.(Variable)
	return ok && ov.Symbol == v.Symbol
}

// Function is a function schema: a symbol, a display name, an arity, and
// optional argument roles indexed by position.
type Function struct {
	Symbol string
	Name   string
	Arity  int
	Roles  []string
}

// NewFunction validates that the roles, when given, match the arity.
func NewFunction(symbol, name string, arity int, roles ...string) (Function, error) {
	if len(roles) != 0 && len(roles) != arity {
		return Function{}, errors.NewArityMismatchError(
			"function %q expects %d arguments, got %d roles", symbol, arity, len(roles))
	}
	return Function{Symbol: symbol, Name: name, Arity: arity, Roles: roles}, nil
}

func (f Function) String() string {
	return f.Symbol + "/" + f.Name
}

// Equal compares function schemas by symbol and name.
func (f Function) Equal(o Function) bool {
	return f.Symbol == o.Symbol && f.Name == o.Name
}

// Grounding is a function applied to a full argument list, itself a Term.
type Grounding struct {
	Function Function
	Args     []Term
}

// NewGrounding validates the argument count against the function's arity.
func NewGrounding(fn Function, args ...Term) (Grounding, error) {
	if len(args) != fn.Arity {
		return Grounding{}, errors.NewArityMismatchError(
			"grounding of %q expects %d arguments, got %d", fn.Symbol, fn.Arity, len(args))
	}
	return Grounding{Function: fn, Args: args}, nil
}

func (g Grounding) String() string {
	if len(g.Args) == 0 {
		return g.Function.Symbol
	}
	parts := make([]string, len(g.Args))
	for i, arg := range g.Args {
		parts[i] = arg.String()
	}
	return g.Function.Symbol + "(" + strings.Join(parts, ", ") + ")"
}

func (g Grounding) Equal(o Term) bool {
	og, ok := o.(Grounding)
	if !ok || !og.Function.Equal(g.Function) || len(og.Args) != len(g.Args) {
		return false
	}
	for i := range g.Args {
		if !g.Args[i].Equal(og.Args[i]) {
			return false
		}
	}
	return true
}
