// Package horn implements a propositional Horn-clause reasoner with
// forward and backward chaining over a knowledge base of atomic facts.
//
// It is a separate logic subsystem from the concept-lattice engine, with
// its own contract: goals are atoms or two-atom conjunctions, clauses map
// one goal to one consequent atom.
package horn

import "fmt"

// Atom is an atomic proposition identified by its text.
type Atom struct {
	Text string
}

// NewAtom wraps a proposition string in an Atom.
func NewAtom(text string) Atom {
	return Atom{Text: text}
}

func (a Atom) String() string {
	return "(" + a.Text + ")"
}

// Conjunction is the conjunction of two atomic propositions. The pair is
// unordered: Conjunction{p, q} and Conjunction{q, p} are the same goal.
type Conjunction struct {
	Left  Atom
	Right Atom
}

func (c Conjunction) String() string {
	return "[" + c.Left.String() + " & " + c.Right.String() + "]"
}

// Equal reports whether two conjunctions have the same conjuncts in
// either order.
func (c Conjunction) Equal(o Conjunction) bool {
	if c.Left == o.Left && c.Right == o.Right {
		return true
	}
	return c.Left == o.Right && c.Right == o.Left
}

// Goal is what a reasoner can be asked to prove: an Atom or a
// Conjunction.
type Goal interface {
	fmt.Stringer
	goal()
}

func (Atom) goal()        {}
func (Conjunction) goal() {}

// Clause is a definite Horn clause: antecedent implies consequent.
// The antecedent is an Atom or a Conjunction; the consequent is always a
// single Atom.
type Clause struct {
	Antecedent Goal
	Consequent Atom
}

func (c Clause) String() string {
	return c.Antecedent.String() + " -> " + c.Consequent.String()
}
