package horn

import (
	"sort"
	"strings"

	"github.com/teranos/galois/logger"
)

// Reasoner proves goals against a set of Horn clauses and a growing
// knowledge base of atomic facts. The initial knowledge base is retained
// so the reasoner can be reset between queries.
type Reasoner struct {
	clauses []Clause
	initial map[Atom]struct{}
	kb      map[Atom]struct{}
}

// NewReasoner builds a Reasoner over the given clauses and initial facts.
func NewReasoner(clauses []Clause, facts []Atom) *Reasoner {
	r := &Reasoner{
		clauses: append([]Clause(nil), clauses...),
		initial: make(map[Atom]struct{}, len(facts)),
		kb:      make(map[Atom]struct{}, len(facts)),
	}
	for _, f := range facts {
		r.initial[f] = struct{}{}
		r.kb[f] = struct{}{}
	}
	return r
}

// Satisfied reports whether the knowledge base already satisfies the
// goal: an atom must be a known fact, a conjunction needs both conjuncts.
func (r *Reasoner) Satisfied(query Goal) bool {
	switch q := query.(type) {
	case Atom:
		_, ok := r.kb[q]
		return ok
	case Conjunction:
		_, left := r.kb[q.Left]
		_, right := r.kb[q.Right]
		return left && right
	}
	return false
}

// ForwardChain tries to prove the query by repeatedly firing clauses
// whose antecedents are satisfied, adding their consequents as new facts.
// Each clause fires at most once. The knowledge base keeps whatever facts
// were derived, whether or not the proof succeeds; use Reset to discard
// them.
func (r *Reasoner) ForwardChain(query Goal) bool {
	working := append([]Clause(nil), r.clauses...)
	cycles := 0
	derived := 0

	for {
		if r.Satisfied(query) {
			logger.Named("horn").Debugw("Forward chaining proved query",
				logger.FieldCycles, cycles,
				logger.FieldFacts, derived,
			)
			return true
		}
		cycles++
		before := len(r.kb)

		remaining := working[:0]
		for _, clause := range working {
			if r.Satisfied(clause.Antecedent) {
				r.kb[clause.Consequent] = struct{}{}
				derived++
				continue
			}
			remaining = append(remaining, clause)
		}
		working = remaining

		if len(r.kb) == before {
			logger.Named("horn").Debugw("Forward chaining reached fixpoint without proof",
				logger.FieldCycles, cycles,
				logger.FieldFacts, derived,
			)
			return false
		}
	}
}

// BackwardChain tries to prove the query goal-directed: a goal holds if
// the knowledge base satisfies it, or some clause concludes it from a
// provable antecedent. The knowledge base is not modified.
func (r *Reasoner) BackwardChain(query Goal) bool {
	return r.backwardChain(query, make(map[string]bool))
}

// backwardChain carries the set of goals already on the proof stack to
// cut cyclic clause chains (a -> b, b -> a would otherwise recurse
// forever).
func (r *Reasoner) backwardChain(query Goal, inProgress map[string]bool) bool {
	if r.Satisfied(query) {
		return true
	}
	key := query.String()
	if inProgress[key] {
		return false
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	switch q := query.(type) {
	case Atom:
		for _, clause := range r.clauses {
			if clause.Consequent == q && r.backwardChain(clause.Antecedent, inProgress) {
				return true
			}
		}
	case Conjunction:
		for _, clause := range r.clauses {
			if clause.Consequent == q.Left {
				if r.backwardChain(clause.Antecedent, inProgress) && r.backwardChain(q.Right, inProgress) {
					return true
				}
			} else if clause.Consequent == q.Right {
				if r.backwardChain(clause.Antecedent, inProgress) && r.backwardChain(q.Left, inProgress) {
					return true
				}
			}
		}
	}
	return false
}

// Facts returns the current knowledge base in sorted order.
func (r *Reasoner) Facts() []Atom {
	out := make([]Atom, 0, len(r.kb))
	for f := range r.kb {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}

// Reset restores the knowledge base to the initial facts, discarding
// anything derived by forward chaining.
func (r *Reasoner) Reset() {
	r.kb = make(map[Atom]struct{}, len(r.initial))
	for f := range r.initial {
		r.kb[f] = struct{}{}
	}
}

// String renders the clauses and current knowledge base for inspection.
func (r *Reasoner) String() string {
	var b strings.Builder
	rule := strings.Repeat("-", 80)

	b.WriteString("\n" + rule + "\nImplications:\n" + rule + "\n")
	for _, clause := range r.clauses {
		b.WriteString("\n" + clause.String())
	}
	b.WriteString("\n\n" + rule + "\nKnowledge Base:\n" + rule + "\n")
	for _, fact := range r.Facts() {
		b.WriteString("\n" + fact.String())
	}
	b.WriteString("\n" + rule + "\n")
	return b.String()
}
