package commands

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/galois/errors"
	"github.com/teranos/galois/horn"
)

// ContextFile is the on-disk form of a binary relation: each entity maps
// to the attributes it carries.
type ContextFile struct {
	Description string              `yaml:"description,omitempty"`
	Relation    map[string][]string `yaml:"relation"`
}

// RulesFile is the on-disk form of a Horn program: initial facts plus
// implications with one- or two-atom antecedents.
type RulesFile struct {
	Description string      `yaml:"description,omitempty"`
	Facts       []string    `yaml:"facts"`
	Clauses     []ClauseDef `yaml:"clauses"`
}

// ClauseDef is a single implication. If lists the antecedent atoms,
// Then names the concluded atom.
type ClauseDef struct {
	If   []string `yaml:"if"`
	Then string   `yaml:"then"`
}

// LoadContextFile reads and parses a YAML relation file.
func LoadContextFile(path string) (*ContextFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read relation file %s", path)
	}

	var cf ContextFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse relation file %s", path)
	}
	if cf.Relation == nil {
		return nil, errors.Wrapf(errors.ErrMalformedRelation, "%s has no relation section", path)
	}
	return &cf, nil
}

// LoadRulesFile reads and parses a YAML Horn program.
func LoadRulesFile(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse rules file %s", path)
	}
	return &rf, nil
}

// Program converts the file form into reasoner clauses and facts.
func (rf *RulesFile) Program() ([]horn.Clause, []horn.Atom, error) {
	facts := make([]horn.Atom, 0, len(rf.Facts))
	for _, f := range rf.Facts {
		facts = append(facts, horn.NewAtom(f))
	}

	clauses := make([]horn.Clause, 0, len(rf.Clauses))
	for i, def := range rf.Clauses {
		if def.Then == "" {
			return nil, nil, errors.Newf("clause %d has no consequent", i)
		}
		antecedent, err := goalFromAtoms(def.If)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "clause %d", i)
		}
		clauses = append(clauses, horn.Clause{
			Antecedent: antecedent,
			Consequent: horn.NewAtom(def.Then),
		})
	}
	return clauses, facts, nil
}

// ParseGoal turns a query string into a goal. "a & b" is the conjunction
// of two atoms; anything else is a single atom.
func ParseGoal(query string) (horn.Goal, error) {
	parts := strings.Split(query, "&")
	atoms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errors.Newf("empty atom in query %q", query)
		}
		atoms = append(atoms, p)
	}
	return goalFromAtoms(atoms)
}

func goalFromAtoms(atoms []string) (horn.Goal, error) {
	switch len(atoms) {
	case 1:
		return horn.NewAtom(atoms[0]), nil
	case 2:
		return horn.Conjunction{Left: horn.NewAtom(atoms[0]), Right: horn.NewAtom(atoms[1])}, nil
	default:
		return nil, errors.Newf("goals take one or two atoms, got %d", len(atoms))
	}
}
