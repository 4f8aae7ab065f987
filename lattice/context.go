// Package lattice computes the concept lattice of a formal context.
//
// A formal context is a binary relation between entities and attributes.
// From it the package derives every formal concept (a maximal
// extension/intension pair closed under the Galois connection), enumerates
// the concepts in lectic order with Ganter's Next Closure algorithm, and
// derives the direct-cover edges of the lattice's Hasse diagram.
//
// The computation is a deterministic, single-shot batch transform: given
// the same relation, Build always produces the same concept sequence and
// cover graph. A Context is not safe for concurrent use.
package lattice

import (
	"github.com/teranos/galois/errors"
)

// DefaultMaxAttributes bounds the attribute universe accepted by New.
// Concept lattices are worst-case exponential in the number of attributes,
// so oversized universes are refused unless the caller raises the limit.
const DefaultMaxAttributes = 64

// Context holds a formal context: the entity→attributes incidence relation
// and its derived inverse. Both are fixed at construction and read-only for
// the lifetime of the Context.
type Context struct {
	relation   map[string]Set // entity -> attributes it has
	inverted   map[string]Set // attribute -> entities that have it
	entities   Set
	attributes Set

	// order is the fixed total order over the attribute universe used by
	// the enumerator for lectic comparison: ascending lexicographic.
	order []string

	// closures memoizes ClosureAttrs keyed on the canonical encoding of
	// its input, since the enumerator and the cover builder revisit the
	// same subsets repeatedly.
	closures map[string]Set

	maxAttributes int
}

// Option configures Context construction.
type Option func(*Context)

// WithMaxAttributes overrides the attribute-universe bound enforced by New.
func WithMaxAttributes(n int) Option {
	return func(c *Context) {
		c.maxAttributes = n
	}
}

// New builds a Context from an entity→attribute-list relation.
//
// Each entity's attribute list must be a proper set: a duplicated attribute
// is a malformed relation and fails construction. An attribute universe
// larger than the configured bound also fails construction, before any
// concept is emitted. An empty relation, and entities with no attributes,
// are valid degenerate inputs.
func New(relation map[string][]string, opts ...Option) (*Context, error) {
	c := &Context{
		relation:      make(map[string]Set, len(relation)),
		inverted:      make(map[string]Set),
		entities:      make(Set, len(relation)),
		attributes:    make(Set),
		closures:      make(map[string]Set),
		maxAttributes: DefaultMaxAttributes,
	}
	for _, opt := range opts {
		opt(c)
	}

	for entity, attrs := range relation {
		row := make(Set, len(attrs))
		for _, attr := range attrs {
			if row.Has(attr) {
				return nil, errors.NewMalformedRelationError(
					"entity %q lists attribute %q more than once", entity, attr)
			}
			row.Add(attr)
			c.attributes.Add(attr)
		}
		c.relation[entity] = row
		c.entities.Add(entity)
	}

	if len(c.attributes) > c.maxAttributes {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrTooManyAttributes,
				"attribute universe has %d attributes, limit is %d",
				len(c.attributes), c.maxAttributes),
			"raise the limit with lattice.WithMaxAttributes(%d)", len(c.attributes))
	}

	c.invertRelation()
	c.order = c.attributes.Sorted()

	return c, nil
}

// invertRelation derives the attribute→entities map from the relation.
// It is computed once; the engine never updates it incrementally.
func (c *Context) invertRelation() {
	for entity, attrs := range c.relation {
		for attr := range attrs {
			if _, ok := c.inverted[attr]; !ok {
				c.inverted[attr] = make(Set)
			}
			c.inverted[attr].Add(entity)
		}
	}
}

// Entities returns a copy of the entity universe.
func (c *Context) Entities() Set {
	return c.entities.Clone()
}

// Attributes returns a copy of the attribute universe.
func (c *Context) Attributes() Set {
	return c.attributes.Clone()
}

// AttributeOrder returns the fixed total order the enumerator uses,
// ascending lexicographic over the attribute universe.
func (c *Context) AttributeOrder() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
