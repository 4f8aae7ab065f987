package lattice

import (
	"sort"
	"strings"
)

// Set is an unordered, hash-based collection of identifiers.
// No ordering is implied; the enumerator imposes its own fixed total order
// separately when it needs one.
type Set map[string]struct{}

// NewSet builds a Set from the given members.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Has reports whether m is a member of s.
func (s Set) Has(m string) bool {
	_, ok := s[m]
	return ok
}

// Add inserts m into s.
func (s Set) Add(m string) {
	s[m] = struct{}{}
}

// Remove deletes m from s.
func (s Set) Remove(m string) {
	delete(s, m)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for m := range s {
		out[m] = struct{}{}
	}
	return out
}

// Equal reports whether s and o contain exactly the same members.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for m := range s {
		if !o.Has(m) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every member of s is in o.
func (s Set) SubsetOf(o Set) bool {
	if len(s) > len(o) {
		return false
	}
	for m := range s {
		if !o.Has(m) {
			return false
		}
	}
	return true
}

// StrictSubsetOf reports whether s is a subset of o and o has at least one
// member not in s.
func (s Set) StrictSubsetOf(o Set) bool {
	return len(s) < len(o) && s.SubsetOf(o)
}

// Intersect returns the members present in both s and o.
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if len(o) < len(s) {
		small, large = o, s
	}
	out := make(Set)
	for m := range small {
		if large.Has(m) {
			out[m] = struct{}{}
		}
	}
	return out
}

// Union returns the members present in either s or o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for m := range s {
		out[m] = struct{}{}
	}
	for m := range o {
		out[m] = struct{}{}
	}
	return out
}

// Diff returns the members of s that are not in o.
func (s Set) Diff(o Set) Set {
	out := make(Set)
	for m := range s {
		if !o.Has(m) {
			out[m] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members of s in ascending lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Key returns a canonical encoding of s, suitable as a map key.
// The unit separator keeps multi-word identifiers unambiguous.
func (s Set) Key() string {
	return strings.Join(s.Sorted(), "\x1f")
}

// String renders s as {a, b, c} with sorted members, for logs and errors.
func (s Set) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
