package catalog

import (
	"strings"

	"github.com/colegiosanjose/portal/core"
)

// Accessor reads one string field of a record.
type Accessor[T any] func(T) string

// Constraint is an exact-match condition on a categorical field.
type Constraint struct {
	Field string
	Value string
}

// IsAny reports whether the constraint accepts every value.
func (c Constraint) IsAny() bool {
	switch strings.ToLower(core.CleanString(c.Value)) {
	case "", "all", "any":
		return true
	}
	return false
}

// Criteria is a free-text query plus categorical constraints, combined with AND.
type Criteria struct {
	Query       string
	Constraints []Constraint
}

// Where returns a copy of the criteria with one more constraint.
func (c Criteria) Where(field, value string) Criteria {
	cons := make([]Constraint, 0, len(c.Constraints)+1)
	cons = append(cons, c.Constraints...)
	c.Constraints = append(cons, Constraint{Field: field, Value: value})
	return c
}

// Value returns the value constrained on field, or "" if there is none.
func (c Criteria) Value(field string) string {
	for _, cons := range c.Constraints {
		if cons.Field == field && !cons.IsAny() {
			return cons.Value
		}
	}
	return ""
}

func (c *Criteria) Clean() {
	c.Query = core.CleanString(c.Query)
	for i := range c.Constraints {
		c.Constraints[i].Value = core.CleanString(c.Constraints[i].Value)
	}
}

func (c Criteria) IsEmpty() bool {
	if strings.TrimSpace(c.Query) != "" {
		return false
	}
	for _, cons := range c.Constraints {
		if !cons.IsAny() {
			return false
		}
	}
	return true
}

// Schema describes how one entity kind is filtered:
// the fields the text query searches and the categorical fields constraints may name.
type Schema[T any] struct {
	Search []Accessor[T]
	Fields map[string]Accessor[T]
}

// Filter returns the records matching all of the criteria, in their original order.
// The query matches case-insensitively as a substring of any Search field.
// A constraint on a field the schema does not declare matches nothing.
func (s Schema[T]) Filter(items []T, criteria Criteria) []T {
	if criteria.IsEmpty() {
		return items
	}
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if s.matchesQuery(item, query) && s.matchesConstraints(item, criteria.Constraints) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s Schema[T]) matchesQuery(item T, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range s.Search {
		if strings.Contains(strings.ToLower(field(item)), query) {
			return true
		}
	}
	return false
}

func (s Schema[T]) matchesConstraints(item T, constraints []Constraint) bool {
	for _, cons := range constraints {
		if cons.IsAny() {
			continue
		}
		field, ok := s.Fields[cons.Field]
		if !ok || field(item) != strings.TrimSpace(cons.Value) {
			return false
		}
	}
	return true
}
