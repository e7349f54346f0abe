// Package filter holds the query predicates the API builds from request
// parameters. Stores translate them into their native query form; Matches
// evaluates them in process.
package filter

import (
	"fmt"
	"reflect"
	"strings"
)

// Predicate is one condition on a document. The concrete types are
// Contains, EqualFold and Equals.
type Predicate interface {
	Matches(doc map[string]any) bool
}

// Filter is a conjunction of predicates. The empty Filter matches every
// document.
type Filter []Predicate

// Matches reports whether doc satisfies every predicate.
func (f Filter) Matches(doc map[string]any) bool {
	for _, p := range f {
		if !p.Matches(doc) {
			return false
		}
	}
	return true
}

// Contains matches when any of Fields contains Value, ignoring case.
type Contains struct {
	Fields []string
	Value  string
}

func (c Contains) Matches(doc map[string]any) bool {
	needle := strings.ToLower(c.Value)
	for _, field := range c.Fields {
		s, ok := doc[field].(string)
		if ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// EqualFold matches when Field equals Value, ignoring case.
type EqualFold struct {
	Field string
	Value string
}

func (e EqualFold) Matches(doc map[string]any) bool {
	s, ok := doc[e.Field].(string)
	return ok && strings.EqualFold(s, e.Value)
}

// Equals matches when Field equals Value. Numbers compare by value
// regardless of their concrete type.
type Equals struct {
	Field string
	Value any
}

func (e Equals) Matches(doc map[string]any) bool {
	got, ok := doc[e.Field]
	if !ok {
		return false
	}
	if a, ok := toFloat(got); ok {
		b, ok := toFloat(e.Value)
		return ok && a == b
	}
	return reflect.DeepEqual(got, e.Value)
}

func (c Contains) String() string  { return fmt.Sprintf("%v contains %q", c.Fields, c.Value) }
func (e EqualFold) String() string { return fmt.Sprintf("%s ~= %q", e.Field, e.Value) }
func (e Equals) String() string    { return fmt.Sprintf("%s == %v", e.Field, e.Value) }

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
