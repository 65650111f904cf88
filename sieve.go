// Package sieve evaluates declarative, MongoDB-style filter expressions
// against structured in-memory values.
//
// A query compiles once into a Matcher, a pure predicate applied per
// document thereafter. Documents and queries enter as ordinary parsed Go
// data (maps, slices, numbers, strings, time.Time, *regexp.Regexp), the
// shapes produced by encoding/json or yaml unmarshaling.
//
// The error contract is two-tier: Compile fails on an unrecognized
// operator name (the only failure mode), while matching is total. A
// malformed or type-mismatched document never crashes a filtering pass, it
// simply fails to match.
package sieve

import (
	"fmt"

	"github.com/roach88/sieve/internal/query"
	"github.com/roach88/sieve/internal/value"
)

// Matcher is a compiled query, safe to store and reuse. It holds no
// mutable state: a single Matcher may be applied concurrently from
// multiple goroutines with no synchronization.
type Matcher struct {
	match query.Matcher
}

// Compile builds a reusable Matcher from a query. It fails if the query
// contains an unrecognized operator name (check with IsUnknownOperator)
// or is not value-model-shaped; otherwise it always succeeds.
func Compile(q any) (*Matcher, error) {
	qv, err := value.FromAny(q)
	if err != nil {
		return nil, fmt.Errorf("convert query: %w", err)
	}
	m, err := query.Compile(qv)
	if err != nil {
		return nil, err
	}
	return &Matcher{match: m}, nil
}

// Match reports whether a document matches. It never fails: a document
// that cannot be converted to the value model simply does not match.
func (m *Matcher) Match(doc any) bool {
	dv, err := value.FromAny(doc)
	if err != nil {
		return false
	}
	return m.match(dv)
}

// IsUnknownOperator reports whether an error from Compile names an
// unrecognized operator.
func IsUnknownOperator(err error) bool {
	return query.IsUnknownOperator(err)
}

// Test compiles the query and applies it to a single document.
// Equivalent to Compile(q) followed by Match(doc).
func Test(doc, q any) (bool, error) {
	m, err := Compile(q)
	if err != nil {
		return false, err
	}
	return m.Match(doc), nil
}

// Filter returns the items matching the query, preserving their original
// relative order.
func Filter[T any](items []T, q any) ([]T, error) {
	m, err := Compile(q)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.Match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Find returns the first item, in iteration order, matching the query.
// ok is false when nothing matches.
func Find[T any](items []T, q any) (found T, ok bool, err error) {
	m, err := Compile(q)
	if err != nil {
		return found, false, err
	}
	for _, item := range items {
		if m.Match(item) {
			return item, true, nil
		}
	}
	return found, false, nil
}

// Any reports whether at least one item matches the query.
func Any[T any](items []T, q any) (bool, error) {
	m, err := Compile(q)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if m.Match(item) {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every item matches the query. True for an empty
// collection.
func All[T any](items []T, q any) (bool, error) {
	m, err := Compile(q)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if !m.Match(item) {
			return false, nil
		}
	}
	return true, nil
}

// Count returns the number of items matching the query.
func Count[T any](items []T, q any) (int, error) {
	m, err := Compile(q)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, item := range items {
		if m.Match(item) {
			n++
		}
	}
	return n, nil
}
