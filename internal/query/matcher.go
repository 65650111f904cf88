package query

import "github.com/roach88/sieve/internal/value"

// Matcher is a compiled query: a pure predicate from a document value to a
// boolean. A nil document argument means the absence marker.
//
// Matchers hold no mutable state. Compiling the same query twice yields
// matchers that agree on every document, and a single matcher may be
// invoked concurrently from multiple goroutines with no synchronization.
type Matcher func(doc value.Value) bool

// alwaysFalse is the matcher for malformed operator parameters: match time
// never fails, a bad parameter simply matches nothing.
func alwaysFalse(value.Value) bool { return false }

// conjoin combines matchers with logical AND. Zero matchers is vacuous
// truth.
func conjoin(matchers []Matcher) Matcher {
	if len(matchers) == 1 {
		return matchers[0]
	}
	return func(doc value.Value) bool {
		for _, m := range matchers {
			if !m(doc) {
				return false
			}
		}
		return true
	}
}
