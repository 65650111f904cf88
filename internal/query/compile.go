package query

import (
	"strings"

	"github.com/roach88/sieve/internal/fieldpath"
	"github.com/roach88/sieve/internal/value"
)

// Compile builds a reusable matcher from a query value.
//
// Classification:
//  1. A pattern literal matches text documents against the pattern.
//  2. An object with at least one "$"-prefixed key is an operator
//     expression; each operator entry is compiled via the operator table
//     and the results are ANDed.
//  3. Any other object is a shape expression: each key is a dotted
//     property path, each value a nested query applied at that path.
//  4. Everything else is a literal, matched by deep equality.
//
// The only failure mode is an unrecognized operator name, which fails the
// whole compilation. Compilation never partially succeeds.
func Compile(q value.Value) (Matcher, error) {
	switch query := q.(type) {
	case value.Object:
		if isOperatorExpression(query) {
			return compileOperators(query)
		}
		return compileShape(query)
	default:
		// Covers pattern literals too: deep equality against a Regex is
		// the pattern match.
		return func(doc value.Value) bool {
			return value.Equal(doc, query)
		}, nil
	}
}

// isOperatorExpression reports whether an object carries at least one
// "$"-prefixed key. A mixed object (some operator keys, some not) is
// classified entirely as an operator expression; see compileOperators.
func isOperatorExpression(obj value.Object) bool {
	for k := range obj {
		if strings.HasPrefix(k, "$") {
			return true
		}
	}
	return false
}

// compileOperators compiles an operator expression. Sibling operator
// entries are conjoined: {"$gte": 2, "$lte": 5} requires both.
//
// Non-operator keys in a mixed object are skipped. This mirrors the
// reference behavior exactly, quirk included: {"$gt": 2, "name": "x"}
// tests only the $gt condition.
func compileOperators(obj value.Object) (Matcher, error) {
	// Sorted iteration so the same query always reports the same unknown
	// operator first.
	keys := obj.SortedKeys()
	matchers := make([]Matcher, 0, len(keys))
	for _, name := range keys {
		if !strings.HasPrefix(name, "$") {
			continue
		}
		build, registered := operators[name]
		if !registered {
			return nil, unknownOperator(name)
		}
		m, err := build(obj[name])
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return conjoin(matchers), nil
}

// compileShape compiles a shape expression. The resulting matcher requires
// the document to be an object and every property matcher to succeed.
func compileShape(obj value.Object) (Matcher, error) {
	keys := obj.SortedKeys()
	props := make([]Matcher, 0, len(keys))
	for _, path := range keys {
		prop, err := compileProperty(path, obj[path])
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	return func(doc value.Value) bool {
		if _, isObject := doc.(value.Object); !isObject {
			return false
		}
		for _, prop := range props {
			if !prop(doc) {
				return false
			}
		}
		return true
	}, nil
}

// compileProperty compiles a single (path, sub-query) shape entry into a
// property matcher, applying the implicit traversal policy.
//
// When the path resolves to an array, the condition is first tried against
// the whole array (so whole-array operators like $size, $all, or equality
// against an array literal fire), then against each element. The order is
// a deliberate tie-break: element-wise fallback first would shadow the
// whole-array operators on genuinely array-shaped fields.
//
// Two cases suppress traversal and test the resolved value directly:
//   - a numeric trailing segment, which addresses a position, and
//   - a sub-query carrying $type, which must inspect the container itself
//     rather than its elements.
func compileProperty(path string, sub value.Value) (Matcher, error) {
	resolver := fieldpath.New(path)
	inner, err := Compile(sub)
	if err != nil {
		return nil, err
	}

	direct := fieldpath.IsIndexSegment(resolver.LastSegment()) || forcesTypeCheck(sub)

	return func(doc value.Value) bool {
		actual, _ := resolver.Resolve(doc) // absent resolves to nil

		if arr, isArr := actual.(value.Array); isArr && !direct {
			if inner(actual) {
				return true
			}
			for _, elem := range arr {
				if inner(elem) {
					return true
				}
			}
			return false
		}

		return inner(actual)
	}, nil
}

// forcesTypeCheck reports whether a sub-query is an operator expression
// containing $type.
func forcesTypeCheck(sub value.Value) bool {
	obj, isObject := sub.(value.Object)
	if !isObject || !isOperatorExpression(obj) {
		return false
	}
	_, has := obj["$type"]
	return has
}
