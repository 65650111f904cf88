package query

import (
	"regexp"
	"unicode/utf8"

	"github.com/roach88/sieve/internal/value"
)

// builder constructs a matcher from an operator's parameter.
//
// Builders return an error only when a nested query inside the parameter
// fails to compile (unknown operator). A malformed parameter is never an
// error: the builder returns alwaysFalse and the operator matches nothing.
type builder func(param value.Value) (Matcher, error)

// operators is the static operator table. Populated once in init and
// never mutated thereafter; the recursive builders ($elemMatch, $not,
// $and, $or, $nor) reach Compile, which reads the table back, so the
// entries cannot be package-level initializers.
var operators map[string]builder

func init() {
	operators = map[string]builder{
		"$eq":        buildEq,
		"$ne":        buildNe,
		"$gt":        buildCompare(func(cmp int) bool { return cmp > 0 }),
		"$gte":       buildCompare(func(cmp int) bool { return cmp >= 0 }),
		"$lt":        buildCompare(func(cmp int) bool { return cmp < 0 }),
		"$lte":       buildCompare(func(cmp int) bool { return cmp <= 0 }),
		"$in":        buildIn,
		"$nin":       buildNin,
		"$exists":    buildExists,
		"$type":      buildType,
		"$mod":       buildMod,
		"$regex":     buildRegex,
		"$all":       buildAll,
		"$size":      buildSize,
		"$elemMatch": buildElemMatch,
		"$not":       buildNot,
		"$and":       buildAnd,
		"$or":        buildOr,
		"$nor":       buildNor,
	}
}

func buildEq(param value.Value) (Matcher, error) {
	return func(doc value.Value) bool {
		return value.Equal(doc, param)
	}, nil
}

func buildNe(param value.Value) (Matcher, error) {
	return func(doc value.Value) bool {
		return !value.Equal(doc, param)
	}, nil
}

// buildCompare builds the ordered comparison operators. Ordering is
// defined only for numeric, string and same-kind temporal pairs; any other
// combination is unordered and matches nothing.
func buildCompare(want func(cmp int) bool) builder {
	return func(param value.Value) (Matcher, error) {
		return func(doc value.Value) bool {
			cmp, ok := value.Compare(doc, param)
			return ok && want(cmp)
		}, nil
	}
}

// buildIn matches when the document value occurs in the parameter list.
// An array document value is tested by intersection instead: some element
// of the document array must equal some element of the parameter list.
func buildIn(param value.Value) (Matcher, error) {
	candidates, ok := param.(value.Array)
	if !ok {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		if arr, isArr := doc.(value.Array); isArr {
			for _, elem := range arr {
				if containsEqual(candidates, elem) {
					return true
				}
			}
			return false
		}
		return containsEqual(candidates, doc)
	}, nil
}

// buildNin is the exact negation of buildIn, malformed parameters
// included: a non-list parameter makes $in match nothing, so $nin matches
// everything.
func buildNin(param value.Value) (Matcher, error) {
	in, err := buildIn(param)
	if err != nil {
		return nil, err
	}
	return func(doc value.Value) bool {
		return !in(doc)
	}, nil
}

func containsEqual(candidates value.Array, doc value.Value) bool {
	for _, candidate := range candidates {
		if value.Equal(doc, candidate) {
			return true
		}
	}
	return false
}

// buildExists tests presence. Both the absence marker and an explicit Null
// count as "does not exist".
func buildExists(param value.Value) (Matcher, error) {
	want := value.Truthy(param)
	return func(doc value.Value) bool {
		if doc == nil {
			return !want
		}
		if _, isNull := doc.(value.Null); isNull {
			return !want
		}
		return want
	}, nil
}

func buildType(param value.Value) (Matcher, error) {
	tag, ok := param.(value.String)
	if !ok {
		return alwaysFalse, nil
	}
	kind := value.ParseKind(string(tag))
	return func(doc value.Value) bool {
		return value.HasKind(doc, kind)
	}, nil
}

// buildMod expects [divisor, remainder], both integers, and matches
// integer document values with the given remainder. A zero divisor, a
// wrong-shaped parameter or a non-integer operand matches nothing.
func buildMod(param value.Value) (Matcher, error) {
	pair, ok := param.(value.Array)
	if !ok || len(pair) != 2 {
		return alwaysFalse, nil
	}
	divisor, dOK := pair[0].(value.Int)
	remainder, rOK := pair[1].(value.Int)
	if !dOK || !rOK || divisor == 0 {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		n, isInt := doc.(value.Int)
		return isInt && n%divisor == remainder
	}, nil
}

// buildRegex accepts a pattern literal or a text pattern source. The
// source is compiled here, once; an invalid source yields a matcher that
// matches nothing, preserving the never-fail contract at match time.
func buildRegex(param value.Value) (Matcher, error) {
	var re *regexp.Regexp
	switch p := param.(type) {
	case value.Regex:
		re = p.Pattern
	case value.String:
		compiled, err := regexp.Compile(string(p))
		if err != nil {
			return alwaysFalse, nil
		}
		re = compiled
	}
	if re == nil {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		s, isStr := doc.(value.String)
		return isStr && re.MatchString(string(s))
	}, nil
}

// buildAll matches array document values that contain an equal of every
// parameter element.
func buildAll(param value.Value) (Matcher, error) {
	wanted, ok := param.(value.Array)
	if !ok {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		arr, isArr := doc.(value.Array)
		if !isArr {
			return false
		}
		for _, w := range wanted {
			found := false
			for _, elem := range arr {
				if value.Equal(elem, w) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}, nil
}

// buildSize matches arrays of the given length and strings of the given
// character (rune) count.
func buildSize(param value.Value) (Matcher, error) {
	n, ok := param.(value.Int)
	if !ok {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		switch d := doc.(type) {
		case value.Array:
			return int64(len(d)) == int64(n)
		case value.String:
			return int64(utf8.RuneCountInString(string(d))) == int64(n)
		default:
			return false
		}
	}, nil
}

// buildElemMatch compiles its parameter as a nested query and matches
// array document values with at least one matching element.
func buildElemMatch(param value.Value) (Matcher, error) {
	inner, err := Compile(param)
	if err != nil {
		return nil, err
	}
	return func(doc value.Value) bool {
		arr, isArr := doc.(value.Array)
		if !isArr {
			return false
		}
		for _, elem := range arr {
			if inner(elem) {
				return true
			}
		}
		return false
	}, nil
}

func buildNot(param value.Value) (Matcher, error) {
	inner, err := Compile(param)
	if err != nil {
		return nil, err
	}
	return func(doc value.Value) bool {
		return !inner(doc)
	}, nil
}

func buildAnd(param value.Value) (Matcher, error) {
	clauses, err := compileClauses(param)
	if err != nil {
		return nil, err
	}
	if clauses == nil {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		for _, clause := range clauses {
			if !clause(doc) {
				return false
			}
		}
		return true
	}, nil
}

func buildOr(param value.Value) (Matcher, error) {
	clauses, err := compileClauses(param)
	if err != nil {
		return nil, err
	}
	if clauses == nil {
		return alwaysFalse, nil
	}
	return func(doc value.Value) bool {
		for _, clause := range clauses {
			if clause(doc) {
				return true
			}
		}
		return false
	}, nil
}

func buildNor(param value.Value) (Matcher, error) {
	or, err := buildOr(param)
	if err != nil {
		return nil, err
	}
	return func(doc value.Value) bool {
		return !or(doc)
	}, nil
}

// compileClauses compiles a list-of-queries parameter. A non-list
// parameter returns (nil, nil): the caller's operator matches nothing.
// Unknown operators inside any clause still fail the whole compilation.
func compileClauses(param value.Value) ([]Matcher, error) {
	list, ok := param.(value.Array)
	if !ok {
		return nil, nil
	}
	clauses := make([]Matcher, 0, len(list))
	for _, q := range list {
		m, err := Compile(q)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, m)
	}
	return clauses, nil
}
