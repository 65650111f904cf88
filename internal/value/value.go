package value

import (
	"regexp"
	"slices"
	"time"
	"unicode/utf16"
)

// Value is a sealed interface representing the closed set of document and
// query value kinds. Only Null, Bool, Int, Float, String, Array, Object,
// Date, DateTime, and Regex implement it.
//
// A nil Value is the absence marker: the result of resolving a path that
// does not exist in a document. Absent is distinct from an explicit Null.
type Value interface {
	value() // Sealed - only types in this package implement it
}

// Null represents an explicit null value.
// Using an explicit type keeps "null" distinct from "absent" (nil Value).
type Null struct{}

func (Null) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Int represents an integer value. Always int64.
type Int int64

func (Int) value() {}

// Float represents a floating-point value.
type Float float64

func (Float) value() {}

// String represents a text value.
type String string

func (String) value() {}

// Array represents an ordered sequence of values. Duplicates allowed,
// 0-indexed.
type Array []Value

func (Array) value() {}

// Object represents a map of string keys to values. Keys are unique and
// key order is not semantically meaningful. Use SortedKeys() for
// deterministic iteration.
type Object map[string]Value

func (Object) value() {}

// Date represents a calendar date (no time-of-day component).
// The underlying instant is normalized to midnight UTC; two Dates are
// equal iff they name the same calendar day.
type Date struct {
	Time time.Time
}

func (Date) value() {}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateTime represents an instant in time. Equality and ordering are
// chronological, not representational: the same instant in two zones
// compares equal.
type DateTime struct {
	Time time.Time
}

func (DateTime) value() {}

// NewDateTime creates a DateTime for the given instant.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// Regex represents a compiled pattern literal. A Regex query literal
// matches a String document value iff the pattern matches the text.
type Regex struct {
	Pattern *regexp.Regexp
}

func (Regex) value() {}

// NewRegex creates a Regex value from a compiled pattern.
func NewRegex(re *regexp.Regexp) Regex {
	return Regex{Pattern: re}
}

// Pair represents a key-value pair for typed Object construction.
type Pair struct {
	Key   string
	Value Value
}

// NewObjectFromPairs creates an Object from typed key-value pairs.
// Example: NewObjectFromPairs(O("name", String("cart")), O("count", Int(5)))
func NewObjectFromPairs(pairs ...Pair) Object {
	obj := make(Object, len(pairs))
	for _, p := range pairs {
		obj[p.Key] = p.Value
	}
	return obj
}

// O is a shorthand for Pair for ergonomic construction.
func O(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// Go's sort.Strings uses UTF-8 byte order which produces a DIFFERENT order
// for strings outside the ASCII range.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings using UTF-16 code unit ordering as
// required by RFC 8785 (Canonical JSON). Must use unicode/utf16.Encode for
// correct surrogate handling.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := len(a16)
	if len(b16) < minLen {
		minLen = len(b16)
	}

	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	if len(a16) < len(b16) {
		return -1
	}
	if len(a16) > len(b16) {
		return 1
	}
	return 0
}
