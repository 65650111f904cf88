package value

import "strings"

// Kind names a value kind for type tests. The tag set is fixed; anything
// else normalizes to KindUnknown, which no value ever has.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number" // matches both integer and float
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindBoolean  Kind = "boolean"
	KindMap      Kind = "map"
	KindList     Kind = "list"
	KindAtom     Kind = "atom" // recognized tag; no value carries this kind
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
	KindNull     Kind = "null"
	KindUnknown  Kind = "unknown"
)

// KindOf returns the kind of a value. An absent value (nil) and any
// unexpected implementation report KindUnknown.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Null:
		return KindNull
	case Bool:
		return KindBoolean
	case Int:
		return KindInteger
	case Float:
		return KindFloat
	case String:
		return KindString
	case Array:
		return KindList
	case Object:
		return KindMap
	case Date:
		return KindDate
	case DateTime:
		return KindDateTime
	default:
		// Regex literals and absent values have no tag in the set.
		return KindUnknown
	}
}

// ParseKind normalizes a type tag, case-insensitively, to a Kind.
// Unrecognized tags map to KindUnknown rather than erroring; a type test
// against KindUnknown never matches.
func ParseKind(tag string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(tag))) {
	case KindString:
		return KindString
	case KindNumber:
		return KindNumber
	case KindInteger:
		return KindInteger
	case KindFloat:
		return KindFloat
	case KindBoolean:
		return KindBoolean
	case KindMap:
		return KindMap
	case KindList:
		return KindList
	case KindAtom:
		return KindAtom
	case KindDate:
		return KindDate
	case KindDateTime:
		return KindDateTime
	case KindNull:
		return KindNull
	default:
		return KindUnknown
	}
}

// HasKind reports whether a value's actual kind satisfies a type tag.
// KindNumber accepts both integers and floats. KindUnknown and KindAtom
// never match: the model carries a single canonical text representation,
// so no value is ever an atom.
func HasKind(v Value, k Kind) bool {
	switch k {
	case KindUnknown, KindAtom:
		return false
	case KindNumber:
		actual := KindOf(v)
		return actual == KindInteger || actual == KindFloat
	default:
		return KindOf(v) == k
	}
}

// Truthy reports the truthiness of a value for parameter checks like the
// exists operator: false only for absence, Null, and Bool(false).
func Truthy(v Value) bool {
	switch b := v.(type) {
	case nil:
		return false
	case Null:
		return false
	case Bool:
		return bool(b)
	default:
		return true
	}
}
