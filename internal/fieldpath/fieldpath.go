// Package fieldpath compiles dotted property paths into reusable resolvers
// over the value model.
//
// A path like "user.profile.age" is split on "." and walked one object key
// per segment. Resolution is total: a missing key or a non-object
// intermediate yields the absence marker, never an error.
package fieldpath

import (
	"strings"

	"github.com/roach88/sieve/internal/value"
)

// Resolver walks a value along a fixed sequence of object keys.
// Compiled once per shape-expression entry; stateless and safe to share.
type Resolver struct {
	segments []string
}

// New compiles a dotted property path into a Resolver.
func New(path string) Resolver {
	return Resolver{segments: strings.Split(path, ".")}
}

// Segments returns the path segments in order.
func (r Resolver) Segments() []string {
	return r.segments
}

// LastSegment returns the final path segment, or "" for an empty path.
func (r Resolver) LastSegment() string {
	if len(r.segments) == 0 {
		return ""
	}
	return r.segments[len(r.segments)-1]
}

// Resolve walks root along the compiled path. With zero remaining segments
// the root is returned unchanged. A non-object intermediate or a missing
// key resolves to (nil, false): absent, distinct from an explicit Null
// value. There is no partial credit and no error.
func (r Resolver) Resolve(root value.Value) (value.Value, bool) {
	current := root
	for _, seg := range r.segments {
		obj, isObject := current.(value.Object)
		if !isObject {
			return nil, false
		}
		next, exists := obj[seg]
		if !exists {
			return nil, false
		}
		current = next
	}
	return current, true
}

// IsIndexSegment reports whether a segment parses fully as a non-negative
// integer. Such a trailing segment addresses a specific position, so the
// compiler suppresses implicit array traversal for it.
func IsIndexSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
