// Package value provides the tagged value model shared by documents and
// query literals.
//
// This package contains type definitions and structural semantics only.
// All other internal packages import value; value imports nothing internal.
// This keeps the model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - The Value union is sealed: the closed kind set is Null, Bool, Int,
//     Float, String, Array, Object, Date, DateTime, Regex.
//   - A nil Value means "absent" (a path that resolved to nothing); an
//     explicit Null is a present value. The two are distinct everywhere
//     except deep equality against Null and the exists check.
//   - Values are immutable for the duration of a match; nothing in this
//     package mutates a document.
package value
