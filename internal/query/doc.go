// Package query compiles declarative filter expressions into reusable
// matchers over the value model.
//
// A query is itself a value, classified recursively: a pattern literal
// matches text, an object with at least one "$"-prefixed key is an
// operator expression, any other object is a shape expression mapping
// dotted property paths to nested sub-queries, and everything else is
// matched by deep equality.
//
// The error contract is two-tier and sharp: an unrecognized operator name
// fails compilation (the only failure mode), while a compiled Matcher is
// total and never fails: type-mismatched operands, malformed parameters
// and absent paths all simply fail to match.
package query
