// Package freealg builds free algebras over a finite base algebra.
//
// The free algebra on g generators in the equational class generated by a
// base algebra B is computed concretely inside the direct power B^(|B|^g):
// each generator is the projection tuple that reads off one coordinate of
// an assignment of the g variables, and the universe is the closure of the
// generator tuples under every operation of B, applied coordinatewise.
//
// The closure runs to a fixed point: every operation is applied to every
// combination of already-discovered tuples until a full pass discovers
// nothing new. Tuples are compared by structural equality and indexed in
// first-discovered order, which makes the resulting universe ordering and
// operation tables deterministic for a given base.
//
// Termination is guaranteed only when the base's equational theory yields a
// finite free algebra on the requested generator count; the builder
// therefore enforces a caller-configurable universe-size bound and fails
// with ErrClosureBound instead of looping without limit.
//
// Errors:
//
//	ErrNilBase        - base algebra pointer is nil.
//	ErrGeneratorCount - requested generator count is below 1.
//	ErrClosureBound   - closure exceeded the configured universe bound.
package freealg
