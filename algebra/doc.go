// Package algebra provides the core data model for finite universal
// algebras: integer-coded universes, named operations, and table-backed
// evaluation.
//
// An Algebra is a cardinality n plus an ordered, name-unique collection of
// total operations over the universe {0, 1, ..., n-1}. Elements are plain
// ints; an operation's arguments form a tuple of exactly Arity() elements.
// Algebras are immutable once constructed; every derived structure
// (free algebras, products, quotients) is again an Algebra.
//
// Evaluation contract:
//   - wrong argument count       → ErrArityMismatch
//   - argument or result out of
//     range [0, cardinality)     → ErrElementRange
//
// Range correctness of table entries is enforced at construction time by
// NewTableOp, never re-checked per call on the hot path.
//
// Table-backed operations store their behavior as a flat slice indexed by
// the positional radix encoding of the argument tuple (base = cardinality),
// so evaluation is an O(arity) encode plus a single lookup.
package algebra
