// Package product composes finite algebras into direct products.
//
// A product over factors F_0..F_{N-1} is an algebra whose universe is the
// set of N-tuples (t_0..t_{N-1}) with t_k an element of F_k, and whose
// operations act coordinatewise. An external element index is assigned to
// each tuple by a canonical mixed-radix encoding (coordinate 0 least
// significant), so tuple↔index conversion is O(N) with no search.
//
// Operation sharing: an operation is exposed on the product iff every
// factor carries an operation of that name, with one arity; operations
// present in only some factors are excluded, and a same-named operation
// with conflicting arities is a construction error. Evaluation applies the
// k-th factor's operation to the k-th coordinates of the arguments and
// reassembles the results — the coordinatewise law
//
//	P.op(a_1..a_m)[k] == F_k.op(a_1[k]..a_m[k])
//
// is the central correctness property of this package.
//
// Power(factor, n) is the uniform special case with n identical factors.
//
// Errors:
//
//	ErrNoFactors         - zero factors requested (or Power with n < 1).
//	ErrNilFactor         - a nil factor pointer was passed.
//	ErrIncompatibleArity - same-named operation with differing arities.
//	ErrNoCommonOps       - no shared operation although some factor has one.
//	ErrTupleLen          - tuple length does not match the factor count.
package product
