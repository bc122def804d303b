package product

import "errors"

// Sentinel errors for product construction and indexing.
var (
	// ErrNoFactors indicates a product over zero factors (rejected by design).
	ErrNoFactors = errors.New("product: at least one factor is required")

	// ErrNilFactor indicates a nil factor algebra.
	ErrNilFactor = errors.New("product: factor algebra is nil")

	// ErrIncompatibleArity indicates a same-named operation with differing
	// arities across factors.
	ErrIncompatibleArity = errors.New("product: incompatible arities for shared operation")

	// ErrNoCommonOps indicates the factors share no operation name although
	// at least one factor declares operations.
	ErrNoCommonOps = errors.New("product: factors share no operation")

	// ErrTupleLen indicates a tuple whose length differs from the factor count.
	ErrTupleLen = errors.New("product: tuple length does not match factor count")
)
