// Package algebra defines the Operation contract, sentinel errors, and the
// Algebra constructor used by every other subpackage of
// github.com/katalvlaran/ualg.
package algebra

import "errors"

// Sentinel errors for algebra construction and evaluation.
var (
	// ErrArityMismatch indicates the argument count differs from the operation arity.
	ErrArityMismatch = errors.New("algebra: argument count does not match operation arity")

	// ErrElementRange indicates an argument or table entry lies outside [0, cardinality).
	ErrElementRange = errors.New("algebra: element index out of range")

	// ErrBadCardinality indicates a requested cardinality below 1.
	ErrBadCardinality = errors.New("algebra: cardinality must be at least 1")

	// ErrBadArity indicates a negative operation arity.
	ErrBadArity = errors.New("algebra: arity must be non-negative")

	// ErrEmptyOpName indicates an operation with an empty name.
	ErrEmptyOpName = errors.New("algebra: operation name is empty")

	// ErrDuplicateOp indicates two operations sharing one name on the same algebra.
	ErrDuplicateOp = errors.New("algebra: duplicate operation name")

	// ErrNilOp indicates a nil Operation passed to a constructor.
	ErrNilOp = errors.New("algebra: operation is nil")

	// ErrOpNotFound indicates evaluation was requested for an unknown operation name.
	ErrOpNotFound = errors.New("algebra: operation not found")

	// ErrTableSize indicates a behavior table whose length is not cardinality^arity.
	ErrTableSize = errors.New("algebra: table length must equal cardinality^arity")
)

// Operation is a named, total, finitary operation owned by exactly one
// Algebra. Implementations are immutable after construction.
//
// Eval returns the operation's value on args, which must contain exactly
// Arity() elements of the owner's universe. Implementations report
// ErrArityMismatch and ErrElementRange; they never panic on bad input.
type Operation interface {
	// Name returns the operation symbol, unique within its Algebra.
	Name() string

	// Arity returns the number of arguments (≥ 0).
	Arity() int

	// Eval computes the operation's value on the given argument tuple.
	Eval(args []int) (int, error)
}
