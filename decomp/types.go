package decomp

import (
	"errors"

	"github.com/katalvlaran/ualg/algebra"
)

// Sentinel errors for decomposition operations.
var (
	// ErrNilAlgebra is returned if a nil algebra pointer is passed.
	ErrNilAlgebra = errors.New("decomp: algebra is nil")

	// ErrExhausted is returned by Next once no decomposition remains.
	ErrExhausted = errors.New("decomp: iterator exhausted")

	// ErrSizeMismatch indicates a partition over a different universe size
	// than the algebra it is applied to.
	ErrSizeMismatch = errors.New("decomp: partition size does not match algebra cardinality")

	// ErrNotCongruence indicates a quotient was requested by a partition
	// that is not compatible with every operation.
	ErrNotCongruence = errors.New("decomp: partition is not a congruence")

	// ErrBadUniverse indicates a partition request over fewer than 1 element.
	ErrBadUniverse = errors.New("decomp: universe size must be at least 1")
)

// Internal panic messages (programmer error only).
const panicNilStrategy = "decomp: WithStrategy: strategy must be non-nil"

// Strategy selects the decomposition candidates for an input algebra.
// Implementations must be deterministic and return a finite, ordered list
// of congruences of a; the Iterator yields the quotient by each in order.
type Strategy interface {
	// Candidates returns the ordered decomposition witnesses for a.
	Candidates(a *algebra.Algebra) ([]*Partition, error)
}

// Option configures iterator construction via functional arguments.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strategy Strategy
}

// WithStrategy replaces the default congruence-atom strategy.
// Panics with a stable message when strategy is nil (programmer error).
func WithStrategy(strategy Strategy) Option {
	if strategy == nil {
		panic(panicNilStrategy)
	}

	return func(o *Options) { o.strategy = strategy }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		strategy: AtomStrategy{},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
