package decomp

import "github.com/katalvlaran/ualg/algebra"

// State is the iterator's lifecycle state.
type State int

const (
	// Ready means at least one decomposition remains.
	Ready State = iota

	// Exhausted means no further decomposition exists.
	Exhausted
)

// Iterator enumerates the decompositions of one input algebra: the
// quotient by each strategy candidate, in candidate order. The candidate
// list is fixed at construction; quotients are computed lazily on Next.
//
// The Iterator owns its cursor exclusively. HasNext is a pure query;
// Next is a visible mutation and must be externally serialized if the
// iterator is shared across goroutines.
type Iterator struct {
	alg        *algebra.Algebra
	candidates []*Partition
	pos        int
}

// NewIterator constructs a decomposition iterator over a, using the
// congruence-atom strategy unless WithStrategy overrides it. The initial
// state is Ready iff the strategy found any candidate.
//
// Errors: ErrNilAlgebra, plus strategy failures.
func NewIterator(a *algebra.Algebra, opts ...Option) (*Iterator, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	o := gatherOptions(opts...)

	candidates, err := o.strategy.Candidates(a)
	if err != nil {
		return nil, err
	}

	return &Iterator{alg: a, candidates: candidates}, nil
}

// State returns Ready while decompositions remain, Exhausted afterwards.
func (it *Iterator) State() State {
	if it.pos < len(it.candidates) {
		return Ready
	}

	return Exhausted
}

// HasNext reports whether Next will succeed. Pure query, callable
// repeatedly without side effects.
func (it *Iterator) HasNext() bool { return it.State() == Ready }

// Remaining returns the number of decompositions not yet produced.
func (it *Iterator) Remaining() int { return len(it.candidates) - it.pos }

// Witness returns the congruence that will justify the next decomposition,
// without advancing. Second result is false when Exhausted.
func (it *Iterator) Witness() (*Partition, bool) {
	if !it.HasNext() {
		return nil, false
	}

	return it.candidates[it.pos].Clone(), true
}

// Next computes the next decomposition-derived algebra and advances the
// cursor. Errors: ErrExhausted once no candidate remains; no partial
// result is ever returned alongside an error.
func (it *Iterator) Next() (*algebra.Algebra, error) {
	if !it.HasNext() {
		return nil, ErrExhausted
	}

	q, err := Quotient(it.alg, it.candidates[it.pos])
	if err != nil {
		return nil, err
	}
	it.pos++

	return q, nil
}
