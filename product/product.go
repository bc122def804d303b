package product

import (
	"github.com/katalvlaran/ualg/algebra"
)

// Product is a direct product of finite algebras. It is an algebra.Algebra
// (embedded) over the mixed-radix index space of factor-element tuples.
// Immutable once New returns; factors are referenced, never mutated.
type Product struct {
	*algebra.Algebra

	factors []*algebra.Algebra
	place   []int // place[k] = Π cardinality of factors 0..k-1
}

// New builds the direct product of the given factors, in order.
//
// Cardinality is the product of factor cardinalities. The operation set is
// the name-intersection of the factor operation sets, iterated in factor 0's
// operation order for determinism; see the package comment for sharing and
// arity rules.
//
// Errors: ErrNoFactors, ErrNilFactor, ErrIncompatibleArity, ErrNoCommonOps.
// Complexity: O(N · |ops|) plus factor cardinality multiplications.
func New(factors ...*algebra.Algebra) (*Product, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}
	for _, f := range factors {
		if f == nil {
			return nil, ErrNilFactor
		}
	}

	p := &Product{
		factors: append([]*algebra.Algebra(nil), factors...),
		place:   make([]int, len(factors)),
	}
	card := 1
	for k, f := range factors {
		p.place[k] = card
		card *= f.Cardinality()
	}

	shared, err := sharedOps(factors)
	if err != nil {
		return nil, err
	}

	ops := make([]algebra.Operation, 0, len(shared))
	for _, perFactor := range shared {
		ops = append(ops, &coordOp{
			name:  perFactor[0].Name(),
			arity: perFactor[0].Arity(),
			ops:   perFactor,
			p:     p,
		})
	}

	a, err := algebra.New(card, ops...)
	if err != nil {
		return nil, err
	}
	p.Algebra = a

	return p, nil
}

// Power builds the n-th direct power of factor: New with n identical factors.
// Errors: ErrNoFactors for n < 1, plus those of New.
func Power(factor *algebra.Algebra, n int) (*Product, error) {
	if n < 1 {
		return nil, ErrNoFactors
	}
	factors := make([]*algebra.Algebra, n)
	for k := range factors {
		factors[k] = factor
	}

	return New(factors...)
}

// sharedOps collects, per operation of factor 0 present in every factor,
// the corresponding operation of each factor. Order follows factor 0.
func sharedOps(factors []*algebra.Algebra) ([][]algebra.Operation, error) {
	var shared [][]algebra.Operation
	for _, op := range factors[0].Operations() {
		perFactor := make([]algebra.Operation, 0, len(factors))
		perFactor = append(perFactor, op)
		present := true
		for _, f := range factors[1:] {
			other, ok := f.Operation(op.Name())
			if !ok {
				present = false

				break
			}
			if other.Arity() != op.Arity() {
				return nil, ErrIncompatibleArity
			}
			perFactor = append(perFactor, other)
		}
		if present {
			shared = append(shared, perFactor)
		}
	}

	if len(shared) == 0 {
		for _, f := range factors {
			if len(f.Operations()) > 0 {
				return nil, ErrNoCommonOps
			}
		}
	}

	return shared, nil
}

// NumFactors returns the number of factors.
func (p *Product) NumFactors() int { return len(p.factors) }

// Factors returns the factor algebras in order. The slice is a copy.
func (p *Product) Factors() []*algebra.Algebra {
	return append([]*algebra.Algebra(nil), p.factors...)
}

// Index encodes a factor-element tuple into its canonical element index.
// Errors: ErrTupleLen, algebra.ErrElementRange. Complexity: O(N).
func (p *Product) Index(tuple []int) (int, error) {
	if len(tuple) != len(p.factors) {
		return 0, ErrTupleLen
	}
	index := 0
	for k, v := range tuple {
		if v < 0 || v >= p.factors[k].Cardinality() {
			return 0, algebra.ErrElementRange
		}
		index += v * p.place[k]
	}

	return index, nil
}

// Tuple decodes an element index into its factor-element tuple.
// Errors: algebra.ErrElementRange. Complexity: O(N).
func (p *Product) Tuple(index int) ([]int, error) {
	if index < 0 || index >= p.Cardinality() {
		return nil, algebra.ErrElementRange
	}
	dst := make([]int, len(p.factors))
	p.decode(index, dst)

	return dst, nil
}

// Tuples enumerates the universe as ordered factor-element tuples,
// index i holding element i's representation.
// Memory: O(cardinality · N) — intended for presenters on small products.
func (p *Product) Tuples() [][]int {
	out := make([][]int, p.Cardinality())
	for i := range out {
		out[i] = make([]int, len(p.factors))
		p.decode(i, out[i])
	}

	return out
}

// decode writes the mixed-radix digits of index into dst (coordinate 0
// least significant). Callers guarantee index is in range.
func (p *Product) decode(index int, dst []int) {
	for k, f := range p.factors {
		c := f.Cardinality()
		dst[k] = index % c
		index /= c
	}
}
