package freealg

import (
	"strconv"

	"github.com/katalvlaran/ualg/algebra"
)

// Free is a free algebra built over a base algebra. It is an
// algebra.Algebra (embedded) whose elements are, internally, tuples of
// base elements of length base.Cardinality()^generators, indexed in
// first-discovered closure order. Immutable once Build returns.
type Free struct {
	*algebra.Algebra

	base     *algebra.Algebra
	tupleLen int
	tuples   [][]int
	gens     []int
	index    map[string]int
}

// Build computes the free algebra on `generators` generators over base.
//
// Algorithm:
//  1. Seed the universe with the generator tuples: generator i maps each
//     variable assignment a (radix-encoded, base = |B|) to its i-th digit.
//  2. Close under every base operation, applied coordinatewise, until a
//     full pass over all operations discovers no new tuple. New tuples are
//     appended in discovery order; duplicates are detected by structural
//     equality.
//  3. Derive one behavior table per base operation over the final universe
//     by re-applying the operation at the tuple level and recording result
//     indices.
//
// Errors: ErrNilBase, ErrGeneratorCount, ErrClosureBound.
//
// Complexity: O(P · |ops| · n^maxArity · tupleLen) for P closure passes and
// final universe size n; memory O(n · tupleLen + Σ n^arity).
func Build(base *algebra.Algebra, generators int, opts ...Option) (*Free, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	if generators < 1 {
		return nil, ErrGeneratorCount
	}
	o := gatherOptions(opts...)

	card := base.Cardinality()
	tupleLen := algebra.TableSize(card, generators)

	f := &Free{
		base:     base,
		tupleLen: tupleLen,
		index:    make(map[string]int),
	}

	// 1. Seed generators. Generator i reads the i-th digit of each
	// assignment index, so distinct variables stay distinguishable exactly
	// as far as the base algebra can tell them apart.
	digits := make([]int, generators)
	f.gens = make([]int, generators)
	for i := 0; i < generators; i++ {
		t := make([]int, tupleLen)
		for a := 0; a < tupleLen; a++ {
			algebra.DecodeArgs(a, card, digits)
			t[a] = digits[i]
		}
		idx, _, err := f.add(t, o.maxUniverse)
		if err != nil {
			return nil, err
		}
		f.gens[i] = idx
	}

	ops := base.Operations()

	// 2. Fixed-point closure. Each operation scans argument combinations
	// over the universe as it stood when the operation's turn began; the
	// outer loop repeats until a full pass adds nothing, so the final pass
	// certifies closure of the complete universe under every operation.
	for changed := true; changed; {
		changed = false
		for _, op := range ops {
			added, err := f.closeUnder(op, o.maxUniverse)
			if err != nil {
				return nil, err
			}
			changed = changed || added
		}
	}

	// 3. Derive operation tables on the closed universe.
	n := len(f.tuples)
	derived := make([]algebra.Operation, 0, len(ops))
	for _, op := range ops {
		m := op.Arity()
		table := make([]int, algebra.TableSize(n, m))
		argIdx := make([]int, m)
		for idx := range table {
			algebra.DecodeArgs(idx, n, argIdx)
			r, err := f.applyPointwise(op, argIdx)
			if err != nil {
				return nil, err
			}
			ri, ok := f.index[tupleKey(r)]
			if !ok {
				panic(panicClosureInvariant)
			}
			table[idx] = ri
		}
		top, err := algebra.NewTableOp(op.Name(), m, n, table)
		if err != nil {
			return nil, err
		}
		derived = append(derived, top)
	}

	a, err := algebra.New(n, derived...)
	if err != nil {
		return nil, err
	}
	f.Algebra = a

	return f, nil
}

// closeUnder applies op to every combination of currently known tuples and
// appends undiscovered results. Reports whether anything was added.
func (f *Free) closeUnder(op algebra.Operation, maxUniverse int) (bool, error) {
	var (
		m      = op.Arity()
		n      = len(f.tuples) // snapshot; growth is picked up by the next pass
		argIdx = make([]int, m)
		added  bool
	)
	total := algebra.TableSize(n, m)
	for idx := 0; idx < total; idx++ {
		algebra.DecodeArgs(idx, n, argIdx)
		r, err := f.applyPointwise(op, argIdx)
		if err != nil {
			return false, err
		}
		_, fresh, err := f.add(r, maxUniverse)
		if err != nil {
			return false, err
		}
		added = added || fresh
	}

	return added, nil
}

// applyPointwise evaluates op coordinatewise on the tuples named by argIdx.
func (f *Free) applyPointwise(op algebra.Operation, argIdx []int) ([]int, error) {
	var (
		r    = make([]int, f.tupleLen)
		args = make([]int, len(argIdx))
		err  error
	)
	for a := 0; a < f.tupleLen; a++ {
		for j, ai := range argIdx {
			args[j] = f.tuples[ai][a]
		}
		if r[a], err = op.Eval(args); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// add registers t if unseen, enforcing the universe bound.
// Returns (index, freshly-added, error). The tuple is stored as-is; callers
// must not retain or mutate it afterwards.
func (f *Free) add(t []int, maxUniverse int) (int, bool, error) {
	key := tupleKey(t)
	if idx, ok := f.index[key]; ok {
		return idx, false, nil
	}
	if len(f.tuples) >= maxUniverse {
		return 0, false, ErrClosureBound
	}
	idx := len(f.tuples)
	f.tuples = append(f.tuples, t)
	f.index[key] = idx

	return idx, true, nil
}

// Base returns the base algebra the free algebra was built over.
func (f *Free) Base() *algebra.Algebra { return f.base }

// GeneratorCount returns the number of requested generators.
func (f *Free) GeneratorCount() int { return len(f.gens) }

// Generators returns the universe index of each generator, in generator
// order. Over a one-element base all generators collapse to index 0.
func (f *Free) Generators() []int {
	return append([]int(nil), f.gens...)
}

// TupleLen returns the internal tuple length, base.Cardinality()^generators.
func (f *Free) TupleLen() int { return f.tupleLen }

// UniverseTuples returns the ordered universe as tuples of base elements,
// index i holding element i's representation. The result is a deep copy.
func (f *Free) UniverseTuples() [][]int {
	out := make([][]int, len(f.tuples))
	for i, t := range f.tuples {
		out[i] = append([]int(nil), t...)
	}

	return out
}

// Index returns the universe index of the given tuple representation.
func (f *Free) Index(tuple []int) (int, bool) {
	if len(tuple) != f.tupleLen {
		return 0, false
	}
	idx, ok := f.index[tupleKey(tuple)]

	return idx, ok
}

// tupleKey encodes a tuple for structural-equality lookups.
func tupleKey(t []int) string {
	buf := make([]byte, 0, len(t)*3)
	for _, v := range t {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ',')
	}

	return string(buf)
}
