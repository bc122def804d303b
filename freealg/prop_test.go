package freealg_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/ualg/algebra"
	"github.com/katalvlaran/ualg/freealg"
)

// baseFromSeeds builds a 2-element base algebra whose binary operation
// table is the 4 low bits of binSeed and whose unary table is the 2 low
// bits of unSeed. Every seed yields a valid, range-correct algebra.
func baseFromSeeds(binSeed, unSeed int) (*algebra.Algebra, error) {
	bin := []int{binSeed & 1, (binSeed >> 1) & 1, (binSeed >> 2) & 1, (binSeed >> 3) & 1}
	un := []int{unSeed & 1, (unSeed >> 1) & 1}

	f, err := algebra.NewTableOp("f", 2, 2, bin)
	if err != nil {
		return nil, err
	}
	g, err := algebra.NewTableOp("g", 1, 2, un)
	if err != nil {
		return nil, err
	}

	return algebra.New(2, f, g)
}

// Property-based test: the closure is always sound — every base operation
// applied coordinatewise to universe tuples lands back in the universe.
func TestBuild_PropertyClosureSound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("closure is sound for arbitrary 2-element bases", prop.ForAll(
		func(binSeed, unSeed, generators int) bool {
			base, err := baseFromSeeds(binSeed, unSeed)
			if err != nil {
				return false
			}
			f, err := freealg.Build(base, generators)
			if err != nil {
				return false
			}

			n := f.Cardinality()
			tuples := f.UniverseTuples()
			for _, op := range base.Operations() {
				m := op.Arity()
				argIdx := make([]int, m)
				args := make([]int, m)
				total := algebra.TableSize(n, m)
				for idx := 0; idx < total; idx++ {
					algebra.DecodeArgs(idx, n, argIdx)
					r := make([]int, f.TupleLen())
					for a := 0; a < f.TupleLen(); a++ {
						for j, ai := range argIdx {
							args[j] = tuples[ai][a]
						}
						v, evalErr := op.Eval(args)
						if evalErr != nil {
							return false
						}
						r[a] = v
					}
					if _, ok := f.Index(r); !ok {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(0, 15),
		gen.IntRange(0, 3),
		gen.IntRange(1, 2),
	))

	properties.TestingRun(t)
}

// Property-based test: rebuilding from identical inputs reproduces the
// universe ordering and every operation table bit for bit.
func TestBuild_PropertyDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("construction is deterministic", prop.ForAll(
		func(binSeed, unSeed, generators int) bool {
			base, err := baseFromSeeds(binSeed, unSeed)
			if err != nil {
				return false
			}
			f1, err := freealg.Build(base, generators)
			if err != nil {
				return false
			}
			f2, err := freealg.Build(base, generators)
			if err != nil {
				return false
			}
			if f1.Cardinality() != f2.Cardinality() {
				return false
			}

			u1, u2 := f1.UniverseTuples(), f2.UniverseTuples()
			for i := range u1 {
				for a := range u1[i] {
					if u1[i][a] != u2[i][a] {
						return false
					}
				}
			}

			ops1, ops2 := f1.Operations(), f2.Operations()
			for i := range ops1 {
				t1, ok1 := ops1[i].(*algebra.TableOp)
				t2, ok2 := ops2[i].(*algebra.TableOp)
				if !ok1 || !ok2 || t1.Name() != t2.Name() {
					return false
				}
				a1, a2 := t1.Table(), t2.Table()
				for k := range a1 {
					if a1[k] != a2[k] {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(0, 15),
		gen.IntRange(0, 3),
		gen.IntRange(1, 2),
	))

	properties.TestingRun(t)
}
