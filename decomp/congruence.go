package decomp

import (
	"sort"

	"github.com/katalvlaran/ualg/algebra"
)

// IsCongruence reports whether p is compatible with every operation of a:
// replacing one argument by a related element always yields related
// results. Single-coordinate compatibility suffices — the general
// substitution property follows by chaining one coordinate at a time.
//
// Errors: ErrNilAlgebra, ErrSizeMismatch.
// Complexity: O(pairs · Σ arity·n^(arity-1)) evaluations.
func IsCongruence(a *algebra.Algebra, p *Partition) (bool, error) {
	if a == nil {
		return false, ErrNilAlgebra
	}
	if p == nil || p.Size() != a.Cardinality() {
		return false, ErrSizeMismatch
	}

	n := a.Cardinality()
	labels := p.Labels()
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			if labels[x] != labels[y] {
				continue
			}
			related, err := substitutionsRelated(a, p, x, y)
			if err != nil {
				return false, err
			}
			if !related {
				return false, nil
			}
		}
	}

	return true, nil
}

// substitutionsRelated checks that every single-coordinate substitution of
// x by y into every operation yields p-related results.
func substitutionsRelated(a *algebra.Algebra, p *Partition, x, y int) (bool, error) {
	n := a.Cardinality()
	for _, op := range a.Operations() {
		m := op.Arity()
		if m == 0 {
			continue
		}
		others := make([]int, m-1)
		args := make([]int, m)
		total := algebra.TableSize(n, m-1)
		for pos := 0; pos < m; pos++ {
			for idx := 0; idx < total; idx++ {
				algebra.DecodeArgs(idx, n, others)
				fillArgs(args, others, pos, x)
				r1, err := op.Eval(args)
				if err != nil {
					return false, err
				}
				args[pos] = y
				r2, err := op.Eval(args)
				if err != nil {
					return false, err
				}
				same, err := p.Same(r1, r2)
				if err != nil {
					return false, err
				}
				if !same {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// PrincipalCongruence computes Cg(x, y): the smallest congruence of a
// relating x and y. Starting from the single merge, every newly related
// pair is pushed onto a FIFO worklist and closed under single-coordinate
// substitutions into every operation, in operation, position, and
// argument-combination order — fully deterministic.
//
// Errors: ErrNilAlgebra, algebra.ErrElementRange.
// Complexity: O(n² · Σ arity·n^(arity-1)) evaluations in the worst case.
func PrincipalCongruence(a *algebra.Algebra, x, y int) (*Partition, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	n := a.Cardinality()
	p, err := NewPartition(n)
	if err != nil {
		return nil, err
	}

	merged, err := p.Union(x, y)
	if err != nil {
		return nil, err
	}
	if !merged {
		// x == y: Cg is the identity partition.
		return p, nil
	}

	queue := [][2]int{{x, y}}
	for len(queue) > 0 {
		u, v := queue[0][0], queue[0][1]
		queue = queue[1:]

		for _, op := range a.Operations() {
			m := op.Arity()
			if m == 0 {
				continue
			}
			others := make([]int, m-1)
			args := make([]int, m)
			total := algebra.TableSize(n, m-1)
			for pos := 0; pos < m; pos++ {
				for idx := 0; idx < total; idx++ {
					algebra.DecodeArgs(idx, n, others)
					fillArgs(args, others, pos, u)
					r1, evalErr := op.Eval(args)
					if evalErr != nil {
						return nil, evalErr
					}
					args[pos] = v
					r2, evalErr := op.Eval(args)
					if evalErr != nil {
						return nil, evalErr
					}
					grew, unionErr := p.Union(r1, r2)
					if unionErr != nil {
						return nil, unionErr
					}
					if grew {
						queue = append(queue, [2]int{r1, r2})
					}
				}
			}
		}
	}

	return p, nil
}

// fillArgs assembles an argument tuple: others in order, with val at pos.
func fillArgs(args, others []int, pos, val int) {
	copy(args[:pos], others[:pos])
	args[pos] = val
	copy(args[pos+1:], others[pos:])
}

// Atoms returns the atoms of the congruence lattice of a: the minimal
// proper nontrivial congruences. Every atom is principal, so the principal
// congruences of all element pairs (enumerated lexicographically and
// deduplicated) are filtered down to their refinement-minimal members.
//
// Ordering: ascending witness size (number of related pairs), ties broken
// by the first generating pair — reproducible across runs.
//
// Errors: ErrNilAlgebra. Complexity: O(n²) principal-congruence runs.
func Atoms(a *algebra.Algebra) ([]*Partition, error) {
	if a == nil {
		return nil, ErrNilAlgebra
	}
	n := a.Cardinality()

	var (
		candidates []*Partition
		seen       = make(map[string]struct{})
	)
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			theta, err := PrincipalCongruence(a, x, y)
			if err != nil {
				return nil, err
			}
			if theta.IsAll() {
				// The full congruence is not a proper decomposition witness.
				continue
			}
			key := theta.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, theta)
		}
	}

	// Keep the refinement-minimal candidates: those are exactly the atoms,
	// since any congruence strictly below a candidate contains a principal
	// candidate below it as well.
	atoms := make([]*Partition, 0, len(candidates))
	order := make(map[string]int, len(candidates)) // discovery order for tie-breaks
	for i, c := range candidates {
		order[c.Key()] = i
		minimal := true
		for _, d := range candidates {
			if d == c {
				continue
			}
			below, err := d.Refines(c)
			if err != nil {
				return nil, err
			}
			if below {
				minimal = false

				break
			}
		}
		if minimal {
			atoms = append(atoms, c)
		}
	}

	sort.SliceStable(atoms, func(i, j int) bool {
		pi, pj := atoms[i].relatedPairs(), atoms[j].relatedPairs()
		if pi != pj {
			return pi < pj
		}

		return order[atoms[i].Key()] < order[atoms[j].Key()]
	})

	return atoms, nil
}

// AtomStrategy is the default decomposition strategy: quotients by the
// atoms of the congruence lattice, in Atoms order.
type AtomStrategy struct{}

// Candidates implements Strategy.
func (AtomStrategy) Candidates(a *algebra.Algebra) ([]*Partition, error) {
	return Atoms(a)
}
