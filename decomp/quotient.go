package decomp

import "github.com/katalvlaran/ualg/algebra"

// Quotient builds the algebra of p-blocks: universe {0..NumBlocks-1} in
// canonical label order, with every operation of a re-tabulated on block
// representatives. p must be a congruence of a — compatibility is what
// makes the tables independent of the representative choice, and it is
// verified up front rather than assumed.
//
// Errors: ErrNilAlgebra, ErrSizeMismatch, ErrNotCongruence.
// Complexity: congruence check plus O(Σ k^arity · arity) table filling for
// k = p.NumBlocks().
func Quotient(a *algebra.Algebra, p *Partition) (*algebra.Algebra, error) {
	compatible, err := IsCongruence(a, p)
	if err != nil {
		return nil, err
	}
	if !compatible {
		return nil, ErrNotCongruence
	}

	var (
		k      = p.NumBlocks()
		labels = p.Labels()
		reps   = p.Representatives()
		ops    = a.Operations()
		qops   = make([]algebra.Operation, 0, len(ops))
	)
	for _, op := range ops {
		m := op.Arity()
		table := make([]int, algebra.TableSize(k, m))
		argLabels := make([]int, m)
		args := make([]int, m)
		for idx := range table {
			algebra.DecodeArgs(idx, k, argLabels)
			for j, l := range argLabels {
				args[j] = reps[l]
			}
			v, evalErr := op.Eval(args)
			if evalErr != nil {
				return nil, evalErr
			}
			table[idx] = labels[v]
		}
		qop, opErr := algebra.NewTableOp(op.Name(), m, k, table)
		if opErr != nil {
			return nil, opErr
		}
		qops = append(qops, qop)
	}

	return algebra.New(k, qops...)
}
