package product

import "github.com/katalvlaran/ualg/algebra"

// coordOp is an algebra.Operation defined structurally on a Product:
// evaluation splits each argument into its factor coordinates, recurses
// into the matching factor operation per coordinate, and reassembles the
// results into one composite element. No table is materialized.
type coordOp struct {
	name  string
	arity int
	ops   []algebra.Operation // one per factor, same name and arity
	p     *Product
}

// Name returns the shared operation symbol.
func (o *coordOp) Name() string { return o.name }

// Arity returns the shared operation arity.
func (o *coordOp) Arity() int { return o.arity }

// Eval applies the operation coordinatewise.
//
// For each coordinate k, the k-th factor value of every argument forms the
// argument tuple of factor k's operation; the N results encode back into a
// single product element. Factor-level ErrArityMismatch/ErrElementRange
// propagate unchanged.
//
// Errors: algebra.ErrArityMismatch, algebra.ErrElementRange.
// Complexity: O(N · arity) plus the factor evaluations.
func (o *coordOp) Eval(args []int) (int, error) {
	if len(args) != o.arity {
		return 0, algebra.ErrArityMismatch
	}
	card := o.p.Cardinality()
	for _, a := range args {
		if a < 0 || a >= card {
			return 0, algebra.ErrElementRange
		}
	}

	var (
		coords = make([][]int, len(args)) // coords[j] = factor tuple of args[j]
		fargs  = make([]int, len(args))
		out    = 0
	)
	for j, a := range args {
		coords[j] = make([]int, len(o.p.factors))
		o.p.decode(a, coords[j])
	}
	for k, op := range o.ops {
		for j := range args {
			fargs[j] = coords[j][k]
		}
		v, err := op.Eval(fargs)
		if err != nil {
			return 0, err
		}
		if v < 0 || v >= o.p.factors[k].Cardinality() {
			// A factor operation returning out-of-range values is a defect
			// in that factor's construction; surface it, never encode it.
			return 0, algebra.ErrElementRange
		}
		out += v * o.p.place[k]
	}

	return out, nil
}
