package algebra

// Algebra is an immutable finite algebra: a cardinality plus an ordered,
// name-unique collection of operations over the universe {0..cardinality-1}.
//
// Operation order is the construction order and is significant: derived
// structures (free algebras, products, quotients) iterate operations in
// this order, which makes every construction in this module deterministic.
type Algebra struct {
	cardinality int
	ops         []Operation
	byName      map[string]Operation
}

// New constructs an Algebra over {0..cardinality-1} with the given
// operations, kept in argument order.
//
// Errors: ErrBadCardinality, ErrNilOp, ErrEmptyOpName, ErrDuplicateOp.
// Range correctness of each operation is the operation constructor's
// responsibility (see NewTableOp); New checks structure, not tables.
// Complexity: O(len(ops)).
func New(cardinality int, ops ...Operation) (*Algebra, error) {
	if cardinality < 1 {
		return nil, ErrBadCardinality
	}

	a := &Algebra{
		cardinality: cardinality,
		ops:         make([]Operation, 0, len(ops)),
		byName:      make(map[string]Operation, len(ops)),
	}
	for _, op := range ops {
		if op == nil {
			return nil, ErrNilOp
		}
		if op.Name() == "" {
			return nil, ErrEmptyOpName
		}
		if _, dup := a.byName[op.Name()]; dup {
			return nil, ErrDuplicateOp
		}
		a.ops = append(a.ops, op)
		a.byName[op.Name()] = op
	}

	return a, nil
}

// Cardinality returns the number of elements in the universe.
func (a *Algebra) Cardinality() int { return a.cardinality }

// Operations returns the operations in construction order.
// The returned slice is a copy; mutating it does not affect the Algebra.
func (a *Algebra) Operations() []Operation {
	return append([]Operation(nil), a.ops...)
}

// Operation returns the operation with the given name, if present.
func (a *Algebra) Operation(name string) (Operation, bool) {
	op, ok := a.byName[name]

	return op, ok
}

// Evaluate applies the named operation to args.
// Errors: ErrOpNotFound, plus the operation's own ErrArityMismatch /
// ErrElementRange. Complexity: O(arity) for table-backed operations.
func (a *Algebra) Evaluate(name string, args []int) (int, error) {
	op, ok := a.byName[name]
	if !ok {
		return 0, ErrOpNotFound
	}

	return op.Eval(args)
}
