package algebra

// This file implements table-backed operations and the positional radix
// codec shared by the free-algebra builder and the product package.
//
// Encoding convention (little-endian): an argument tuple (a0, a1, ..., ak-1)
// over a universe of cardinality c encodes to
//
//	a0 + a1·c + a2·c² + ... + ak-1·c^(k-1)
//
// so args[0] is the least-significant digit. Every table in this module
// uses this convention; mixing conventions is a construction-time defect.

// TableSize returns cardinality^arity, the length of a behavior table.
// Complexity: O(arity).
func TableSize(cardinality, arity int) int {
	size := 1
	for i := 0; i < arity; i++ {
		size *= cardinality
	}

	return size
}

// EncodeArgs maps an argument tuple to its radix index (base = cardinality).
// Returns ErrElementRange if any component lies outside [0, cardinality).
// Complexity: O(len(args)).
func EncodeArgs(args []int, cardinality int) (int, error) {
	index, place := 0, 1
	for _, a := range args {
		if a < 0 || a >= cardinality {
			return 0, ErrElementRange
		}
		index += a * place
		place *= cardinality
	}

	return index, nil
}

// DecodeArgs writes the radix digits of index (base = cardinality) into dst,
// inverting EncodeArgs for tuples of length len(dst).
// Complexity: O(len(dst)).
func DecodeArgs(index, cardinality int, dst []int) {
	for i := range dst {
		dst[i] = index % cardinality
		index /= cardinality
	}
}

// TableOp is an Operation backed by an explicit behavior table.
// The table is flat: entry EncodeArgs(args) holds the value of
// the operation on args. TableOp is immutable after NewTableOp returns.
type TableOp struct {
	name        string
	arity       int
	cardinality int
	table       []int
}

// NewTableOp builds a table-backed operation over a universe of the given
// cardinality.
//
// Validation (construction-time, per the range-correctness invariant):
//   - cardinality ≥ 1, arity ≥ 0, name non-empty
//   - len(table) == cardinality^arity (ErrTableSize)
//   - every table entry in [0, cardinality) (ErrElementRange)
//
// The table is copied; the caller keeps ownership of its slice.
// Complexity: O(cardinality^arity).
func NewTableOp(name string, arity, cardinality int, table []int) (*TableOp, error) {
	if cardinality < 1 {
		return nil, ErrBadCardinality
	}
	if arity < 0 {
		return nil, ErrBadArity
	}
	if name == "" {
		return nil, ErrEmptyOpName
	}
	if len(table) != TableSize(cardinality, arity) {
		return nil, ErrTableSize
	}
	for _, v := range table {
		if v < 0 || v >= cardinality {
			return nil, ErrElementRange
		}
	}

	op := &TableOp{
		name:        name,
		arity:       arity,
		cardinality: cardinality,
		table:       append([]int(nil), table...),
	}

	return op, nil
}

// Name returns the operation symbol.
func (op *TableOp) Name() string { return op.name }

// Arity returns the number of arguments.
func (op *TableOp) Arity() int { return op.arity }

// Eval looks up the operation's value on args.
// Errors: ErrArityMismatch, ErrElementRange. Complexity: O(arity).
func (op *TableOp) Eval(args []int) (int, error) {
	if len(args) != op.arity {
		return 0, ErrArityMismatch
	}
	index, err := EncodeArgs(args, op.cardinality)
	if err != nil {
		return 0, err
	}

	return op.table[index], nil
}

// Table returns a copy of the flat behavior table, in radix order.
// Intended for presenters; the receiver's table is never exposed directly.
func (op *TableOp) Table() []int {
	return append([]int(nil), op.table...)
}
