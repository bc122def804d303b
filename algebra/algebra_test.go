package algebra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ualg/algebra"
)

// meet2 returns the binary meet operation on {0,1} (0 = bottom).
func meet2(t *testing.T) *algebra.TableOp {
	t.Helper()
	// args encode little-endian: index = x + 2y.
	op, err := algebra.NewTableOp("meet", 2, 2, []int{0, 0, 0, 1})
	if err != nil {
		t.Fatalf("NewTableOp error: %v", err)
	}

	return op
}

// TestNewTableOp_Errors verifies construction-time validation.
func TestNewTableOp_Errors(t *testing.T) {
	cases := []struct {
		name  string
		arity int
		card  int
		table []int
		err   error
	}{
		{"BadCardinality", 1, 0, []int{}, algebra.ErrBadCardinality},
		{"NegativeArity", -1, 2, []int{}, algebra.ErrBadArity},
		{"ShortTable", 2, 2, []int{0, 0, 0}, algebra.ErrTableSize},
		{"LongTable", 1, 2, []int{0, 1, 0}, algebra.ErrTableSize},
		{"EntryOutOfRange", 1, 2, []int{0, 2}, algebra.ErrElementRange},
		{"NegativeEntry", 1, 2, []int{0, -1}, algebra.ErrElementRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := algebra.NewTableOp("f", tc.arity, tc.card, tc.table)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewTableOp error = %v; want %v", err, tc.err)
			}
		})
	}

	if _, err := algebra.NewTableOp("", 0, 1, []int{0}); !errors.Is(err, algebra.ErrEmptyOpName) {
		t.Errorf("empty name error = %v; want ErrEmptyOpName", err)
	}
}

// TestTableOp_Eval checks lookup, arity and range enforcement.
func TestTableOp_Eval(t *testing.T) {
	op := meet2(t)

	cases := []struct {
		name string
		args []int
		want int
		err  error
	}{
		{"Meet00", []int{0, 0}, 0, nil},
		{"Meet01", []int{0, 1}, 0, nil},
		{"Meet10", []int{1, 0}, 0, nil},
		{"Meet11", []int{1, 1}, 1, nil},
		{"TooFewArgs", []int{1}, 0, algebra.ErrArityMismatch},
		{"TooManyArgs", []int{1, 1, 1}, 0, algebra.ErrArityMismatch},
		{"ArgOutOfRange", []int{0, 2}, 0, algebra.ErrElementRange},
		{"NegativeArg", []int{-1, 0}, 0, algebra.ErrElementRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := op.Eval(tc.args)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Eval(%v) error = %v; want %v", tc.args, err, tc.err)
			}
			if err == nil && got != tc.want {
				t.Errorf("Eval(%v) = %d; want %d", tc.args, got, tc.want)
			}
		})
	}
}

// TestTableOp_Nullary exercises a constant (arity-0) operation.
func TestTableOp_Nullary(t *testing.T) {
	c, err := algebra.NewTableOp("one", 0, 2, []int{1})
	if err != nil {
		t.Fatalf("NewTableOp error: %v", err)
	}
	got, err := c.Eval(nil)
	if err != nil {
		t.Fatalf("Eval(nil) error: %v", err)
	}
	if got != 1 {
		t.Errorf("Eval(nil) = %d; want 1", got)
	}
}

// TestNew_Errors verifies Algebra construction validation.
func TestNew_Errors(t *testing.T) {
	meet := meet2(t)

	if _, err := algebra.New(0); !errors.Is(err, algebra.ErrBadCardinality) {
		t.Errorf("New(0) error = %v; want ErrBadCardinality", err)
	}
	if _, err := algebra.New(2, nil); !errors.Is(err, algebra.ErrNilOp) {
		t.Errorf("New(2, nil) error = %v; want ErrNilOp", err)
	}
	if _, err := algebra.New(2, meet, meet); !errors.Is(err, algebra.ErrDuplicateOp) {
		t.Errorf("duplicate op error = %v; want ErrDuplicateOp", err)
	}
}

// TestAlgebra_Accessors covers Cardinality, Operations order, lookup and Evaluate.
func TestAlgebra_Accessors(t *testing.T) {
	meet := meet2(t)
	one, err := algebra.NewTableOp("one", 0, 2, []int{1})
	if err != nil {
		t.Fatalf("NewTableOp error: %v", err)
	}
	a, err := algebra.New(2, meet, one)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if a.Cardinality() != 2 {
		t.Errorf("Cardinality = %d; want 2", a.Cardinality())
	}

	ops := a.Operations()
	if len(ops) != 2 || ops[0].Name() != "meet" || ops[1].Name() != "one" {
		t.Errorf("Operations order = %v; want [meet one]", ops)
	}

	if _, ok := a.Operation("join"); ok {
		t.Error("Operation(join) found; want absent")
	}

	got, err := a.Evaluate("meet", []int{1, 1})
	if err != nil || got != 1 {
		t.Errorf("Evaluate(meet,[1,1]) = %d, %v; want 1, nil", got, err)
	}
	if _, err = a.Evaluate("join", []int{0, 0}); !errors.Is(err, algebra.ErrOpNotFound) {
		t.Errorf("Evaluate(join) error = %v; want ErrOpNotFound", err)
	}
}

// TestRadixCodec verifies EncodeArgs/DecodeArgs agree on the documented
// little-endian convention.
func TestRadixCodec(t *testing.T) {
	// (2,0,1) over cardinality 3 → 2 + 0·3 + 1·9 = 11.
	index, err := algebra.EncodeArgs([]int{2, 0, 1}, 3)
	if err != nil {
		t.Fatalf("EncodeArgs error: %v", err)
	}
	if index != 11 {
		t.Errorf("EncodeArgs = %d; want 11", index)
	}

	dst := make([]int, 3)
	algebra.DecodeArgs(11, 3, dst)
	if dst[0] != 2 || dst[1] != 0 || dst[2] != 1 {
		t.Errorf("DecodeArgs(11) = %v; want [2 0 1]", dst)
	}

	if _, err = algebra.EncodeArgs([]int{3}, 3); !errors.Is(err, algebra.ErrElementRange) {
		t.Errorf("EncodeArgs out-of-range error = %v; want ErrElementRange", err)
	}

	if got := algebra.TableSize(3, 0); got != 1 {
		t.Errorf("TableSize(3,0) = %d; want 1", got)
	}
	if got := algebra.TableSize(2, 3); got != 8 {
		t.Errorf("TableSize(2,3) = %d; want 8", got)
	}
}
