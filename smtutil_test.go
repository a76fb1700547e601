package smtutil_test

import (
	"testing"

	"github.com/devlynnx/smtutil"
)

func TestCheckResult_String(t *testing.T) {
	tests := []struct {
		result smtutil.CheckResult
		exp    string
	}{
		{smtutil.Satisfiable, "sat"},
		{smtutil.Unsatisfiable, "unsat"},
		{smtutil.Unknown, "unknown"},
		{smtutil.Conflicting, "conflicting"},
		{smtutil.Error, "error"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.exp {
			t.Fatalf("String()=%q, expected %q", got, tt.exp)
		}
	}
}

func TestExpression_String(t *testing.T) {
	intSort := &smtutil.IntSort{Signed: true}
	x := smtutil.NewVariable("x", intSort)

	t.Run("Atom", func(t *testing.T) {
		if got := x.String(); got != "x" {
			t.Fatalf("String()=%q", got)
		}
	})
	t.Run("Application", func(t *testing.T) {
		expr := smtutil.And(
			smtutil.Equal(x, smtutil.NewIntConst(1)),
			smtutil.Not(smtutil.NewBoolConst(false)),
		)
		if got, exp := expr.String(), "(and (= x 1) (not false))"; got != exp {
			t.Fatalf("String()=%q, expected %q", got, exp)
		}
	})
}

func TestExpression_Sorts(t *testing.T) {
	intSort := &smtutil.IntSort{Signed: true}
	x := smtutil.NewVariable("x", intSort)

	t.Run("IntConst", func(t *testing.T) {
		c := smtutil.NewIntConst(-3)
		if c.Name != "-3" {
			t.Fatalf("Name=%q", c.Name)
		}
		sort, ok := c.Sort.(*smtutil.IntSort)
		if !ok || !sort.Signed {
			t.Fatalf("Sort=%v", c.Sort)
		}
	})
	t.Run("Comparison", func(t *testing.T) {
		if _, ok := smtutil.Equal(x, x).Sort.(*smtutil.BoolSort); !ok {
			t.Fatal("equality must be boolean-sorted")
		}
	})
	t.Run("Arithmetic", func(t *testing.T) {
		if smtutil.Plus(x, x).Sort != intSort {
			t.Fatal("sum must carry the operand sort")
		}
	})
	t.Run("Ite", func(t *testing.T) {
		expr := smtutil.Ite(smtutil.NewBoolConst(true), x, smtutil.NewIntConst(0))
		if expr.Sort != intSort {
			t.Fatal("ite must carry the branch sort")
		}
	})
	t.Run("Select", func(t *testing.T) {
		arr := &smtutil.ArraySort{Domain: &smtutil.IntSort{}, Range: &smtutil.BoolSort{}}
		a := smtutil.NewVariable("a", arr)
		if expr := smtutil.Select(a, x); expr.Sort != arr.Range {
			t.Fatal("select must carry the array range sort")
		}
	})
	t.Run("Store", func(t *testing.T) {
		arr := &smtutil.ArraySort{Domain: &smtutil.IntSort{}, Range: &smtutil.BoolSort{}}
		a := smtutil.NewVariable("a", arr)
		if expr := smtutil.Store(a, x, smtutil.NewBoolConst(true)); expr.Sort != arr {
			t.Fatal("store must carry the array sort")
		}
	})
	t.Run("Conversions", func(t *testing.T) {
		bv := smtutil.Int2BV(x, 8)
		if sort, ok := bv.Sort.(*smtutil.BitVectorSort); !ok || sort.Size != 8 {
			t.Fatalf("Sort=%v", bv.Sort)
		}
		back := smtutil.BV2Int(bv, true)
		if sort, ok := back.Sort.(*smtutil.IntSort); !ok || !sort.Signed {
			t.Fatalf("Sort=%v", back.Sort)
		}
		if sort, ok := smtutil.BV2Int(bv, false).Sort.(*smtutil.IntSort); !ok || sort.Signed {
			t.Fatalf("Sort=%v", sort)
		}
	})
}

func TestTupleExpressions(t *testing.T) {
	pair := smtutil.NewTupleSort("pair", []string{"fst", "snd"}, []smtutil.Sort{
		&smtutil.IntSort{Signed: true},
		&smtutil.BoolSort{},
	})
	p := smtutil.NewVariable("p", pair)

	t.Run("GetPropagatesComponentSort", func(t *testing.T) {
		if got := smtutil.TupleGet(p, 0); got.Sort != pair.Components[0] {
			t.Fatalf("Sort=%v", got.Sort)
		}
		if got := smtutil.TupleGet(p, 1); got.Sort != pair.Components[1] {
			t.Fatalf("Sort=%v", got.Sort)
		}
	})
	t.Run("GetOutOfRange", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		smtutil.TupleGet(p, 2)
	})
	t.Run("ConstructorArity", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		smtutil.TupleConstructor(pair, smtutil.NewIntConst(1))
	})
}
