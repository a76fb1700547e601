package smtlib2_test

import (
	"strings"
	"testing"

	"github.com/devlynnx/smtutil/smtlib2"
	"github.com/google/go-cmp/cmp"
)

func TestParser_Parse(t *testing.T) {
	t.Run("Atom", func(t *testing.T) {
		expr, err := smtlib2.NewParser(strings.NewReader("foo")).Parse()
		if err != nil {
			t.Fatal(err)
		} else if diff := cmp.Diff(smtlib2.Atom("foo"), expr); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("NestedList", func(t *testing.T) {
		expr, err := smtlib2.NewParser(strings.NewReader("(a (b c) d)")).Parse()
		if err != nil {
			t.Fatal(err)
		}
		exp := smtlib2.List{
			smtlib2.Atom("a"),
			smtlib2.List{smtlib2.Atom("b"), smtlib2.Atom("c")},
			smtlib2.Atom("d"),
		}
		if diff := cmp.Diff(exp, expr); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		expr, err := smtlib2.NewParser(strings.NewReader("()")).Parse()
		if err != nil {
			t.Fatal(err)
		} else if list, ok := expr.(smtlib2.List); !ok || len(list) != 0 {
			t.Fatalf("expected empty list, got %s", expr)
		}
	})

	t.Run("QuotedAtom", func(t *testing.T) {
		expr, err := smtlib2.NewParser(strings.NewReader("(|a b| c)")).Parse()
		if err != nil {
			t.Fatal(err)
		}
		exp := smtlib2.List{smtlib2.Atom("a b"), smtlib2.Atom("c")}
		if diff := cmp.Diff(exp, expr); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Comments", func(t *testing.T) {
		in := "; header\n(a ; trailing\nb)"
		expr, err := smtlib2.NewParser(strings.NewReader(in)).Parse()
		if err != nil {
			t.Fatal(err)
		}
		exp := smtlib2.List{smtlib2.Atom("a"), smtlib2.Atom("b")}
		if diff := cmp.Diff(exp, expr); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Sequential", func(t *testing.T) {
		p := smtlib2.NewParser(strings.NewReader("(a) b"))
		if expr, err := p.Parse(); err != nil {
			t.Fatal(err)
		} else if diff := cmp.Diff(smtlib2.List{smtlib2.Atom("a")}, expr); diff != "" {
			t.Fatal(diff)
		}
		if expr, err := p.Parse(); err != nil {
			t.Fatal(err)
		} else if diff := cmp.Diff(smtlib2.Atom("b"), expr); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ErrUnexpectedEOF", func(t *testing.T) {
		for _, in := range []string{"", "(a b", "((a) (b)", "|a b", "   ; only a comment"} {
			t.Run(in, func(t *testing.T) {
				if _, err := smtlib2.NewParser(strings.NewReader(in)).Parse(); err != smtlib2.ErrUnexpectedEOF {
					t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
				}
			})
		}
	})
}

func TestSExpr_String(t *testing.T) {
	expr := smtlib2.List{
		smtlib2.Atom("a"),
		smtlib2.List{smtlib2.Atom("b"), smtlib2.Atom("c")},
		smtlib2.Atom("d"),
	}
	if got, exp := expr.String(), "(a (b c) d)"; got != exp {
		t.Fatalf("String()=%q, expected %q", got, exp)
	}
	if got, exp := (smtlib2.List{}).String(), "()"; got != exp {
		t.Fatalf("String()=%q, expected %q", got, exp)
	}
}
