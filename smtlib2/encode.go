package smtlib2

import (
	"fmt"
	"strconv"

	"github.com/devlynnx/smtutil"
)

// sortName returns the SMT-LIB2 surface syntax for sort, memoized by sort
// instance identity. First use of a tuple sort emits its datatype
// declaration into the current scope as a side effect.
func (s *Solver) sortName(sort smtutil.Sort) string {
	if name, ok := s.sortNames[sort]; ok {
		return name
	}
	name := s.sortString(sort)
	s.sortNames[sort] = name
	return name
}

func (s *Solver) sortString(sort smtutil.Sort) string {
	switch sort := sort.(type) {
	case *smtutil.IntSort:
		return "Int"
	case *smtutil.BoolSort:
		return "Bool"
	case *smtutil.BitVectorSort:
		return "(_ BitVec " + strconv.FormatUint(uint64(sort.Size), 10) + ")"
	case *smtutil.ArraySort:
		assert(sort.Domain != nil && sort.Range != nil, "array sort missing domain or range")
		return "(Array " + s.sortName(sort.Domain) + " " + s.sortName(sort.Range) + ")"
	case *smtutil.TupleSort:
		return s.declareTuple(sort)
	default:
		// Function sorts are declared through DeclareFunction, never
		// rendered inline; meta sorts never reach the encoder.
		panic(fmt.Sprintf("smtlib2: invalid sort %T", sort))
	}
}

// declareTuple returns the tuple's generated name, emitting its
// declare-datatypes command on first use. Member sorts are encoded before
// the declaration is assembled, so dependent datatypes are always declared
// first.
func (s *Solver) declareTuple(sort *smtutil.TupleSort) string {
	name := "|" + sort.Name + "|"
	for _, u := range s.userSorts {
		if u.name == name {
			return name
		}
	}

	assert(len(sort.Members) == len(sort.Components), "tuple sort %q: %d members but %d components", sort.Name, len(sort.Members), len(sort.Components))
	decl := "(declare-datatypes ((" + name + " 0)) (((" + name
	for i, member := range sort.Members {
		decl += " (|" + member + "| " + s.sortName(sort.Components[i]) + ")"
	}
	decl += "))))"

	s.userSorts = append(s.userSorts, userSort{name: name, decl: decl})
	s.write(decl)
	return name
}

// sortListName renders a domain sort list for a function declaration.
func (s *Solver) sortListName(sorts []smtutil.Sort) string {
	list := "("
	for _, sort := range sorts {
		list += s.sortName(sort) + " "
	}
	return list + ")"
}

// exprString renders an expression tree as an s-expression. Operations with
// no native SMT-LIB2 equivalent are rewritten here; everything else is the
// operator applied to its encoded arguments.
func (s *Solver) exprString(expr smtutil.Expression) string {
	if len(expr.Args) == 0 {
		return expr.Name
	}

	switch expr.Name {
	case "int2bv":
		return s.int2bvString(expr)
	case "bv2int":
		return s.bv2intString(expr)
	case "const_array":
		return s.constArrayString(expr)
	case "tuple_get":
		return s.tupleGetString(expr)
	case "tuple_constructor":
		return s.tupleConstructorString(expr)
	}

	sexpr := "(" + expr.Name
	for _, arg := range expr.Args {
		sexpr += " " + s.exprString(arg)
	}
	return sexpr + ")"
}

// int2bvString converts an integer to a bit vector. The native conversion is
// unsigned in some theories, so negative values are negated before the
// conversion and bit-negated after, reconstructing two's complement.
func (s *Solver) int2bvString(expr smtutil.Expression) string {
	assert(len(expr.Args) == 2, "int2bv: %d arguments, want 2", len(expr.Args))
	size, err := strconv.ParseUint(expr.Args[1].Name, 10, 64)
	assert(err == nil, "int2bv: width %q is not a numeral", expr.Args[1].Name)

	arg := s.exprString(expr.Args[0])
	int2bv := "(_ int2bv " + strconv.FormatUint(size, 10) + ")"
	return "(ite (>= " + arg + " 0) " +
		"(" + int2bv + " " + arg + ") " +
		"(bvneg (" + int2bv + " (- " + arg + "))))"
}

// bv2intString converts a bit vector to an integer. The native conversion is
// unsigned; for signed results the most-significant bit decides whether the
// value is read directly or as the negation of its two's complement.
func (s *Solver) bv2intString(expr smtutil.Expression) string {
	intSort, ok := expr.Sort.(*smtutil.IntSort)
	assert(ok, "bv2int: result sort is %T, not an integer sort", expr.Sort)
	assert(len(expr.Args) == 1, "bv2int: %d arguments, want 1", len(expr.Args))

	arg := s.exprString(expr.Args[0])
	nat := "(bv2nat " + arg + ")"
	if !intSort.Signed {
		return nat
	}

	bvSort, ok := expr.Args[0].Sort.(*smtutil.BitVectorSort)
	assert(ok, "bv2int: argument sort is %T, not a bit-vector sort", expr.Args[0].Sort)
	pos := strconv.FormatUint(uint64(bvSort.Size-1), 10)
	return "(ite (= ((_ extract " + pos + " " + pos + ")" + arg + ") #b0) " +
		nat + " " +
		"(- (bv2nat (bvneg " + arg + "))))"
}

// constArrayString renders an "array as constant" expression typed with the
// array sort carried by the witness argument.
func (s *Solver) constArrayString(expr smtutil.Expression) string {
	assert(len(expr.Args) == 2, "const_array: %d arguments, want 2", len(expr.Args))
	meta, ok := expr.Args[0].Sort.(*smtutil.MetaSort)
	assert(ok, "const_array: witness sort is %T, not a meta sort", expr.Args[0].Sort)
	arraySort, ok := meta.Inner.(*smtutil.ArraySort)
	assert(ok, "const_array: witness wraps %T, not an array sort", meta.Inner)

	return "((as const " + s.sortName(arraySort) + ") " + s.exprString(expr.Args[1]) + ")"
}

// tupleGetString renders a member access as an application of the accessor
// named at the literal index.
func (s *Solver) tupleGetString(expr smtutil.Expression) string {
	assert(len(expr.Args) == 2, "tuple_get: %d arguments, want 2", len(expr.Args))
	tupleSort, ok := expr.Args[0].Sort.(*smtutil.TupleSort)
	assert(ok, "tuple_get: argument sort is %T, not a tuple sort", expr.Args[0].Sort)
	index, err := strconv.Atoi(expr.Args[1].Name)
	assert(err == nil, "tuple_get: index %q is not a numeral", expr.Args[1].Name)
	assert(index >= 0 && index < len(tupleSort.Members), "tuple_get: index %d out of range for %q", index, tupleSort.Name)

	return "(|" + tupleSort.Members[index] + "| " + s.exprString(expr.Args[0]) + ")"
}

// tupleConstructorString renders a tuple construction as an application of
// the registered datatype's constructor.
func (s *Solver) tupleConstructorString(expr smtutil.Expression) string {
	tupleSort, ok := expr.Sort.(*smtutil.TupleSort)
	assert(ok, "tuple_constructor: sort is %T, not a tuple sort", expr.Sort)

	sexpr := "(|" + tupleSort.Name + "|"
	for _, arg := range expr.Args {
		sexpr += " " + s.exprString(arg)
	}
	return sexpr + ")"
}
