package smtutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a node in a typed expression tree. Atoms (constants and
// variables) have no arguments; applications apply Name to the ordered
// arguments. Sort is optional and disambiguates signed/unsigned conversions
// and tuple and array typing. Expressions are immutable once built; backends
// borrow them, they never take ownership.
type Expression struct {
	Name string
	Args []Expression
	Sort Sort
}

// NewExpression returns an application of name to args.
func NewExpression(name string, sort Sort, args ...Expression) Expression {
	return Expression{Name: name, Args: args, Sort: sort}
}

// NewVariable returns a reference to a declared symbol.
func NewVariable(name string, sort Sort) Expression {
	return Expression{Name: name, Sort: sort}
}

// NewIntConst returns an integer numeral.
func NewIntConst(value int64) Expression {
	return Expression{Name: strconv.FormatInt(value, 10), Sort: &IntSort{Signed: true}}
}

// NewBoolConst returns a boolean literal.
func NewBoolConst(value bool) Expression {
	return Expression{Name: strconv.FormatBool(value), Sort: &BoolSort{}}
}

// Equal returns lhs = rhs.
func Equal(lhs, rhs Expression) Expression {
	return NewExpression("=", &BoolSort{}, lhs, rhs)
}

// And returns the conjunction of lhs and rhs.
func And(lhs, rhs Expression) Expression {
	return NewExpression("and", &BoolSort{}, lhs, rhs)
}

// Or returns the disjunction of lhs and rhs.
func Or(lhs, rhs Expression) Expression {
	return NewExpression("or", &BoolSort{}, lhs, rhs)
}

// Not returns the negation of expr.
func Not(expr Expression) Expression {
	return NewExpression("not", &BoolSort{}, expr)
}

// Plus returns lhs + rhs.
func Plus(lhs, rhs Expression) Expression {
	return NewExpression("+", lhs.Sort, lhs, rhs)
}

// Minus returns lhs - rhs.
func Minus(lhs, rhs Expression) Expression {
	return NewExpression("-", lhs.Sort, lhs, rhs)
}

// Ite returns whenTrue if cond holds and whenFalse otherwise.
func Ite(cond, whenTrue, whenFalse Expression) Expression {
	return NewExpression("ite", whenTrue.Sort, cond, whenTrue, whenFalse)
}

// Select returns the element of array at index.
func Select(array, index Expression) Expression {
	var rng Sort
	if sort, ok := array.Sort.(*ArraySort); ok {
		rng = sort.Range
	}
	return NewExpression("select", rng, array, index)
}

// Store returns array with index overwritten by value.
func Store(array, index, value Expression) Expression {
	return NewExpression("store", array.Sort, array, index, value)
}

// Int2BV converts an integer expression to a bit vector of the given width.
// Negative values take the two's-complement bit pattern.
func Int2BV(expr Expression, size uint) Expression {
	width := Expression{Name: strconv.FormatUint(uint64(size), 10)}
	return NewExpression("int2bv", &BitVectorSort{Size: size}, expr, width)
}

// BV2Int converts a bit-vector expression to an integer, read as signed or
// unsigned two's complement according to signed.
func BV2Int(expr Expression, signed bool) Expression {
	return NewExpression("bv2int", &IntSort{Signed: signed}, expr)
}

// ConstArray returns an array of the given sort holding value at every index.
func ConstArray(sort *ArraySort, value Expression) Expression {
	witness := Expression{Sort: &MetaSort{Inner: sort}}
	return NewExpression("const_array", sort, witness, value)
}

// TupleGet returns the member of tuple at the given index. The tuple
// expression must carry a tuple sort.
func TupleGet(tuple Expression, index int) Expression {
	sort, ok := tuple.Sort.(*TupleSort)
	assert(ok, "tuple_get on non-tuple expression %q", tuple.Name)
	assert(index >= 0 && index < len(sort.Components), "tuple index %d out of range for %q", index, sort.Name)
	idx := Expression{Name: strconv.Itoa(index)}
	return NewExpression("tuple_get", sort.Components[index], tuple, idx)
}

// TupleConstructor returns a tuple of the given sort built from members.
func TupleConstructor(sort *TupleSort, members ...Expression) Expression {
	assert(len(members) == len(sort.Components), "tuple %q: constructed with %d members, want %d", sort.Name, len(members), len(sort.Components))
	return NewExpression("tuple_constructor", sort, members...)
}

// String returns the string representation of the expression.
func (e Expression) String() string {
	if len(e.Args) == 0 {
		return e.Name
	}
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("(%s %s)", e.Name, strings.Join(args, " "))
}
