package smtutil

// Sort represents a type in the solver's logic.
//
// Sorts are referenced, not copied: backends key their caches on sort
// instance identity, so two structurally identical sorts built separately
// are treated as distinct.
type Sort interface {
	sortNode()
}

func (*IntSort) sortNode()       {}
func (*BoolSort) sortNode()      {}
func (*BitVectorSort) sortNode() {}
func (*ArraySort) sortNode()     {}
func (*TupleSort) sortNode()     {}
func (*FunctionSort) sortNode()  {}
func (*MetaSort) sortNode()      {}

// IntSort is the sort of mathematical integers. Signed records the intended
// signedness of bit-vector conversions targeting this sort; the integers
// themselves are unbounded either way.
type IntSort struct {
	Signed bool
}

// BoolSort is the boolean sort.
type BoolSort struct{}

// BitVectorSort is a fixed-width bit-vector sort.
type BitVectorSort struct {
	Size uint
}

// ArraySort maps a domain sort to a range sort.
type ArraySort struct {
	Domain Sort
	Range  Sort
}

// TupleSort is a user-defined datatype with a single constructor and one
// accessor per member. Members and Components are parallel: Members[i] names
// the accessor for the component of sort Components[i].
type TupleSort struct {
	Name       string
	Members    []string
	Components []Sort
}

// NewTupleSort returns a new tuple sort.
func NewTupleSort(name string, members []string, components []Sort) *TupleSort {
	assert(len(members) == len(components), "tuple sort %q: %d members but %d components", name, len(members), len(components))
	return &TupleSort{Name: name, Members: members, Components: components}
}

// FunctionSort is the sort of an uninterpreted function from the ordered
// Domain sorts to the Codomain sort.
type FunctionSort struct {
	Domain   []Sort
	Codomain Sort
}

// MetaSort carries another sort as a first-class value. It appears only as
// the sort of witness arguments, e.g. the array-sort witness of a constant
// array expression.
type MetaSort struct {
	Inner Sort
}
