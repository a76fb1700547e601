// Package smtutil provides a typed sort and expression model for
// satisfiability-modulo-theories problems, together with the verdict and
// callback types shared by solver backends.
package smtutil

import "fmt"

// CheckResult is the coarse outcome of a satisfiability check.
type CheckResult int

// Possible check results. Conflicting is only ever produced by cross-backend
// disagreement; a single backend never reports it.
const (
	Satisfiable CheckResult = iota
	Unsatisfiable
	Unknown
	Conflicting
	Error
)

var checkResults = [...]string{
	Satisfiable:   "sat",
	Unsatisfiable: "unsat",
	Unknown:       "unknown",
	Conflicting:   "conflicting",
	Error:         "error",
}

// String returns the string representation of the result.
func (r CheckResult) String() string {
	if r >= 0 && int(r) < len(checkResults) {
		return checkResults[r]
	}
	return fmt.Sprintf("CheckResult<%d>", int(r))
}

// QueryCallback submits one query to an external solver process and returns
// its raw textual response. The kind tag carries the query kind prefix plus
// the backend-specific invocation string. A non-nil error means the backend
// produced no response at all.
type QueryCallback func(kind, query string) (response string, err error)

// Solver is an incremental interface to an SMT solver.
//
// A Solver owns one logical session: declarations and assertions accumulate
// until Reset, and Push/Pop delimit nested assertion scopes. Implementations
// are not safe for concurrent use; callers needing parallelism must use
// independent instances.
type Solver interface {
	// Reset discards all declarations, assertions and scopes.
	Reset()

	// Push opens a nested assertion scope; Pop discards the most recent one.
	Push()
	Pop()

	// DeclareVariable declares a zero-arity symbol of the given sort.
	// Function sorts are routed to DeclareFunction. Re-declaring an existing
	// name is a no-op.
	DeclareVariable(name string, sort Sort)

	// DeclareFunction declares an uninterpreted function symbol.
	// Re-declaring an existing name is a no-op.
	DeclareFunction(name string, sort Sort)

	// Assert adds a boolean constraint to the current scope.
	Assert(expr Expression)

	// Check determines satisfiability of the accumulated assertions. If the
	// verdict is Satisfiable, the returned values hold one raw solver value
	// per requested expression, in request order.
	Check(exprs []Expression) (CheckResult, []string)

	// DumpQuery returns the full query text Check would send, without
	// invoking any backend.
	DumpQuery(exprs []Expression) string
}

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
