// Package smtlib2 implements a textual SMT-LIB2 backend for smtutil.Solver.
//
// Each solver invocation is a fresh, stateless external process, so the
// package emulates incremental push/pop semantics by accumulating command
// text per scope and replaying the full context on every check. The same
// query is dispatched to every enabled backend and the per-backend verdicts
// are reconciled into a single result.
package smtlib2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/devlynnx/smtutil"
)

// QueryKind prefixes the kind tag handed to the invocation callback.
const QueryKind = "smt-query"

// Ensure solver implements interface.
var _ smtutil.Solver = (*Solver)(nil)

// Solver translates a session of declarations and assertions into SMT-LIB2
// text and delegates satisfiability checks to external solver processes
// through a caller-supplied callback. Not safe for concurrent use.
type Solver struct {
	callback smtutil.QueryCallback
	config   Config

	// Scope stack: one accumulated-command buffer per open scope. The
	// concatenation of all buffers is the current logical context.
	output []string

	variables *immutable.SortedMap
	userSorts []userSort
	sortNames map[smtutil.Sort]string

	unhandled []string
}

// userSort records an emitted declare-datatypes command.
type userSort struct {
	name string
	decl string
}

// NewSolver returns a solver that queries the backends enabled in config
// through callback. The callback may be nil if the solver is only used to
// build query text via DumpQuery.
func NewSolver(callback smtutil.QueryCallback, config Config) *Solver {
	s := &Solver{callback: callback, config: config}
	s.Reset()
	return s
}

// Reset reinitializes the whole session: a single fresh scope, a fresh
// option/logic preamble, and cleared symbol and sort tables.
func (s *Solver) Reset() {
	s.output = []string{""}
	s.variables = immutable.NewSortedMap(&stringComparer{})
	s.userSorts = nil
	s.sortNames = make(map[smtutil.Sort]string)

	s.write("(set-option :produce-models true)")
	if s.config.QueryTimeoutMS > 0 {
		s.write("(set-option :timeout " + strconv.Itoa(s.config.QueryTimeoutMS) + ")")
	}
	s.write("(set-logic ALL)")
}

// Push opens a nested assertion scope.
func (s *Solver) Push() {
	s.output = append(s.output, "")
}

// Pop discards the most recent scope. Popping the root scope is a contract
// violation.
func (s *Solver) Pop() {
	assert(len(s.output) > 1, "pop on root scope")
	s.output = s.output[:len(s.output)-1]
}

// DeclareVariable declares a zero-arity symbol of the given sort, routing
// function sorts to DeclareFunction. Re-declaring a name is a no-op; the
// requested sort is not checked against the existing one.
func (s *Solver) DeclareVariable(name string, sort smtutil.Sort) {
	assert(sort != nil, "declare %q: nil sort", name)
	if _, ok := sort.(*smtutil.FunctionSort); ok {
		s.DeclareFunction(name, sort)
		return
	}
	if _, ok := s.variables.Get(name); ok {
		return
	}
	s.variables = s.variables.Set(name, sort)
	s.write("(declare-fun |" + name + "| () " + s.sortName(sort) + ")")
}

// DeclareFunction declares an uninterpreted function symbol. Re-declaring a
// name is a no-op.
func (s *Solver) DeclareFunction(name string, sort smtutil.Sort) {
	fsort, ok := sort.(*smtutil.FunctionSort)
	assert(ok, "declare function %q: sort is %T, not a function sort", name, sort)
	if _, ok := s.variables.Get(name); ok {
		return
	}
	// Encode domain and codomain first so that any datatype declarations
	// they trigger land before the declare-fun itself.
	domain := s.sortListName(fsort.Domain)
	codomain := s.sortName(fsort.Codomain)
	s.variables = s.variables.Set(name, sort)
	s.write("(declare-fun |" + name + "| " + domain + " " + codomain + ")")
}

// Assert adds a constraint to the current scope.
func (s *Solver) Assert(expr smtutil.Expression) {
	s.write("(assert " + s.exprString(expr) + ")")
}

// Check sends the accumulated context plus a one-shot check command to every
// enabled backend in configured order and reconciles their verdicts. When
// the reconciled verdict is Satisfiable, the returned values hold one raw
// solver value per requested expression, in request order.
func (s *Solver) Check(exprs []smtutil.Expression) (smtutil.CheckResult, []string) {
	assert(s.callback != nil, "check without a query callback")
	query := s.DumpQuery(exprs)

	rec := reconciler{result: smtutil.Error, wantValues: len(exprs) > 0}
	for _, command := range s.config.SolverCommands() {
		response, err := s.callback(QueryKind+" "+command, query)
		if err != nil {
			continue // backend unavailable; contributes nothing
		}
		if rec.observe(ClassifyResponse(response), response) {
			break
		}
	}

	result, values := rec.outcome()
	if result == smtutil.Error {
		s.unhandled = append(s.unhandled, query)
	}
	return result, values
}

// DumpQuery returns the full query text Check would send for the given
// evaluation expressions, without invoking any backend.
func (s *Solver) DumpQuery(exprs []smtutil.Expression) string {
	return strings.Join(s.output, "\n") + s.checkCommand(exprs)
}

// UnhandledQueries returns the queries for which no backend produced any
// verdict, for later inspection.
func (s *Solver) UnhandledQueries() []string {
	return s.unhandled
}

// DeclaredVariables returns the names of all declared symbols in sorted
// order.
func (s *Solver) DeclaredVariables() []string {
	names := make([]string, 0, s.variables.Len())
	itr := s.variables.Iterator()
	for !itr.Done() {
		k, _ := itr.Next()
		names = append(names, k.(string))
	}
	return names
}

// checkCommand assembles the one-shot evaluate-and-check block. Every
// requested expression is bound to a fresh constant so that a single
// get-value command can read them all back in request order.
func (s *Solver) checkCommand(exprs []smtutil.Expression) string {
	if len(exprs) == 0 {
		return "(check-sat)\n"
	}

	var sb strings.Builder
	for i, expr := range exprs {
		var sortText string
		switch expr.Sort.(type) {
		case *smtutil.IntSort:
			sortText = "Int"
		case *smtutil.BoolSort:
			sortText = "Bool"
		default:
			assert(false, "invalid sort %T for expression to evaluate", expr.Sort)
		}
		sb.WriteString("(declare-const " + evalName(i) + " " + sortText + ")\n")
		sb.WriteString("(assert (= " + evalName(i) + " " + s.exprString(expr) + "))\n")
	}
	sb.WriteString("(check-sat)\n")
	sb.WriteString("(get-value (")
	for i := range exprs {
		sb.WriteString(evalName(i) + " ")
	}
	sb.WriteString("))\n")
	return sb.String()
}

// evalName synthesizes the auxiliary constant bound to evaluation expression
// i. Unique within one check; not checked against caller-declared names.
func evalName(i int) string {
	return "|EVALEXPR_" + strconv.Itoa(i) + "|"
}

// write appends one command line to the buffer of the innermost scope.
func (s *Solver) write(data string) {
	assert(len(s.output) > 0, "write without an open scope")
	s.output[len(s.output)-1] += data + "\n"
}

// stringComparer compares two strings. Implements immutable.Comparer.
type stringComparer struct{}

// Compare returns -1 if a is less than b, returns 1 if a is greater than b,
// and returns 0 if a is equal to b. Panics if a or b is not a string.
func (c *stringComparer) Compare(a, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
