package smtlib2

import "github.com/devlynnx/smtutil"

// reconciler folds per-backend verdicts into a single result. Backends are
// observed strictly in configured order: the first decisive verdict is
// adopted, a later disagreeing decisive verdict ends the fold as
// Conflicting, and Unknown is remembered only while nothing decisive has
// been seen. The zero result must be smtutil.Error (undetermined).
type reconciler struct {
	result     smtutil.CheckResult
	values     []string
	wantValues bool
}

// observe folds one backend response into the running result. It reports
// whether the fold is finished and remaining backends must not be queried.
func (r *reconciler) observe(result smtutil.CheckResult, response string) bool {
	switch {
	case !decisive(result):
		if result == smtutil.Unknown && r.result == smtutil.Error {
			r.result = smtutil.Unknown
		}
	case !decisive(r.result):
		r.result = result
		if result == smtutil.Satisfiable && r.wantValues {
			r.values = ParseValues(response)
		}
	case r.result != result:
		r.result = smtutil.Conflicting
		return true
	}
	return false
}

// outcome returns the folded verdict. Values are surfaced only for a
// satisfiable outcome.
func (r *reconciler) outcome() (smtutil.CheckResult, []string) {
	if r.result != smtutil.Satisfiable {
		return r.result, nil
	}
	return r.result, r.values
}

// decisive reports whether a backend actually answered the query.
func decisive(result smtutil.CheckResult) bool {
	return result == smtutil.Satisfiable || result == smtutil.Unsatisfiable
}
