// Package solvercmd invokes SMT solver binaries installed on the host,
// implementing the query callback consumed by smtlib2.Solver.
package solvercmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/devlynnx/smtutil"
	"github.com/devlynnx/smtutil/smtlib2"
)

// Runner executes one solver process per query, feeding the query on stdin
// and returning the process's stdout.
type Runner struct {
	// Timeout bounds each solver process. Zero means no limit.
	Timeout time.Duration
}

// Callback adapts the runner to the callback type consumed by solver
// sessions.
func (r *Runner) Callback() smtutil.QueryCallback {
	return r.Solve
}

// Solve runs the solver named by kind with the query on stdin. kind has the
// form "smt-query <binary> [arg...]".
func (r *Runner) Solve(kind, query string) (string, error) {
	fields := strings.Fields(kind)
	if len(fields) < 2 || fields[0] != smtlib2.QueryKind {
		return "", fmt.Errorf("solvercmd: malformed query kind %q", kind)
	}

	ctx := context.Background()
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, fields[1], fields[2:]...)
	cmd.Stdin = strings.NewReader(query)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Solvers exit non-zero on usage errors but still answer some
		// malformed queries on stdout; treat output as the response when
		// there is any.
		if stdout.Len() == 0 {
			return "", fmt.Errorf("solvercmd: %s: %w: %s", fields[1], err, strings.TrimSpace(stderr.String()))
		}
	}
	return stdout.String(), nil
}
