package smtlib2

import (
	"strings"

	"github.com/devlynnx/smtutil"
)

// ClassifyResponse maps a raw solver response onto a verdict by matching its
// leading keyword. Anything unrecognized classifies as Error, meaning the
// backend contributed nothing.
func ClassifyResponse(response string) smtutil.CheckResult {
	switch {
	case strings.HasPrefix(response, "unsat"):
		return smtutil.Unsatisfiable
	case strings.HasPrefix(response, "sat"):
		return smtutil.Satisfiable
	case strings.HasPrefix(response, "unknown"):
		return smtutil.Unknown
	default:
		return smtutil.Error
	}
}

// ParseValues extracts the raw value tokens from a get-value response. The
// body after the first newline is read as a sequence of (name value) pairs:
// each value is the text between the first space inside a pair and the next
// closing parenthesis. The scan is strictly positional, shaped for the
// get-value replies this package requests itself; it is not a general
// s-expression parse.
func ParseValues(response string) []string {
	i := strings.IndexByte(response, '\n')
	if i < 0 {
		return nil
	}
	body := response[i:]

	var values []string
	for len(body) > 0 {
		valStart := strings.IndexByte(body, ' ')
		if valStart < 0 {
			valStart = len(body)
		} else {
			valStart++
		}
		rest := body[valStart:]

		valEnd := strings.IndexByte(rest, ')')
		if valEnd < 0 {
			valEnd = len(rest)
		}
		values = append(values, rest[:valEnd])

		if next := strings.IndexByte(rest[valEnd:], '('); next < 0 {
			body = ""
		} else {
			body = rest[valEnd+next:]
		}
	}
	return values
}
