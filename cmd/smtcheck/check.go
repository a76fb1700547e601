package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/devlynnx/smtutil"
	"github.com/devlynnx/smtutil/smtlib2"
	"github.com/devlynnx/smtutil/solvercmd"
)

// CheckCommand represents a command for checking one query file.
type CheckCommand struct{}

// NewCheckCommand returns a new instance of CheckCommand.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

// Run executes the "check" subcommand.
func (cmd *CheckCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("smtcheck-check", flag.ContinueOnError)
	configPath := fs.String("config", "", "solver configuration file (YAML)")
	z3 := fs.Bool("z3", false, "query z3")
	cvc4 := fs.Bool("cvc4", false, "query cvc4")
	timeout := fs.Duration("timeout", 0, "per-solver process timeout")
	verbose := fs.Bool("v", false, "verbose")
	fs.Usage = cmd.usage
	if err := fs.Parse(args); err != nil {
		return err
	} else if fs.NArg() == 0 {
		return fmt.Errorf("query file required")
	} else if fs.NArg() > 1 {
		return fmt.Errorf("too many query files specified")
	}

	log.SetFlags(0)
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	var config smtlib2.Config
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		if config, err = smtlib2.ParseConfig(data); err != nil {
			return err
		}
	}
	if *z3 {
		config.Z3 = true
	}
	if *cvc4 {
		config.CVC4 = true
	}
	commands := config.SolverCommands()
	if len(commands) == 0 {
		return fmt.Errorf("no solver enabled; pass -z3, -cvc4, or a config file")
	}

	query, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	runner := &solvercmd.Runner{Timeout: *timeout}
	for _, command := range commands {
		name := strings.Fields(command)[0]

		response, err := runner.Solve(smtlib2.QueryKind+" "+command, string(query))
		if err != nil {
			log.Printf("%s: %v", name, err)
			fmt.Printf("%s: %s\n", name, smtutil.Error)
			continue
		}

		result := smtlib2.ClassifyResponse(response)
		fmt.Printf("%s: %s\n", name, result)

		if result == smtutil.Satisfiable && *verbose {
			cmd.dumpModel(name, response)
		}
	}
	return nil
}

// dumpModel parses the response body after the verdict line and dumps each
// s-expression it holds.
func (cmd *CheckCommand) dumpModel(name, response string) {
	i := strings.IndexByte(response, '\n')
	if i < 0 {
		return
	}

	parser := smtlib2.NewParser(strings.NewReader(response[i+1:]))
	for {
		expr, err := parser.Parse()
		if err != nil {
			return
		}
		log.Printf("%s model term:", name)
		spew.Fdump(os.Stderr, expr)
	}
}

func (cmd *CheckCommand) usage() {
	fmt.Fprintln(os.Stderr, `
Send an SMT-LIB2 query file to the configured solver binaries and report
each solver's verdict.

Usage:

	smtcheck check [arguments] FILE

Arguments:

	-config PATH
	    Solver configuration file (YAML).
	-z3
	    Query the z3 binary.
	-cvc4
	    Query the cvc4 binary.
	-timeout DURATION
	    Per-solver process timeout.
	-v
	    Verbose output; dumps model terms for satisfiable verdicts.
`[1:])
}
