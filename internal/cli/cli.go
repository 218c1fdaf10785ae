// Package cli implements the pathgraph command line: flag parsing,
// edge-file loading, dispatch to the library and rendering of results.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/pathgraph/internal/config"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // graph or path failure
	ExitUsage   = 2 // bad flags, unreadable or undecodable input
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Env is the process environment a command runs in.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Lookup config.LookupFunc
}

type command struct {
	name    string
	summary string
	run     func(args []string, env Env) error
}

var commands = []command{
	{"path", "cheapest directed path between two nodes", runPath},
	{"analyze", "node/edge counts, components, connectivity, density", runAnalyze},
	{"reach", "nodes reachable from a start node, with hop depth", runReach},
	{"toposort", "topological order, or the cycle that prevents one", runToposort},
	{"generate", "emit a synthetic edge list", runGenerate},
}

// Run dispatches args[0] to a subcommand. It returns nil on success,
// otherwise an *ExitError.
func Run(args []string, env Env) error {
	if len(args) == 0 {
		usage(env.Stderr)
		return &ExitError{Code: ExitUsage, Message: "missing command"}
	}

	switch args[0] {
	case "-h", "-help", "--help", "help":
		usage(env.Stdout)
		return nil
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], env)
		}
	}

	usage(env.Stderr)
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unknown command %q", args[0])}
}

// Code extracts the exit code from an error returned by Run.
func Code(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	return ExitFailure
}

// missing returns the first of names not set on the command line. Empty
// values count as set: "" is a valid text node.
func missing(fs *flag.FlagSet, names ...string) (string, bool) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, n := range names {
		if !set[n] {
			return n, true
		}
	}

	return "", false
}

func usage(w io.Writer) {
	fmt.Fprint(w, `
pathgraph - shortest paths and connectivity over weighted directed graphs.

Usage:
  pathgraph <command> [options]

Commands:
`)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprint(w, `
Run "pathgraph <command> -h" for command options.
`)
}

// parseFlags runs fs.Parse and maps its outcome onto ExitError. The bool
// is true when -h was requested and the command should stop cleanly.
func parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}

	return false, nil
}
