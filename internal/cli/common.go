package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/internal/config"
	"github.com/katalvlaran/pathgraph/internal/edgefile"
	"github.com/katalvlaran/pathgraph/internal/logging"
)

// stdinPath selects standard input as the edge source.
const stdinPath = "-"

// commonFlags are shared by every subcommand and override the environment.
type commonFlags struct {
	logLevel  string
	logFormat string
	output    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.logLevel, "log-level", "", "Logging level: debug, info, warn, error (env "+config.EnvLogLevel+").")
	fs.StringVar(&c.logFormat, "log-format", "", "Log format: console or json (env "+config.EnvLogFormat+").")
	fs.StringVar(&c.output, "output", "", "Result format: json or yaml (env "+config.EnvOutput+").")
}

// session is the resolved configuration and logger of one invocation.
type session struct {
	cfg    config.Config
	format edgefile.Format
	log    zerolog.Logger
	out    io.Writer
}

func (c *commonFlags) open(env Env) (*session, error) {
	lookup := env.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg, err := config.LoadFrom(overlay(lookup, map[string]string{
		config.EnvLogLevel:  c.logLevel,
		config.EnvLogFormat: c.logFormat,
		config.EnvOutput:    c.output,
	}))
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	format, err := edgefile.ParseFormat(cfg.Output)
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return &session{
		cfg:    cfg,
		format: format,
		log:    logging.New(cfg.Logging, env.Stderr),
		out:    env.Stdout,
	}, nil
}

// overlay lets non-empty flag values shadow environment variables.
func overlay(base config.LookupFunc, flags map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		if v := flags[key]; v != "" {
			return v, true
		}
		return base(key)
	}
}

// inputFlags select the edge list for path and analyze.
type inputFlags struct {
	edges string
	input string
}

func (in *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&in.edges, "edges", "", "Edge list file (.json, .yaml, .yml) or - for stdin.")
	fs.StringVar(&in.input, "input", "", "Edge list format: json or yaml. Required for stdin unless json.")
}

// loadEdges reads and decodes the edge list. Failures are usage errors.
func (s *session) loadEdges(in inputFlags, stdin io.Reader) ([]core.Edge, error) {
	if in.edges == "" {
		return nil, &ExitError{Code: ExitUsage, Message: "missing -edges"}
	}

	format, err := in.format()
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	r := stdin
	if in.edges != stdinPath {
		f, err := os.Open(in.edges)
		if err != nil {
			return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		defer f.Close()
		r = f
	}

	edges, err := edgefile.Decode(r, format)
	if err != nil {
		s.log.Error().Err(err).Str("source", in.edges).Msg("decoding edges failed")
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	s.log.Debug().Str("source", in.edges).Str("format", string(format)).Int("edges", len(edges)).Msg("edges loaded")

	return edges, nil
}

func (in inputFlags) format() (edgefile.Format, error) {
	switch {
	case in.input != "":
		return edgefile.ParseFormat(in.input)
	case in.edges == stdinPath:
		return edgefile.FormatJSON, nil
	default:
		return edgefile.FormatFromPath(in.edges)
	}
}

// buildGraph runs core.Build and renders a failure document when it fails.
func (s *session) buildGraph(edges []core.Edge) (*core.Graph, error) {
	g, err := core.Build(edges)
	if err != nil {
		return nil, s.fail(err)
	}
	s.log.Info().Int("nodes", g.Len()).Int("edges", g.EdgeCount()).Msg("graph built")

	return g, nil
}

// resolveNode maps a command-line label onto a node of g. Text wins; a
// label that parses as a number falls back to the numeric node when only
// that one exists. Unknown labels resolve to text so the error names them.
func resolveNode(g *core.Graph, label string) core.Node {
	text := core.Text(label)
	if g.HasNode(text) {
		return text
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(label), 64); err == nil {
		if num := core.Number(f); g.HasNode(num) {
			return num
		}
	}

	return text
}

func (s *session) write(v any) error {
	if err := edgefile.Write(s.out, s.format, v); err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("writing result: %v", err)}
	}

	return nil
}
