package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgraph/internal/cli"
)

type run struct {
	err    error
	stdout string
	stderr string
}

func (r run) code() int { return cli.Code(r.err) }

func (r run) json(t *testing.T) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &doc), r.stdout)
	return doc
}

func invoke(stdin string, env map[string]string, args ...string) run {
	var out, errOut bytes.Buffer
	err := cli.Run(args, cli.Env{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
		Lookup: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
	})
	return run{err: err, stdout: out.String(), stderr: errOut.String()}
}

func TestRun_NoCommand(t *testing.T) {
	r := invoke("", nil)
	assert.Equal(t, cli.ExitUsage, r.code())
	assert.Contains(t, r.stderr, "Commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	r := invoke("", nil, "frobnicate")
	assert.Equal(t, cli.ExitUsage, r.code())
	assert.Contains(t, r.err.Error(), "frobnicate")
}

func TestRun_Help(t *testing.T) {
	r := invoke("", nil, "help")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "analyze")

	r = invoke("", nil, "path", "-h")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "-from")
}

func TestPath_JSONFile(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/roads.json", "-from", "A", "-to", "E")
	require.NoError(t, r.err, r.stderr)

	doc := r.json(t)
	assert.Equal(t, []any{"A", "B", "D", "E"}, doc["path"])
	assert.EqualValues(t, 11, doc["distance"])
	assert.Contains(t, r.stderr, "path found")
}

func TestPath_YAMLFileYAMLOutput(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/roads.yaml", "-from", "A", "-to", "C", "-output", "yaml")
	require.NoError(t, r.err, r.stderr)

	var doc struct {
		Path     []string `yaml:"path"`
		Distance float64  `yaml:"distance"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &doc), r.stdout)
	assert.Equal(t, []string{"A", "C"}, doc.Path)
	assert.Equal(t, 2.0, doc.Distance)
}

func TestPath_Stdin(t *testing.T) {
	r := invoke(`[["A","B",3]]`, nil, "path", "-edges", "-", "-from", "A", "-to", "B")
	require.NoError(t, r.err, r.stderr)
	assert.EqualValues(t, 3, r.json(t)["distance"])

	r = invoke("- [A, B, 3]\n", nil, "path", "-edges", "-", "-input", "yaml", "-from", "B", "-to", "B")
	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, []any{"B"}, r.json(t)["path"])
}

func TestPath_NumericLabels(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/mixed.json", "-from", "1", "-to", "X")
	require.NoError(t, r.err, r.stderr)

	doc := r.json(t)
	assert.Equal(t, []any{1.0, 2.0, "X"}, doc["path"])
	assert.EqualValues(t, 2.5, doc["distance"])
}

func TestPath_NoPath(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/islands.json", "-from", "A", "-to", "C")
	assert.Equal(t, cli.ExitFailure, r.code())

	e := r.json(t)["error"].(map[string]any)
	assert.Equal(t, cli.KindNoPath, e["kind"])
	assert.Equal(t, "A", e["from"])
	assert.Equal(t, "C", e["to"])
}

func TestPath_NodeNotFound(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/roads.json", "-from", "A", "-to", "Z")
	assert.Equal(t, cli.ExitFailure, r.code())

	e := r.json(t)["error"].(map[string]any)
	assert.Equal(t, cli.KindNodeNotFound, e["kind"])
	assert.Equal(t, "Z", e["node"])
}

func TestPath_InvalidGraph(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/negative.json", "-from", "A", "-to", "C")
	assert.Equal(t, cli.ExitFailure, r.code())

	e := r.json(t)["error"].(map[string]any)
	assert.Equal(t, cli.KindInvalidGraph, e["kind"])
	assert.Equal(t, "Invalid weight: negative value", e["reason"])
}

func TestPath_EmptyGraph(t *testing.T) {
	r := invoke("", nil, "path", "-edges", "testdata/empty.json", "-from", "A", "-to", "B")
	assert.Equal(t, cli.ExitFailure, r.code())
	assert.Equal(t, cli.KindEmptyGraph, r.json(t)["error"].(map[string]any)["kind"])
}

func TestPath_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing to":      {"path", "-edges", "testdata/roads.json", "-from", "A"},
		"missing edges":   {"path", "-from", "A", "-to", "B"},
		"missing file":    {"path", "-edges", "testdata/absent.json", "-from", "A", "-to", "B"},
		"bad extension":   {"path", "-edges", "testdata/roads.txt", "-from", "A", "-to", "B"},
		"bad flag":        {"path", "-bogus"},
		"stray argument":  {"path", "-edges", "testdata/roads.json", "-from", "A", "-to", "B", "extra"},
		"bad output flag": {"path", "-edges", "testdata/roads.json", "-from", "A", "-to", "B", "-output", "xml"},
	}
	for name, args := range cases {
		r := invoke("", nil, args...)
		assert.Equal(t, cli.ExitUsage, r.code(), name)
	}
}

func TestPath_MalformedInput(t *testing.T) {
	r := invoke(`[["A","B"]]`, nil, "path", "-edges", "-", "-from", "A", "-to", "B")
	assert.Equal(t, cli.ExitUsage, r.code())
	assert.Contains(t, r.err.Error(), "malformed")
}

func TestAnalyze_Islands(t *testing.T) {
	r := invoke("", nil, "analyze", "-edges", "testdata/islands.json")
	require.NoError(t, r.err, r.stderr)

	doc := r.json(t)
	assert.EqualValues(t, 4, doc["nodeCount"])
	assert.EqualValues(t, 2, doc["edgeCount"])
	assert.Equal(t, false, doc["isConnected"])
	assert.Equal(t, []any{[]any{"A", "B"}, []any{"C", "D"}}, doc["components"])
	assert.InDelta(t, 0.1667, doc["density"], 1e-4)
	assert.Equal(t, true, doc["isAcyclic"])
}

func TestAnalyze_EnvOutputAndLogFormat(t *testing.T) {
	env := map[string]string{
		"PATHGRAPH_OUTPUT":     "yaml",
		"PATHGRAPH_LOG_FORMAT": "json",
	}
	r := invoke("", env, "analyze", "-edges", "testdata/roads.yaml")
	require.NoError(t, r.err, r.stderr)

	var doc struct {
		NodeCount   int  `yaml:"nodeCount"`
		IsConnected bool `yaml:"isConnected"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &doc), r.stdout)
	assert.Equal(t, 5, doc.NodeCount)
	assert.True(t, doc.IsConnected)

	var line map[string]any
	last := strings.TrimSpace(r.stderr)
	last = last[strings.LastIndex(last, "\n")+1:]
	require.NoError(t, json.Unmarshal([]byte(last), &line), r.stderr)
	assert.Equal(t, "graph analyzed", line["message"])
}

func TestAnalyze_FlagOverridesEnv(t *testing.T) {
	env := map[string]string{"PATHGRAPH_OUTPUT": "yaml"}
	r := invoke("", env, "analyze", "-edges", "testdata/islands.json", "-output", "json")
	require.NoError(t, r.err, r.stderr)
	assert.EqualValues(t, 4, r.json(t)["nodeCount"])
}

func TestAnalyze_BadEnv(t *testing.T) {
	r := invoke("", map[string]string{"PATHGRAPH_LOG_LEVEL": "loud"}, "analyze", "-edges", "testdata/islands.json")
	assert.Equal(t, cli.ExitUsage, r.code())
}

func TestAnalyze_LogLevelSilences(t *testing.T) {
	r := invoke("", nil, "analyze", "-edges", "testdata/islands.json", "-log-level", "error")
	require.NoError(t, r.err)
	assert.Empty(t, r.stderr)
}

func TestGenerate_FeedsAnalyze(t *testing.T) {
	gen := invoke("", nil, "generate", "-kind", "cycle", "-n", "4", "-log-level", "error")
	require.NoError(t, gen.err, gen.stderr)

	var triples [][]any
	require.NoError(t, json.Unmarshal([]byte(gen.stdout), &triples))
	assert.Len(t, triples, 4)

	r := invoke(gen.stdout, nil, "analyze", "-edges", "-")
	require.NoError(t, r.err, r.stderr)
	doc := r.json(t)
	assert.EqualValues(t, 4, doc["nodeCount"])
	assert.Equal(t, true, doc["isConnected"])
	assert.Equal(t, false, doc["isAcyclic"])
}

func TestGenerate_Deterministic(t *testing.T) {
	args := []string{"generate", "-kind", "random", "-n", "8", "-p", "0.4", "-seed", "7", "-min-weight", "1", "-max-weight", "9"}
	a := invoke("", nil, args...)
	b := invoke("", nil, args...)
	require.NoError(t, a.err)
	assert.Equal(t, a.stdout, b.stdout)
}

func TestGenerate_GridBidirectional(t *testing.T) {
	gen := invoke("", nil, "generate", "-kind", "grid", "-rows", "2", "-cols", "3", "-bidirectional")
	require.NoError(t, gen.err, gen.stderr)

	r := invoke(gen.stdout, nil, "path", "-edges", "-", "-from", "1,2", "-to", "0,0")
	require.NoError(t, r.err, r.stderr)
	assert.EqualValues(t, 3, r.json(t)["distance"])
}

func TestGenerate_YAMLRoundTrip(t *testing.T) {
	gen := invoke("", nil, "generate", "-kind", "path", "-n", "4", "-min-weight", "2", "-max-weight", "2", "-output", "yaml")
	require.NoError(t, gen.err, gen.stderr)

	r := invoke(gen.stdout, nil, "path", "-edges", "-", "-input", "yaml", "-from", "0", "-to", "3")
	require.NoError(t, r.err, r.stderr)
	assert.EqualValues(t, 6, r.json(t)["distance"])
}

func TestGenerate_SymbolAndIntWeightsWithinLimits(t *testing.T) {
	r := invoke("", nil, "generate", "-kind", "path", "-n", "26", "-ids", "symbol", "-int-weights", "-min-weight", "1", "-max-weight", "9")
	require.NoError(t, r.err, r.stderr)

	var triples [][]any
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &triples))
	require.Len(t, triples, 25)
	assert.Equal(t, "Z", triples[24][1])

	r = invoke("", nil, "generate", "-kind", "grid", "-rows", "6", "-cols", "6", "-ids", "symbol")
	require.NoError(t, r.err, "grid cells ignore the ID scheme")
}

func TestPath_EmptyLabel(t *testing.T) {
	r := invoke(`[["","x",2]]`, nil, "path", "-edges", "-", "-from", "", "-to", "x")
	require.NoError(t, r.err, r.stderr)
	doc := r.json(t)
	assert.Equal(t, []any{"", "x"}, doc["path"])
	assert.EqualValues(t, 2, doc["distance"])

	r = invoke(`[["","x",2]]`, nil, "reach", "-edges", "-", "-from", "")
	require.NoError(t, r.err, r.stderr)
	assert.Len(t, r.json(t)["reachable"], 2)
}

func TestGenerate_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"kind":                  {"generate", "-kind", "hypercube"},
		"ids":                   {"generate", "-ids", "roman"},
		"weights":               {"generate", "-min-weight", "5", "-max-weight", "1"},
		"size":                  {"generate", "-kind", "cycle", "-n", "2"},
		"p":                     {"generate", "-kind", "random", "-p", "1.5"},
		"symbol path too long":  {"generate", "-kind", "path", "-n", "30", "-ids", "symbol"},
		"symbol star too large": {"generate", "-kind", "star", "-n", "28", "-ids", "symbol"},
		"int weight overflow":   {"generate", "-int-weights", "-min-weight", "0", "-max-weight", "1e19"},
		"int weight fraction":   {"generate", "-int-weights", "-min-weight", "0.5", "-max-weight", "3"},
	}
	for name, args := range cases {
		r := invoke("", nil, args...)
		assert.Equal(t, cli.ExitUsage, r.code(), name)
	}
}

func TestReach_Depths(t *testing.T) {
	r := invoke("", nil, "reach", "-edges", "testdata/roads.json", "-from", "B")
	require.NoError(t, r.err, r.stderr)

	doc := r.json(t)
	assert.Equal(t, "B", doc["from"])
	assert.Equal(t, []any{
		map[string]any{"node": "B", "depth": 0.0},
		map[string]any{"node": "C", "depth": 1.0},
		map[string]any{"node": "D", "depth": 1.0},
		map[string]any{"node": "E", "depth": 2.0},
	}, doc["reachable"])
}

func TestReach_MaxDepth(t *testing.T) {
	r := invoke("", nil, "reach", "-edges", "testdata/roads.json", "-from", "A", "-depth", "1")
	require.NoError(t, r.err, r.stderr)
	assert.Len(t, r.json(t)["reachable"], 3)
}

func TestReach_Failures(t *testing.T) {
	r := invoke("", nil, "reach", "-edges", "testdata/roads.json", "-from", "Q")
	assert.Equal(t, cli.ExitFailure, r.code())
	assert.Equal(t, cli.KindNodeNotFound, r.json(t)["error"].(map[string]any)["kind"])

	r = invoke("", nil, "reach", "-edges", "testdata/roads.json", "-from", "A", "-depth", "-2")
	assert.Equal(t, cli.ExitUsage, r.code())
}

func TestToposort(t *testing.T) {
	r := invoke("", nil, "toposort", "-edges", "testdata/roads.json")
	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, []any{"A", "B", "C", "D", "E"}, r.json(t)["order"])
}

func TestToposort_Cycle(t *testing.T) {
	r := invoke(`[["A","B",1],["B","C",1],["C","A",1]]`, nil, "toposort", "-edges", "-")
	assert.Equal(t, cli.ExitFailure, r.code())

	e := r.json(t)["error"].(map[string]any)
	assert.Equal(t, cli.KindCycle, e["kind"])
	assert.Equal(t, []any{"A", "B", "C", "A"}, e["cycle"])
}
