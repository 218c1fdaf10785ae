// Package edgefile reads and writes edge lists for the pathgraph CLI.
//
// A document is either a top-level sequence of edges or a mapping with an
// "edges" key holding that sequence. Each edge is a triple
// [from, to, weight] or a mapping {from, to, weight}. Endpoints are strings
// or numbers; anything else is passed through as an invalid node so that
// core.Build reports it with the usual validation reason.
package edgefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/pathgraph/core"
)

// Format names a serialization.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for unsupported format names or file
	// extensions.
	ErrUnknownFormat = errors.New("edgefile: unknown format")

	// ErrMalformedEdge is returned when a document or one of its edges does
	// not have the expected shape.
	ErrMalformedEdge = errors.New("edgefile: malformed edge")
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Decode reads a full document from r and converts it to edges in input
// order. Weights that are not numbers become NaN.
func Decode(r io.Reader, f Format) ([]core.Edge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("edgefile: read: %w", err)
	}

	var doc any
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("edgefile: decode %s: %w", f, err)
	}

	items, err := edgeList(doc)
	if err != nil {
		return nil, err
	}

	edges := make([]core.Edge, 0, len(items))
	for i, item := range items {
		e, err := edgeOf(item)
		if err != nil {
			return nil, fmt.Errorf("%w: #%d: %v", ErrMalformedEdge, i, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// Encode writes edges as a sequence of [from, to, weight] triples.
func Encode(w io.Writer, f Format, edges []core.Edge) error {
	triples := make([][]any, len(edges))
	for i, e := range edges {
		triples[i] = []any{e.From.Value(), e.To.Value(), e.Weight}
	}

	return Write(w, f, triples)
}

// Write serializes v in format f. JSON output is indented.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		var buf bytes.Buffer
		if err := yaml.NewEncoder(&buf).Encode(v); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func edgeList(doc any) ([]any, error) {
	switch d := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return d, nil
	default:
		m, ok := asMap(doc)
		if !ok {
			return nil, fmt.Errorf("%w: document must be a sequence or have an \"edges\" key", ErrMalformedEdge)
		}
		raw, ok := m["edges"]
		if !ok {
			return nil, fmt.Errorf("%w: missing \"edges\" key", ErrMalformedEdge)
		}
		if raw == nil {
			return nil, nil
		}
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: \"edges\" must be a sequence", ErrMalformedEdge)
		}
		return list, nil
	}
}

func edgeOf(item any) (core.Edge, error) {
	if tuple, ok := item.([]any); ok {
		if len(tuple) != 3 {
			return core.Edge{}, fmt.Errorf("triple has %d elements, want 3", len(tuple))
		}
		return core.Edge{From: core.NodeOf(tuple[0]), To: core.NodeOf(tuple[1]), Weight: core.WeightOf(tuple[2])}, nil
	}

	m, ok := asMap(item)
	if !ok {
		return core.Edge{}, fmt.Errorf("unexpected %T", item)
	}
	for _, key := range []string{"from", "to", "weight"} {
		if _, ok := m[key]; !ok {
			return core.Edge{}, fmt.Errorf("missing %q", key)
		}
	}

	return core.Edge{From: core.NodeOf(m["from"]), To: core.NodeOf(m["to"]), Weight: core.WeightOf(m["weight"])}, nil
}

// asMap normalizes decoded mappings; YAML may produce non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
