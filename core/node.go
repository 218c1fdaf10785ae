package core

import (
	"math"
	"strconv"
)

// Text returns a Node identified by the label s. Any string, including the
// empty one, is a well-formed label.
func Text(s string) Node {
	return Node{kind: KindText, text: s}
}

// Number returns a Node identified by f. Non-finite values produce a Node
// that fails Valid.
func Number(f float64) Node {
	return Node{kind: KindNumber, num: f}
}

// floater is satisfied by json.Number-like decoded values.
type floater interface {
	Float64() (float64, error)
}

// NodeOf converts a raw decoded value into a Node.
//
// Accepted: string, Node, every built-in integer and float type, and any
// value with a Float64() (float64, error) method (e.g. json.Number).
// Anything else (nil, maps, slices, structs, bools) yields the zero Node,
// which Validate rejects with ReasonInvalidNode.
func NodeOf(v any) Node {
	switch x := v.(type) {
	case Node:
		return x
	case string:
		return Text(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case floater:
		f, err := x.Float64()
		if err != nil {
			return Node{}
		}
		return Number(f)
	default:
		return Node{}
	}
}

// NewEdge builds an Edge from raw endpoint values, converting each with
// NodeOf. It never fails; malformed endpoints are reported by Validate.
func NewEdge(from, to any, weight float64) Edge {
	return Edge{From: NodeOf(from), To: NodeOf(to), Weight: weight}
}

// WeightOf converts a raw decoded weight into a float64. Values that are
// not numbers become NaN so that validation reports them as non-finite.
func WeightOf(v any) float64 {
	n := NodeOf(v)
	if n.kind != KindNumber {
		return math.NaN()
	}

	return n.num
}

// Valid reports whether n is a text label or a finite number.
func (n Node) Valid() bool {
	switch n.kind {
	case KindText:
		return true
	case KindNumber:
		return !math.IsNaN(n.num) && !math.IsInf(n.num, 0)
	default:
		return false
	}
}

// Kind returns the variant held by n.
func (n Node) Kind() Kind { return n.kind }

// Label returns the text label and true when n is a text node.
func (n Node) Label() (string, bool) {
	return n.text, n.kind == KindText
}

// Float returns the numeric value and true when n is a number node.
func (n Node) Float() (float64, bool) {
	return n.num, n.kind == KindNumber
}

// Value returns the underlying Go value: a string for text nodes, a
// float64 for number nodes and nil for the zero Node. Useful for encoding.
func (n Node) Value() any {
	switch n.kind {
	case KindText:
		return n.text
	case KindNumber:
		return n.num
	default:
		return nil
	}
}

// String renders text nodes verbatim and numbers in shortest 'g' form.
func (n Node) String() string {
	switch n.kind {
	case KindText:
		return n.text
	case KindNumber:
		return strconv.FormatFloat(n.num, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}
