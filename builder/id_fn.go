package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathgraph/core"
)

// IDFn maps a zero-based vertex index to a Node.
type IDFn func(idx int) core.Node

// DefaultIDFn yields text nodes "0", "1", "2", ...
func DefaultIDFn(idx int) core.Node {
	return core.Text(decimalLabel(idx))
}

// NumericIDFn yields number nodes 0, 1, 2, ...
func NumericIDFn(idx int) core.Node {
	return core.Number(float64(idx))
}

// SymbolIDFn yields "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) core.Node {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return core.Text(string(rune('A' + idx)))
}

// ExcelColumnIDFn yields "A".."Z","AA","AB",...
// Panics on negative idx.
func ExcelColumnIDFn(idx int) core.Node {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return core.Text(string(runes))
}

// SymbolNumberIDFn yields prefix+index, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) core.Node {
		return core.Text(prefix + strconv.Itoa(idx))
	}
}
