package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Table maps each Symbol of a Tree to its Code.  The Codes in a Table are
// prefix-free, since each one is the path to a distinct leaf.
type Table map[Symbol]Code

// BuildTable walks the Tree depth-first and records the path to each Leaf.
// A nil Tree yields an empty Table.
//
// The root of a Tree is never a Leaf, so every Code has at least one bit.
//
func BuildTable(t *Tree) Table {
	table := make(Table)
	if t == nil {
		return table
	}
	walkNode(table, t.root, Code{})
	return table
}

func walkNode(table Table, n Node, prefix Code) {
	switch x := n.(type) {
	case *Leaf:
		assert.Assertf(prefix.Len() != 0, "leaf %v has an empty code", x.Symbol)
		table[x.Symbol] = prefix
	case *Placeholder:
		// no Symbol, no entry
	case *Internal:
		walkNode(table, x.Left, prefix.Append(0))
		walkNode(table, x.Right, prefix.Append(1))
	default:
		panic(fmt.Errorf("unknown node type %T", n))
	}
}

// Symbols returns the Symbols present in this Table, in ascending order.
func (table Table) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EncodedSize returns the number of bits Compress will produce, before
// padding, for an input with the given Frequencies.  The second result is
// false if freqs has a Symbol with no Code.
func (table Table) EncodedSize(freqs Frequencies) (uint64, bool) {
	var bits uint64
	for symbol, count := range freqs {
		hc, found := table[symbol]
		if !found {
			return 0, false
		}
		bits += count * uint64(hc.Len())
	}
	return bits, true
}

// Dump writes a programmer-readable debugging dump of this Table to the
// given writer.
func (table Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
