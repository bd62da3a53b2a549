package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Tree.  The concrete type is always one of *Leaf,
// *Placeholder, or *Internal.
type Node interface {
	// Weight returns the total frequency of all Symbols beneath this
	// node.
	Weight() uint64

	isNode()
}

// Leaf is a Node that represents one Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Placeholder is a zero-weight Node that represents no Symbol.  BuildTree
// inserts one when the input has a single distinct Symbol, so that Symbol
// still gets a one-bit Code.
type Placeholder struct{}

// Internal is a Node with exactly two children.  Its weight is the sum of
// its children's weights.
type Internal struct {
	Left  Node
	Right Node

	weight uint64
}

func (n *Leaf) Weight() uint64        { return n.Count }
func (n *Placeholder) Weight() uint64 { return 0 }
func (n *Internal) Weight() uint64    { return n.weight }

func (*Leaf) isNode()        {}
func (*Placeholder) isNode() {}
func (*Internal) isNode()    {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Placeholder)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman code tree.  A nil *Tree means "nothing to encode": it
// is what BuildTree returns for an empty Frequencies, and it is accepted by
// BuildTable and Decompress.
//
// A Tree is never modified after BuildTree returns it.
type Tree struct {
	root *Internal
}

// BuildTree constructs the Huffman code tree for the given Frequencies.
//
// The result is fully determined by the contents of freqs: leaves enter the
// min-heap in ascending Symbol order, and nodes of equal weight leave it in
// the order they entered.
//
func BuildTree(freqs Frequencies) *Tree {
	if len(freqs) == 0 {
		return nil
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]heapItem, 0, len(freqs)+1)}
	for _, symbol := range freqs.Symbols() {
		h.add(&Leaf{Symbol: symbol, Count: freqs[symbol]})
	}
	if len(freqs) == 1 {
		h.add(&Placeholder{})
	}
	h.Init()

	// Step 2: pop two nodes, join them under a new Internal node, and
	// push that back, until a single node remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		// Compute weight using saturating addition
		weight := a.node.Weight() + b.node.Weight()
		if weight < a.node.Weight() {
			weight = math.MaxUint64
		}

		h.push(&Internal{Left: a.node, Right: b.node, weight: weight})
	}

	root, ok := heap.Pop(&h).(heapItem).node.(*Internal)
	assert.Assertf(ok, "root of a non-empty tree must be an internal node")
	return &Tree{root: root}
}

// Root returns the root node of the Tree, or nil for a nil Tree.
func (t *Tree) Root() Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Weight returns the weight of the root, i.e. the length of the input.
func (t *Tree) Weight() uint64 {
	if t == nil {
		return 0
	}
	return t.root.weight
}

// Equal returns true iff both Trees have the same shape, with the same
// Symbols and weights at the same positions.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return nodesEqual(t.root, other.root)
}

func nodesEqual(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && *x == *y
	case *Placeholder:
		_, ok := b.(*Placeholder)
		return ok
	case *Internal:
		y, ok := b.(*Internal)
		return ok && x.weight == y.weight && nodesEqual(x.Left, y.Left) && nodesEqual(x.Right, y.Right)
	default:
		panic(fmt.Errorf("unknown node type %T", a))
	}
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t != nil {
		dumpNode(&buf, t.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n Node, depth int) {
	indent := strings.Repeat("\t", depth)
	switch x := n.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "%sLeaf(%v, %d)\n", indent, x.Symbol, x.Count)
	case *Placeholder:
		fmt.Fprintf(buf, "%sPlaceholder\n", indent)
	case *Internal:
		fmt.Fprintf(buf, "%sInternal(%d)\n", indent, x.weight)
		dumpNode(buf, x.Left, depth+1)
		dumpNode(buf, x.Right, depth+1)
	}
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint32
}

// add appends a node without restoring the heap property; call Init after.
func (h *nodeHeap) add(n Node) {
	h.list = append(h.list, heapItem{n, h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) push(n Node) {
	heap.Push(h, heapItem{n, h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
