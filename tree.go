package prefixcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// nodeID indexes a node within an arena.
type nodeID int32

// noNode marks the absent child of a leaf.
const noNode = nodeID(-1)

// node is either a leaf, holding exactly one Symbol and no children, or an
// internal node, holding the union of its two children's Symbols.  A node
// never has exactly one child.
type node struct {
	weight float64
	items  []Symbol
	left   nodeID
	right  nodeID
}

func (n *node) isLeaf() bool {
	return n.left == noNode
}

// arena owns every node of a tree.  Children always have smaller IDs than
// their parent, and each child has exactly one parent.
type arena struct {
	nodes []node
}

func (a *arena) leaf(sym Symbol, weight float64) nodeID {
	id := nodeID(len(a.nodes))
	a.nodes = append(a.nodes, node{
		weight: weight,
		items:  []Symbol{sym},
		left:   noNode,
		right:  noNode,
	})
	return id
}

func (a *arena) merge(left, right nodeID) nodeID {
	l, r := &a.nodes[left], &a.nodes[right]
	items := make([]Symbol, 0, len(l.items)+len(r.items))
	items = append(items, l.items...)
	items = append(items, r.items...)

	id := nodeID(len(a.nodes))
	a.nodes = append(a.nodes, node{
		weight: l.weight + r.weight,
		items:  items,
		left:   left,
		right:  right,
	})
	return id
}

// Tree is a finished Huffman tree.  It is immutable once Build returns.
type Tree struct {
	arena arena
	root  nodeID
}

// Build constructs the Huffman tree for a Source.  For k Symbols it performs
// exactly k-1 merges; a single-Symbol Source yields a tree whose root is its
// only leaf.
func Build(src *Source) *Tree {
	k := src.Len()
	assert.Assertf(k > 0, "cannot build a tree for an empty source")

	t := &Tree{}
	t.arena.nodes = make([]node, 0, 2*k-1)
	leaves := make([]nodeID, k)
	for i, sym := range src.symbols {
		leaves[i] = t.arena.leaf(sym, src.weights[i])
	}

	ws := newWeightSet(&t.arena, leaves)
	t.root = ws.drain()

	assert.Assertf(len(t.arena.nodes) == 2*k-1, "tree has %d nodes, expected %d", len(t.arena.nodes), 2*k-1)
	return t
}

// NodeView is a read-only copy of one node of a Tree.
type NodeView struct {
	// Weight holds the probability mass of every Symbol under the node.
	Weight float64

	// Items lists those Symbols, in left-to-right leaf order.
	Items []Symbol

	// Leaf is true iff the node has no children.
	Leaf bool
}

// Root returns a view of the root node.
func (t *Tree) Root() NodeView {
	n := &t.arena.nodes[t.root]
	return NodeView{
		Weight: n.weight,
		Items:  append([]Symbol(nil), n.items...),
		Leaf:   n.isLeaf(),
	}
}

// NumLeaves returns the number of Symbols in the tree.
func (t *Tree) NumLeaves() int {
	return (len(t.arena.nodes) + 1) / 2
}

// NumNodes returns the number of leaf and internal nodes in the tree.
func (t *Tree) NumNodes() int {
	return len(t.arena.nodes)
}

// Weight returns the total weight at the root, which is 1 for a normalized
// Source up to rounding.
func (t *Tree) Weight() float64 {
	return t.arena.nodes[t.root].weight
}

// Items returns every Symbol in the tree, in left-to-right leaf order.
func (t *Tree) Items() []Symbol {
	return append([]Symbol(nil), t.arena.nodes[t.root].items...)
}

// Height returns the length of the longest root-to-leaf path.
func (t *Tree) Height() int {
	var height int
	t.walk(func(n *node, depth int) {
		if n.isLeaf() && depth > height {
			height = depth
		}
	})
	return height
}

// walk visits every node in pre-order, left child first.
func (t *Tree) walk(fn func(n *node, depth int)) {
	type stackItem struct {
		id    nodeID
		depth int
	}

	stack := make([]stackItem, 0, log2uint(uint(len(t.arena.nodes)))+1)
	stack = append(stack, stackItem{t.root, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.arena.nodes[top.id]
		fn(n, top.depth)
		if !n.isLeaf() {
			stack = append(stack, stackItem{n.right, top.depth + 1})
			stack = append(stack, stackItem{n.left, top.depth + 1})
		}
	}
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(n *node, depth int) {
		for i := 0; i <= depth; i++ {
			buf.WriteByte('\t')
		}
		if n.isLeaf() {
			fmt.Fprintf(&buf, "leaf %s %.4f\n", n.items[0], n.weight)
		} else {
			fmt.Fprintf(&buf, "node %.4f\n", n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
