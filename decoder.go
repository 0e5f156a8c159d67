package prefixcode

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder implements a decoder for any prefix code.  It holds a binary trie
// with one leaf per Symbol, rebuilt from a CodeTable.
type Decoder struct {
	arena arena
	root  nodeID
	table *CodeTable
}

// NewDecoder constructs a Decoder for the given table.
func NewDecoder(ct *CodeTable) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(ct); err != nil {
		return nil, err
	}
	return d, nil
}

// Init initializes this Decoder.  Each Codeword of the table is inserted into
// the trie as a root-to-leaf path.
//
// The table must be prefix-free.  A table whose trie has internal nodes with
// a single child (an "incomplete" code) is accepted; bit strings that would
// leave the trie through a missing branch are rejected at Decode time.
//
func (d *Decoder) Init(ct *CodeTable) error {
	if ct == nil {
		*d = Decoder{}
		return corruptf(0, "nil code table")
	}

	*d = Decoder{table: ct}
	d.root = d.arena.internal()

	for _, sym := range ct.Symbols() {
		cw := ct.codes[sym]
		if err := d.insert(sym, cw); err != nil {
			*d = Decoder{}
			return err
		}
	}
	return nil
}

func (d *Decoder) insert(sym Symbol, cw Codeword) error {
	if cw.Len() == 0 {
		if len(d.table.codes) != 1 {
			return corruptf(0, "empty codeword for symbol %s in a table of %d symbols", sym, len(d.table.codes))
		}
		d.arena.nodes[d.root] = node{items: []Symbol{sym}, left: noNode, right: noNode}
		return nil
	}

	cur := d.root
	for i := 0; i < cw.Len(); i++ {
		n := &d.arena.nodes[cur]
		if !n.isTrieInternal() {
			return corruptf(i, "codeword %s for symbol %s extends codeword of symbol %s", cw, sym, n.items[0])
		}
		next := n.right
		if cw.Bit(i) == 0 {
			next = n.left
		}
		if next == noNode {
			if i == cw.Len()-1 {
				next = d.arena.leaf(sym, 0)
			} else {
				next = d.arena.internal()
			}
			// d.arena.nodes may have moved
			n = &d.arena.nodes[cur]
			if cw.Bit(i) == 0 {
				n.left = next
			} else {
				n.right = next
			}
		} else if i == cw.Len()-1 {
			return corruptf(i, "codeword %s for symbol %s is a prefix of another codeword", cw, sym)
		}
		cur = next
	}
	return nil
}

// internal appends a node with no symbol and no children yet.  It is only
// used while building a decoding trie, where children are attached later.
func (a *arena) internal() nodeID {
	id := nodeID(len(a.nodes))
	a.nodes = append(a.nodes, node{left: noNode, right: noNode})
	return id
}

// isTrieInternal is true for a node inserted by arena.internal.  Such a node
// may have only one child, unlike the nodes of a Tree.
func (n *node) isTrieInternal() bool {
	return len(n.items) == 0
}

// Decode splits a bit string into Symbols.
//
// Decode fails with a CorruptCodeError if bits contains characters other
// than '0' and '1', follows a branch that no Codeword takes, or ends partway
// through a Codeword.  The empty bit string decodes to an empty sequence,
// which is also the only bit string a single-Symbol code can decode.
//
func (d *Decoder) Decode(bits string) ([]Symbol, error) {
	if len(d.arena.nodes) == 0 {
		return nil, corruptf(0, "decoder is not initialized")
	}

	rootNode := &d.arena.nodes[d.root]
	if !rootNode.isTrieInternal() {
		if len(bits) != 0 {
			return nil, corruptf(0, "single-symbol code cannot decode %d bits", len(bits))
		}
		return nil, nil
	}

	var out []Symbol
	cur := d.root
	start := 0
	for i := 0; i < len(bits); i++ {
		n := &d.arena.nodes[cur]
		var next nodeID
		switch bits[i] {
		case '0':
			next = n.left
		case '1':
			next = n.right
		default:
			return nil, corruptf(i, "unexpected character %q", bits[i])
		}
		if next == noNode {
			return nil, corruptf(start, "bits %q match no codeword", bits[start:i+1])
		}

		child := &d.arena.nodes[next]
		if child.isTrieInternal() {
			cur = next
			continue
		}
		out = append(out, child.items[0])
		cur = d.root
		start = i + 1
	}
	if cur != d.root {
		return nil, corruptf(start, "truncated codeword %q", bits[start:])
	}
	return out, nil
}

// DecodeString decodes bits and returns the Symbols joined into a string.
func (d *Decoder) DecodeString(bits string) (string, error) {
	syms, err := d.Decode(bits)
	if err != nil {
		return "", err
	}
	return SymbolsString(syms), nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer: one line per trie node, keyed by the bits that
// reach it.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if len(d.arena.nodes) != 0 {
		type stackItem struct {
			id     nodeID
			prefix Codeword
		}
		stack := []stackItem{{d.root, EmptyCodeword}}
		for len(stack) != 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := &d.arena.nodes[top.id]
			if n.isTrieInternal() {
				fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", top.prefix, InvalidSymbol)
				if n.right != noNode {
					stack = append(stack, stackItem{n.right, top.prefix.Append(1)})
				}
				if n.left != noNode {
					stack = append(stack, stackItem{n.left, top.prefix.Append(0)})
				}
			} else {
				fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", top.prefix, n.items[0])
			}
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
