package prefixcode

// Assignment pairs the Symbols of a leaf with the Codeword of the path that
// reaches it.
type Assignment struct {
	Items    []Symbol
	Codeword Codeword
}

// Extract walks the tree from the root, appending '0' on each left branch
// and '1' on each right branch, and returns one Assignment per leaf in
// left-to-right order.
func (t *Tree) Extract() []Assignment {
	return t.extract(t.root, EmptyCodeword)
}

// extract is the recursive labelling written with an explicit stack, so a
// fully skewed tree of k leaves needs k-1 stack entries rather than k-1 call
// frames.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (t *Tree) extract(start nodeID, prefix Codeword) []Assignment {
	type stackItem struct {
		id     nodeID
		prefix Codeword
		x      byte
	}

	out := make([]Assignment, 0, t.NumLeaves())
	nodes := t.arena.nodes

	visit := func(id nodeID, prefix Codeword) *stackItem {
		n := &nodes[id]
		if n.isLeaf() {
			out = append(out, Assignment{
				Items:    append([]Symbol(nil), n.items...),
				Codeword: prefix,
			})
			return nil
		}
		return &stackItem{id: id, prefix: prefix}
	}

	stack := make([]stackItem, 0, log2uint(uint(len(nodes)))+1)
	if item := visit(start, prefix); item != nil {
		stack = append(stack, *item)
	}
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := &nodes[top.id]
		switch x {
		case 0:
			if item := visit(n.left, top.prefix.Append(0)); item != nil {
				stack = append(stack, *item)
			}
		case 1:
			if item := visit(n.right, top.prefix.Append(1)); item != nil {
				stack = append(stack, *item)
			}
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return out
}

// CodeTable extracts the Codewords of this tree into a CodeTable.
func (t *Tree) CodeTable() *CodeTable {
	assignments := t.Extract()
	codes := make(map[Symbol]Codeword, len(assignments))
	for _, a := range assignments {
		codes[a.Items[0]] = a.Codeword
	}
	return &CodeTable{codes: codes}
}

// New builds the Huffman code for a Source.
func New(src *Source) *CodeTable {
	return Build(src).CodeTable()
}
