package prefixcode

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// weightSet holds the nodes that have not yet been merged, as a minheap keyed
// on (weight, seq).  seq is the node's index in the arena, so ties go to the
// node created first.
type weightSet struct {
	arena *arena
	list  []nodeID
}

func newWeightSet(a *arena, ids []nodeID) *weightSet {
	ws := &weightSet{arena: a, list: append([]nodeID(nil), ids...)}
	ws.Init()
	return ws
}

// mergeStep removes the two lightest nodes, merges them under a new parent,
// and adds the parent back to the set.  The first node removed becomes the
// left child.
func (ws *weightSet) mergeStep() nodeID {
	assert.Assertf(ws.Len() >= 2, "mergeStep requires at least 2 nodes, have %d", ws.Len())

	a := heap.Pop(ws).(nodeID)
	b := heap.Pop(ws).(nodeID)
	parent := ws.arena.merge(a, b)
	heap.Push(ws, parent)
	return parent
}

// drain runs mergeStep until a single node remains and returns it.
func (ws *weightSet) drain() nodeID {
	assert.Assertf(ws.Len() >= 1, "cannot drain an empty weight set")

	for ws.Len() > 1 {
		ws.mergeStep()
	}
	return heap.Pop(ws).(nodeID)
}

func (ws *weightSet) Init() {
	heap.Init(ws)
}

func (ws *weightSet) Len() int {
	return len(ws.list)
}

func (ws *weightSet) Swap(i, j int) {
	ws.list[i], ws.list[j] = ws.list[j], ws.list[i]
}

func (ws *weightSet) Less(i, j int) bool {
	a, b := ws.list[i], ws.list[j]
	aw, bw := ws.arena.nodes[a].weight, ws.arena.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (ws *weightSet) Push(x interface{}) {
	ws.list = append(ws.list, x.(nodeID))
}

func (ws *weightSet) Pop() interface{} {
	last := len(ws.list) - 1
	x := ws.list[last]
	ws.list = ws.list[:last]
	return x
}

var _ heap.Interface = (*weightSet)(nil)
