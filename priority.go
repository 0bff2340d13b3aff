package huffman

import (
	"container/heap"
)

// lessPriority is the single source of truth for merge order: lower
// frequency first, and among equal frequencies, the node inserted earlier.
// Original leaves are inserted in order of first occurrence; merged nodes
// are inserted after all leaves, in creation order.  Node IDs are assigned
// in exactly that order.
func lessPriority[S Symbol](a, b *Node[S]) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.id < b.id
}

// type nodeHeap {{{

type nodeHeap[S Symbol] struct {
	list []*Node[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) PushNode(n *Node[S]) {
	heap.Push(h, n)
}

func (h *nodeHeap[S]) PopNode() *Node[S] {
	return heap.Pop(h).(*Node[S])
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	return lessPriority(h.list[i], h.list[j])
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(*Node[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[rune])(nil)

// }}}
