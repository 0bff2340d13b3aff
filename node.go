package huffman

// Node is a vertex of a Huffman tree: either a leaf holding a symbol, or an
// internal node holding exactly two children.  Nodes are immutable once the
// tree is built.
type Node[S Symbol] struct {
	id     int
	freq   uint64
	symbol S
	left   *Node[S]
	right  *Node[S]
}

// ID returns the node's stable identity within its tree.  Leaves are
// numbered 0 .. n-1 in order of first occurrence, and internal nodes are
// numbered n, n+1, ... in the order they were created.  The ID is also the
// node's insertion sequence number for tie-breaking.
//
// Renderers that need per-node layout data should key it by ID.
func (n *Node[S]) ID() int {
	return n.id
}

// IsLeaf returns true iff this node holds a symbol.
func (n *Node[S]) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the leaf's symbol.  The second result is false for internal
// nodes.
func (n *Node[S]) Symbol() (S, bool) {
	if !n.IsLeaf() {
		var zero S
		return zero, false
	}
	return n.symbol, true
}

// Frequency returns the number of input symbols at or below this node.
func (n *Node[S]) Frequency() uint64 {
	return n.freq
}

// Left returns the 0-branch child, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the 1-branch child, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// Child returns Left() for bit 0 and Right() for bit 1.
func (n *Node[S]) Child(bit uint) *Node[S] {
	if bit&1 == 0 {
		return n.left
	}
	return n.right
}
