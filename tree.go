package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	mathbits "math/bits"
	"unicode/utf8"
)

// Tree is a built Huffman tree.  It owns every node reachable from its root,
// and it is immutable; any number of goroutines may read it concurrently.
type Tree[S Symbol] struct {
	root      *Node[S]
	nodes     []*Node[S]
	numLeaves int
}

// Root returns the root node.  For single-symbol input, the root is a leaf.
func (t *Tree[S]) Root() *Node[S] {
	return t.root
}

// Len returns the total number of nodes, leaves and internal nodes alike.
// For n distinct symbols this is 2n-1.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree[S]) NumLeaves() int {
	return t.numLeaves
}

// Node returns the node with the given ID, or nil if there is none.
func (t *Tree[S]) Node(id int) *Node[S] {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Leaves returns the leaf nodes in order of first occurrence.
func (t *Tree[S]) Leaves() []*Node[S] {
	out := make([]*Node[S], t.numLeaves)
	copy(out, t.nodes[:t.numLeaves])
	return out
}

// Walk visits every node in depth-first pre-order, left before right.  The
// path argument is the sequence of branches taken from the root, which for a
// leaf is its code (except that a lone root leaf has an empty path).
func (t *Tree[S]) Walk(fn func(n *Node[S], path Code)) {
	type stackItem struct {
		n    *Node[S]
		path Code
	}

	// The stack holds at most one pending sibling per level, so for
	// balanced trees it stays near log2(n) entries.
	stack := make([]stackItem, 0, mathbits.Len(uint(t.numLeaves))+1)
	stack = append(stack, stackItem{n: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.n, top.path)
		if top.n.IsLeaf() {
			continue
		}

		// Push right first so that left is visited first.
		stack = append(stack, stackItem{n: top.n.right, path: top.path.Append(1)})
		stack = append(stack, stackItem{n: top.n.left, path: top.path.Append(0)})
	}
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Each line is one node, indented by depth.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.Walk(func(n *Node[S], path Code) {
		buf.WriteByte('\t')
		for i := byte(0); i < path.Size; i++ {
			buf.WriteString("  ")
		}
		if sym, ok := n.Symbol(); ok {
			fmt.Fprintf(&buf, "#%d %s leaf %s freq=%d\n", n.id, path, FormatSymbol(sym), n.freq)
		} else {
			fmt.Fprintf(&buf, "#%d %s node freq=%d left=#%d right=#%d\n", n.id, path, n.freq, n.left.id, n.right.id)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// NodeView is the read-only, renderer-facing description of one node.
// Internal nodes have a nil Symbol and non-nil Left and Right.
type NodeView struct {
	ID        int    `json:"id"`
	Frequency uint64 `json:"frequency"`
	Symbol    any    `json:"symbol"`
	Left      *int   `json:"left,omitempty"`
	Right     *int   `json:"right,omitempty"`
}

// TreeView is the renderer-facing description of a whole tree.  Nodes is
// indexed by node ID.
type TreeView struct {
	Root  int        `json:"root"`
	Nodes []NodeView `json:"nodes"`
}

// View returns the renderer-facing description of the tree.
func (t *Tree[S]) View() TreeView {
	view := TreeView{
		Root:  t.root.id,
		Nodes: make([]NodeView, len(t.nodes)),
	}
	for id, n := range t.nodes {
		nv := NodeView{ID: id, Frequency: n.freq}
		if sym, ok := n.Symbol(); ok {
			nv.Symbol = SymbolValue(sym)
		} else {
			left, right := n.left.id, n.right.id
			nv.Left = &left
			nv.Right = &right
		}
		view.Nodes[id] = nv
	}
	return view
}

// MarshalJSON fulfills json.Marshaler.
func (t *Tree[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.View())
}

var _ json.Marshaler = (*Tree[rune])(nil)

// SymbolValue converts a symbol into a value suitable for JSON output: runes
// and ASCII bytes become one-character strings, bytes 0x80 and above become
// the four-character escape "\xNN", and anything else is returned as is.
// Distinct symbols always yield distinct values.
func SymbolValue[S Symbol](sym S) any {
	switch x := any(sym).(type) {
	case rune:
		return string(x)
	case byte:
		if x >= utf8.RuneSelf {
			return fmt.Sprintf("\\x%02x", x)
		}
		return string([]byte{x})
	default:
		return x
	}
}
