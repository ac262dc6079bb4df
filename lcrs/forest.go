package lcrs

// Node is a read-only copy of one arena record.
type Node[T any] struct {
	value   T
	child   Ref
	sibling Ref
}

func (n Node[T]) Value() T     { return n.value }
func (n Node[T]) Child() Ref   { return n.child }
func (n Node[T]) Sibling() Ref { return n.sibling }
func (n Node[T]) IsLeaf() bool { return n.child == NoRef }

// Forest is an arena of leftmost-child / right-sibling nodes.
//
// The zero value is an empty forest with no root.
type Forest[T any] struct {
	nodes []Node[T]
	root  Ref
	// rooted distinguishes a zero-value forest from one rooted at ref 0.
	rooted bool
}

// New returns an empty forest with room for capacity nodes before the arena
// grows.
func New[T any](capacity int) *Forest[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Forest[T]{
		nodes: make([]Node[T], 0, capacity),
		root:  NoRef,
	}
}

// NewNode appends a leaf holding value, with no child and no sibling.
//
// The first node allocated in a forest becomes its root unless SetRoot says
// otherwise.
func (f *Forest[T]) NewNode(value T) Ref {
	if uint64(len(f.nodes)) >= uint64(NoRef) {
		panic(ErrForestFull)
	}
	r := Ref(len(f.nodes))
	f.nodes = append(f.nodes, Node[T]{value: value, child: NoRef, sibling: NoRef})
	if !f.rooted {
		f.root = r
		f.rooted = true
	}
	return r
}

// Len returns the number of allocated nodes.
func (f *Forest[T]) Len() int { return len(f.nodes) }

// Root returns the first root of the forest, or NoRef if it is empty.
func (f *Forest[T]) Root() Ref {
	if !f.rooted {
		return NoRef
	}
	return f.root
}

// SetRoot replaces the forest entry point.
func (f *Forest[T]) SetRoot(r Ref) {
	f.root = r
	f.rooted = r != NoRef
}

// Node returns a copy of the record at r.
func (f *Forest[T]) Node(r Ref) Node[T] { return f.nodes[r] }

func (f *Forest[T]) Value(r Ref) T { return f.nodes[r].value }

func (f *Forest[T]) SetValue(r Ref, v T) { f.nodes[r].value = v }

// LeftmostChild returns the child link of r, NoRef for a leaf.
func (f *Forest[T]) LeftmostChild(r Ref) Ref { return f.nodes[r].child }

// RightSibling returns the sibling link of r, NoRef for the last child (or
// last root).
func (f *Forest[T]) RightSibling(r Ref) Ref { return f.nodes[r].sibling }

// SetChild replaces the child link of r. Pass NoRef to clear it.
func (f *Forest[T]) SetChild(r, child Ref) { f.nodes[r].child = child }

// SetSibling replaces the sibling link of r. Pass NoRef to clear it.
func (f *Forest[T]) SetSibling(r, sibling Ref) { f.nodes[r].sibling = sibling }

func (f *Forest[T]) inRange(r Ref) bool {
	return r != NoRef && uint64(r) < uint64(len(f.nodes))
}
