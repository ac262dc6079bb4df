package lcrs

import "iter"

// PreorderRefs yields r, the subtree under r's leftmost child, then carries
// on along r's sibling chain, root first throughout. Starting at the forest
// root visits every tree of the forest in order.
func (f *Forest[T]) PreorderRefs(r Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		// Pending right siblings, innermost last.
		var stack []Ref
		n := r
		for {
			for n != NoRef {
				if !yield(n) {
					return
				}
				if s := f.nodes[n].sibling; s != NoRef {
					stack = append(stack, s)
				}
				n = f.nodes[n].child
			}
			if len(stack) == 0 {
				return
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}
}

// Preorder yields node values in root-first order, see PreorderRefs.
func (f *Forest[T]) Preorder(r Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range f.PreorderRefs(r) {
			if !yield(f.nodes[n].value) {
				return
			}
		}
	}
}

// LevelOrderRefs yields the sibling chain starting at r, then the children of
// those nodes, breadth first. Each sibling group is emitted whole, in the
// order its parent was emitted.
func (f *Forest[T]) LevelOrderRefs(r Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		if r == NoRef {
			return
		}
		groups := []Ref{r}
		for head := 0; head < len(groups); head++ {
			for n := groups[head]; n != NoRef; n = f.nodes[n].sibling {
				if !yield(n) {
					return
				}
				if c := f.nodes[n].child; c != NoRef {
					groups = append(groups, c)
				}
			}
		}
	}
}

// Children yields the children of r, leftmost first.
func (f *Forest[T]) Children(r Ref) iter.Seq[Ref] {
	return f.chain(f.nodes[r].child)
}

// Roots yields the top level trees of the forest.
func (f *Forest[T]) Roots() iter.Seq[Ref] {
	return f.chain(f.Root())
}

func (f *Forest[T]) chain(first Ref) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for n := first; n != NoRef; n = f.nodes[n].sibling {
			if !yield(n) {
				return
			}
		}
	}
}
