package lcrs

import "github.com/cockroachdb/errors"

// Check verifies the ownership invariant: starting from the root, every
// link is in range, no node is the target of two links (so there are no
// cycles either) and every allocated node is reached.
func (f *Forest[T]) Check() error {
	root := f.Root()
	if root == NoRef {
		if len(f.nodes) == 0 {
			return ErrEmptyForest
		}
		return errors.Wrapf(ErrUnreachableNode, "no root for %d nodes", len(f.nodes))
	}
	if !f.inRange(root) {
		return errors.Wrapf(ErrRefOutOfRange, "root %d", root)
	}

	seen := make([]bool, len(f.nodes))
	seen[root] = true
	reached := 1

	stack := []Ref{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, link := range [2]Ref{f.nodes[n].child, f.nodes[n].sibling} {
			if link == NoRef {
				continue
			}
			if !f.inRange(link) {
				return errors.Wrapf(ErrRefOutOfRange, "node %d links to %d", n, link)
			}
			if seen[link] {
				return errors.Wrapf(ErrSharedNode, "node %d links to %d", n, link)
			}
			seen[link] = true
			reached++
			stack = append(stack, link)
		}
	}

	if reached != len(f.nodes) {
		for i, ok := range seen {
			if !ok {
				return errors.Wrapf(ErrUnreachableNode, "node %d", i)
			}
		}
	}
	return nil
}
