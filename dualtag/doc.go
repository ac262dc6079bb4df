package dualtag

/*

# Dual-tag level-order encoding

A forest in leftmost-child / right-sibling form (see package lcrs) can be
flattened into a single breadth-first sequence of entries, each carrying its
value and two one-bit tags:

	ltag = 0  the node has a leftmost child      ltag = 1  it is a leaf
	rtag = 0  the node has a right sibling       rtag = 1  it is the last child

The tag values are fixed by the encoding: 0 means the link is present, 1 means
it is absent. Roots of a forest are siblings of an implicit super-root, so the
last root carries rtag = 1 exactly like the last child of any parent.

For the forest

	      A              G
	   /  |  \         /   \
	  B   C    D      H     I
	     / \          |
	    E   F         J

the encoding is

	info  A G B C D H I E F J
	ltag  0 0 1 0 1 0 1 1 1 1
	rtag  0 1 0 0 1 0 1 0 1 1

## Reconstruction

Build rebuilds the links in one forward pass with a FIFO of pending parents
(nodes that declared ltag = 0 but have not been given their child yet):

1. a node with ltag = 0 joins the back of the queue;
2. the entry after a node with rtag = 0 is that node's sibling;
3. the entry after a node with rtag = 1 starts a new sibling group, and is the
   leftmost child of the parent at the front of the queue.

Level order guarantees that sibling groups appear in the same order as the
parents that own them, so the front of the queue is always the right parent.
Any other queue discipline silently produces a different tree.

The last entry closes every group and is always stored as a leaf with no
sibling; its tags are not consulted unless strict tag checking is enabled.

Build is the breadth-first dual of the depth-first reconstruction from a
pre-order dual-tag sequence, which uses a stack in place of the queue.

*/
