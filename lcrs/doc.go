package lcrs

/*

# Leftmost-child / right-sibling forests

This package holds general trees (any branching factor) using exactly two
links per node:

- child: the node's leftmost child
- sibling: the node's next sibling to the right

The children of a node are the chain reached by following sibling links from
its child. A forest is the same thing one level up: the roots are a sibling
chain hanging off an implicit super-root, entered through Forest.Root.

	      A              G
	   /  |  \         /   \
	  B   C    D      H     I
	     / \          |
	    E   F         J

is stored as

	A -sibling-> G
	A -child-> B -sibling-> C -sibling-> D
	C -child-> E -sibling-> F
	G -child-> H -sibling-> I
	H -child-> J

## Ownership

Nodes live in a single append-only arena owned by the Forest and refer to
each other by Ref (an arena index). NoRef marks an absent link. In a well
formed forest every node except the root is the target of exactly one link,
which makes that link its owner. The mutators do not enforce this; Check does.

## Traversal

Preorder yields a node, then its whole child subtree, then continues along
its sibling chain. The iterators are lazy, restartable and keep an explicit
stack, so a chain of a million nodes does not recurse a million frames.

*/
