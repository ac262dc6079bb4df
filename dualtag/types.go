package dualtag

import "github.com/cockroachdb/errors"

// Tag is a one-bit link marker. Present (0) and Absent (1) are the encoding's
// own values and must not be reordered.
type Tag uint8

const (
	Present Tag = 0
	Absent  Tag = 1
)

func (t Tag) Valid() bool { return t == Present || t == Absent }

// Entry is one node of a dual-tag level-order encoding.
type Entry[T any] struct {
	Value T
	// LTag is Present when the node has a leftmost child.
	LTag Tag
	// RTag is Present when the node has a right sibling.
	RTag Tag
}

func (e Entry[T]) HasChild() bool   { return e.LTag == Present }
func (e Entry[T]) HasSibling() bool { return e.RTag == Present }

var (
	ErrMalformedEncoding = errors.New("dualtag: malformed encoding")
)
