package lcrs

import "github.com/cockroachdb/errors"

// Ref is a node index in a Forest arena.
type Ref uint32

const NoRef = ^Ref(0)

var (
	ErrEmptyForest     = errors.New("lcrs: empty forest")
	ErrRefOutOfRange   = errors.New("lcrs: ref out of range")
	ErrSharedNode      = errors.New("lcrs: node owned by more than one link")
	ErrUnreachableNode = errors.New("lcrs: node unreachable from root")
	ErrForestFull      = errors.New("lcrs: forest arena full")
)
