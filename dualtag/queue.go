package dualtag

import "github.com/forestrie/go-dualtag/lcrs"

// parentQueue is the FIFO of nodes whose child link is still unresolved.
// Entries are consumed in the order they were pushed; the head index only
// moves forward, so the backing slice is sized once for the whole build.
type parentQueue struct {
	refs []lcrs.Ref
	head int
}

func newParentQueue(capacity int) parentQueue {
	return parentQueue{refs: make([]lcrs.Ref, 0, capacity)}
}

func (q *parentQueue) push(r lcrs.Ref) {
	q.refs = append(q.refs, r)
}

// pop removes the front parent. ok=false indicates the queue is empty.
func (q *parentQueue) pop() (r lcrs.Ref, ok bool) {
	if q.head == len(q.refs) {
		return lcrs.NoRef, false
	}
	r = q.refs[q.head]
	q.head++
	return r, true
}

func (q *parentQueue) len() int {
	return len(q.refs) - q.head
}
