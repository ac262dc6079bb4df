package dualtag

import (
	"github.com/cockroachdb/errors"

	"github.com/forestrie/go-dualtag/lcrs"
)

// Build reconstructs the leftmost-child / right-sibling forest described by a
// dual-tag level-order encoding.
//
// The returned forest is rooted at the node for entries[0]; the remaining top
// level trees follow it along RightSibling. On error no forest is returned.
func Build[T any](entries []Entry[T], opts ...Option) (*lcrs.Forest[T], error) {
	o := newBuildOptions(opts...)

	if len(entries) < 1 {
		return nil, o.reject(errors.Wrap(ErrMalformedEncoding, "no entries"))
	}

	capacity := o.CapacityHint
	if capacity < len(entries) {
		capacity = len(entries)
	}
	f := lcrs.New[T](capacity)

	// Only nodes with ltag = 0 are queued, so this is an upper bound.
	pending := newParentQueue(len(entries))

	var zero T
	cur := f.NewNode(zero)

	last := len(entries) - 1
	for i := 0; i < last; i++ {
		e := entries[i]
		if err := checkTags(i, e); err != nil {
			return nil, o.reject(err)
		}

		f.SetValue(cur, e.Value)
		if e.HasChild() {
			pending.push(cur)
		} else {
			f.SetChild(cur, lcrs.NoRef)
		}

		next := f.NewNode(zero)
		if e.HasSibling() {
			f.SetSibling(cur, next)
		} else {
			// cur closes its sibling group, so next opens the group of
			// the oldest parent still waiting for children.
			f.SetSibling(cur, lcrs.NoRef)
			parent, ok := pending.pop()
			if !ok {
				return nil, o.reject(errors.Wrapf(ErrMalformedEncoding,
					"entry %d: entry %d has no parent left to adopt it", i, i+1))
			}
			f.SetChild(parent, next)
		}
		cur = next
	}

	final := entries[last]
	if err := checkTags(last, final); err != nil {
		return nil, o.reject(err)
	}
	f.SetValue(cur, final.Value)
	f.SetChild(cur, lcrs.NoRef)
	f.SetSibling(cur, lcrs.NoRef)

	if o.StrictTags {
		if final.HasChild() || final.HasSibling() {
			return nil, o.reject(errors.Wrapf(ErrMalformedEncoding,
				"entry %d: final entry claims a child or sibling", last))
		}
		if n := pending.len(); n > 0 {
			return nil, o.reject(errors.Wrapf(ErrMalformedEncoding,
				"%d parents never received a child", n))
		}
	}

	if o.Log != nil {
		o.Log.Infof("Build: %d entries, %d unmatched parents", len(entries), pending.len())
	}
	return f, nil
}

func checkTags[T any](i int, e Entry[T]) error {
	if !e.LTag.Valid() || !e.RTag.Valid() {
		return errors.Wrapf(ErrMalformedEncoding, "entry %d: tags (%d,%d) not in {0,1}", i, e.LTag, e.RTag)
	}
	return nil
}

func (o *BuildOptions) reject(err error) error {
	if o.Log != nil {
		o.Log.Infof("Build: %v", err)
	}
	return err
}
