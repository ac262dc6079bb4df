package dualtag

import (
	"github.com/cockroachdb/errors"

	"github.com/forestrie/go-dualtag/lcrs"
)

// Encode flattens f, starting at its root, into dual-tag level-order form.
// Build(Encode(f)) yields a forest with the same shape and values as f.
func Encode[T any](f *lcrs.Forest[T]) []Entry[T] {
	out := make([]Entry[T], 0, f.Len())
	for r := range f.LevelOrderRefs(f.Root()) {
		n := f.Node(r)
		e := Entry[T]{Value: n.Value(), LTag: Absent, RTag: Absent}
		if n.Child() != lcrs.NoRef {
			e.LTag = Present
		}
		if n.Sibling() != lcrs.NoRef {
			e.RTag = Present
		}
		out = append(out, e)
	}
	return out
}

// FromTags zips the parallel info / ltag / rtag arrays form of an encoding
// into entries. Tags must be 0 or 1.
func FromTags[T any](values []T, ltags, rtags []int) ([]Entry[T], error) {
	if len(ltags) != len(values) || len(rtags) != len(values) {
		return nil, errors.Wrapf(ErrMalformedEncoding,
			"array lengths differ: %d values, %d ltags, %d rtags", len(values), len(ltags), len(rtags))
	}
	entries := make([]Entry[T], len(values))
	for i := range values {
		if !validInt(ltags[i]) || !validInt(rtags[i]) {
			return nil, errors.Wrapf(ErrMalformedEncoding,
				"entry %d: tags (%d,%d) not in {0,1}", i, ltags[i], rtags[i])
		}
		entries[i] = Entry[T]{Value: values[i], LTag: Tag(ltags[i]), RTag: Tag(rtags[i])}
	}
	return entries, nil
}

// Tags splits entries into parallel info / ltag / rtag arrays.
func Tags[T any](entries []Entry[T]) (values []T, ltags, rtags []int) {
	values = make([]T, len(entries))
	ltags = make([]int, len(entries))
	rtags = make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.Value
		ltags[i] = int(e.LTag)
		rtags[i] = int(e.RTag)
	}
	return values, ltags, rtags
}

func validInt(t int) bool { return t == 0 || t == 1 }
