package dualtag

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-dualtag/lcrs"
)

// parseEntries reads one "value ltag rtag" triple per line.
func parseEntries(t *testing.T, input string) []Entry[string] {
	t.Helper()
	var entries []Entry[string]
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		require.Len(t, fields, 3, "line %q", line)
		l, err := strconv.Atoi(fields[1])
		require.NoError(t, err)
		r, err := strconv.Atoi(fields[2])
		require.NoError(t, err)
		entries = append(entries, Entry[string]{Value: fields[0], LTag: Tag(l), RTag: Tag(r)})
	}
	return entries
}

func formatEntries(entries []Entry[string]) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %d %d\n", e.Value, e.LTag, e.RTag)
	}
	return b.String()
}

// parseTree reads an indented outline, two spaces per level, into a forest.
func parseTree(t *testing.T, input string) *lcrs.Forest[string] {
	t.Helper()
	f := lcrs.New[string](0)
	// last[d] is the most recent node at depth d under the current parent.
	var last []lcrs.Ref
	for _, line := range strings.Split(input, "\n") {
		v := strings.TrimSpace(line)
		if v == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		require.Zero(t, indent%2, "line %q", line)
		d := indent / 2
		require.LessOrEqual(t, d, len(last), "line %q skips a level", line)

		n := f.NewNode(v)
		switch {
		case d < len(last):
			f.SetSibling(last[d], n)
		case d > 0:
			f.SetChild(last[d-1], n)
		}
		last = append(last[:d], n)
	}
	return f
}

// formatTree renders f as the outline parseTree reads.
func formatTree(f *lcrs.Forest[string]) string {
	var b strings.Builder
	var walk func(r lcrs.Ref, depth int)
	walk = func(r lcrs.Ref, depth int) {
		for ; r != lcrs.NoRef; r = f.RightSibling(r) {
			fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", depth), f.Value(r))
			walk(f.LeftmostChild(r), depth+1)
		}
	}
	walk(f.Root(), 0)
	return b.String()
}

func preorderString[T any](f *lcrs.Forest[T]) string {
	var parts []string
	for v := range f.Preorder(f.Root()) {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}

// figureEntries is the forest
//
//	      A              G
//	   /  |  \         /   \
//	  B   C    D      H     I
//	     / \          |
//	    E   F         J
func figureEntries(t *testing.T) []Entry[string] {
	t.Helper()
	entries, err := FromTags(
		[]string{"A", "G", "B", "C", "D", "H", "I", "E", "F", "J"},
		[]int{0, 0, 1, 0, 1, 0, 1, 1, 1, 1},
		[]int{0, 1, 0, 0, 1, 0, 1, 0, 1, 1},
	)
	require.NoError(t, err)
	return entries
}
