package dualtag

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCBORLayout(t *testing.T) {
	data, err := MarshalCBOR([]Entry[string]{{Value: "A", LTag: Present, RTag: Absent}})
	require.NoError(t, err)
	// array(1) [ array(3) [ text(1) "A", 0, 1 ] ]
	assert.Equal(t, []byte{0x81, 0x83, 0x61, 'A', 0x00, 0x01}, data)
}

func TestCBORBuildsSameForest(t *testing.T) {
	data, err := MarshalCBOR(figureEntries(t))
	require.NoError(t, err)

	entries, err := UnmarshalCBOR[string](data)
	require.NoError(t, err)

	f, err := Build(entries)
	require.NoError(t, err)
	assert.Equal(t, "A B C E F D G H J I", preorderString(f))
}

func TestUnmarshalCBORRejectsBadTags(t *testing.T) {
	data, err := cbor.Marshal([]any{[]any{"A", 2, 1}})
	require.NoError(t, err)

	_, err = UnmarshalCBOR[string](data)
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestUnmarshalCBORRejectsGarbage(t *testing.T) {
	_, err := UnmarshalCBOR[string]([]byte{0xff, 0x00})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedEncoding)
}
