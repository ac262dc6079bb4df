package dualtag

import (
	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
)

// An encoding is stored as a CBOR array of 3-element arrays
// [value, ltag, rtag], using core deterministic encoding.
type wireEntry[T any] struct {
	_     struct{} `cbor:",toarray"`
	Value T
	LTag  uint8
	RTag  uint8
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{MaxArrayElements: 1<<31 - 1}).DecMode(); err != nil {
		panic(err)
	}
}

func MarshalCBOR[T any](entries []Entry[T]) ([]byte, error) {
	wire := make([]wireEntry[T], len(entries))
	for i, e := range entries {
		wire[i] = wireEntry[T]{Value: e.Value, LTag: uint8(e.LTag), RTag: uint8(e.RTag)}
	}
	data, err := encMode.Marshal(wire)
	if err != nil {
		return nil, errors.Wrap(err, "dualtag: encoding cbor")
	}
	return data, nil
}

// UnmarshalCBOR decodes an encoding written by MarshalCBOR. Tags outside
// {0,1} are reported as ErrMalformedEncoding.
func UnmarshalCBOR[T any](data []byte) ([]Entry[T], error) {
	var wire []wireEntry[T]
	if err := decMode.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, "dualtag: decoding cbor")
	}
	entries := make([]Entry[T], len(wire))
	for i, w := range wire {
		e := Entry[T]{Value: w.Value, LTag: Tag(w.LTag), RTag: Tag(w.RTag)}
		if err := checkTags(i, e); err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}
