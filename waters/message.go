package waters

import (
	"io"

	"github.com/pkg/errors"

	"github.com/privacybydesign/go-waters-ibe/ctopt"
	"github.com/privacybydesign/go-waters-ibe/group"
)

// MessageSize is the fixed byte size of Message.ToBytes's output.
const MessageSize = group.SizeGT

// GenerateMessage draws a uniform element of GT from rng, suitable as a
// plaintext and, via its byte representation, as a source of symmetric
// keying material for a caller-provided KEM/DEM layer.
func GenerateMessage(rng io.Reader) (*Message, error) {
	m, err := group.RandGT(rng)
	if err != nil {
		return nil, errors.Wrap(err, "waters: sample message")
	}
	return &Message{m: m}, nil
}

// ToBytes encodes m as its compressed GT element.
func (m *Message) ToBytes() [MessageSize]byte {
	return group.EncodeGT(m.m)
}

// MessageFromBytes decodes a Message, subgroup-checking the GT element.
func MessageFromBytes(buf [MessageSize]byte) (*Message, error) {
	gt, ok := group.DecodeGT(buf)
	if !ok {
		return nil, errors.New("waters: invalid message encoding")
	}
	return &Message{m: gt}, nil
}

// Equal reports whether m and other encode to the same bytes.
func (m *Message) Equal(other *Message) bool {
	a, b := m.ToBytes(), other.ToBytes()
	return ctopt.ConstantTimeEqualBytes(a[:], b[:])
}
