package xorname

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The sequence codec carries a Name inside larger serialized structures as
// a definite-length CBOR array of Size byte-valued elements in index
// order, so the array's length tag doubles as the length check on decode.
// A plain byte string would be more compact, but the array form is the
// wire format established for these names.
var (
	seqEncMode cbor.EncMode
	seqDecMode cbor.DecMode
)

func init() {
	var err error
	seqEncMode, err = cbor.EncOptions{ByteArray: cbor.ByteArrayToArray}.EncMode()
	if err != nil {
		panic(err)
	}
	seqDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
}

// MarshalCBOR implements cbor.Marshaler. The name is encoded as a CBOR
// array of exactly Size elements, one unsigned integer per byte, most
// significant byte first.
func (n Name) MarshalCBOR() ([]byte, error) {
	return seqEncMode.Marshal([Size]byte(n))
}

// UnmarshalCBOR implements cbor.Unmarshaler. It accepts the array form
// produced by MarshalCBOR, and, leniently, a byte string of length Size.
// A sequence whose declared length is not Size yields an error wrapping
// ErrInvalidLength and naming the expected and actual lengths. On any
// error the receiver is left untouched.
func (n *Name) UnmarshalCBOR(data []byte) error {
	var elems []byte
	if err := seqDecMode.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("xorname: decoding sequence: %w", err)
	}
	if len(elems) != Size {
		return fmt.Errorf("%w: expected sequence of length %d, got %d", ErrInvalidLength, Size, len(elems))
	}
	copy(n[:], elems)
	return nil
}

// MarshalText implements encoding.TextMarshaler. The form is the full Hex
// encoding, which is also how a Name appears when embedded in JSON.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the Hex
// form and returning the same errors as FromHex.
func (n *Name) UnmarshalText(text []byte) error {
	decoded, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The form is the raw
// Size bytes, most significant first, with no framing.
func (n Name) MarshalBinary() ([]byte, error) {
	return n.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Input of any
// length other than Size yields an error wrapping ErrInvalidLength.
func (n *Name) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, Size, len(data))
	}
	copy(n[:], data)
	return nil
}
