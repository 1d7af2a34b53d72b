package xorname

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLength is returned when decoding input that does not describe
// exactly Size bytes. Decoders wrap it with the expected and actual
// lengths where those differ from the obvious.
var ErrInvalidLength = errors.New("xorname: invalid length")

// InvalidCharError reports a character that is not a hex digit in input to
// FromHex. Pos is the 0-based index of the character in the input string.
type InvalidCharError struct {
	Char byte
	Pos  int
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("xorname: invalid hex character %q at position %d", e.Char, e.Pos)
}

// Hex encodes the name as a string of exactly 2*Size lowercase hex
// characters, most significant byte first, with no separators or prefix.
func (n Name) Hex() string {
	return hex.EncodeToString(n[:])
}

// FromHex decodes a Name from its Hex form. Upper and lower case digits
// are accepted. A character outside [0-9a-fA-F] yields an InvalidCharError
// naming the character and its position; input that decodes to anything
// other than Size bytes, odd-length input included, yields
// ErrInvalidLength. Character errors take precedence over length errors.
func FromHex(s string) (Name, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		var bad hex.InvalidByteError
		if errors.As(err, &bad) {
			// Decoding stops at the first invalid byte, so its first
			// occurrence in s is where decoding failed.
			return Name{}, InvalidCharError{Char: byte(bad), Pos: strings.IndexByte(s, byte(bad))}
		}
		// hex.ErrLength: a dangling half byte.
		return Name{}, ErrInvalidLength
	}
	if len(raw) != Size {
		return Name{}, ErrInvalidLength
	}
	var n Name
	copy(n[:], raw)
	return n, nil
}

// String returns the shortened debug form of the name: the first three and
// last three bytes in hex separated by "..", e.g. "48f2ab..ce67b0", 14
// characters in total. It is meant for logs and is not decodable; use Hex
// for the full encoding.
func (n Name) String() string {
	return fmt.Sprintf("%02x%02x%02x..%02x%02x%02x",
		n[0], n[1], n[2], n[Size-3], n[Size-2], n[Size-1])
}
