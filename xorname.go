package xorname

import (
	"bytes"
	"crypto/rand"
	"fmt"
)

const (
	// Size is the length of a Name in bytes.
	Size = 64

	// BitSize is the length of a Name in bits.
	BitSize = Size * 8
)

// Name is a BitSize-bit number, viewed as a point in XOR space.
//
// Its only content is an array of Size bytes, i.e. a number between 0 and
// 2^BitSize - 1, stored most-significant byte first. XOR space is the space
// of these numbers with the Kademlia XOR metric as the notion of distance:
// the points x and y have distance x XOR y, interpreted as an unsigned
// integer.
//
// Name is a plain value: assignment copies it, == compares it byte for
// byte, and it can be used as a map key. The zero value is the name with
// all bits zero.
type Name [Size]byte

// New constructs a Name from a Size byte array.
func New(id [Size]byte) Name {
	return Name(id)
}

// Random returns a Name with all Size bytes drawn uniformly from the
// crypto/rand source. It is meant for tests and examples; deriving real
// identities (e.g. by hashing content) is the caller's concern.
func Random() Name {
	var n Name
	if _, err := rand.Read(n[:]); err != nil {
		panic(fmt.Sprintf("xorname: reading random source: %v", err))
	}
	return n
}

// Bytes returns a copy of the name as a byte slice.
func (n Name) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, n[:])
	return b
}

// Slice returns a copy of the bytes in [from, to): Slice(0, k) is a prefix,
// Slice(k, Size) a suffix, Slice(0, Size) the whole name. The returned
// slice is independent of n, so mutating it leaves the name untouched.
// Out-of-range indices panic, exactly as slicing an array does.
func (n Name) Slice(from, to int) []byte {
	return append([]byte(nil), n[from:to]...)
}

// Compare returns -1 if n sorts before other, +1 if it sorts after and 0 if
// both are equal. The order is lexicographic over the raw bytes, which for
// most-significant-first numbers is numeric order; equivalently, it orders
// names by their distance from the zero name.
func (n Name) Compare(other Name) int {
	return bytes.Compare(n[:], other[:])
}

// Less returns true if n < other, otherwise, false.
func (n Name) Less(other Name) bool {
	return bytes.Compare(n[:], other[:]) < 0
}

// LessOrEqual returns true if n <= other, otherwise, false.
func (n Name) LessOrEqual(other Name) bool {
	return bytes.Compare(n[:], other[:]) <= 0
}

// Equal returns true if n == other, otherwise, false. It is provided for
// symmetry with the other comparisons; the == operator is equivalent.
func (n Name) Equal(other Name) bool {
	return n == other
}
