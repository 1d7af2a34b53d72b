package xorname

import "math/bits"

// CommonPrefixLen returns the number of leading bits in which n and other
// agree, counted from the most significant bit. E.g. for names starting
// 10101... and 10011... it returns 2: the common prefix 10 has length 2 and
// the third bit is the first in which they disagree.
//
// The result ranges from 0 through BitSize and equals BitSize only when
// n == other. Kademlia-style routing tables use it directly as the bucket
// index of a peer: if d > 0 is the XOR distance between n and other, then
// BitSize - CommonPrefixLen is the bit length of d, i.e. the magnitude
// class floor(log2(d)) + 1.
func (n Name) CommonPrefixLen(other Name) int {
	for i := 0; i < Size; i++ {
		if x := n[i] ^ other[i]; x != 0 {
			return i*8 + bits.LeadingZeros8(x)
		}
	}
	return BitSize
}

// CompareDistance compares a and b with respect to their XOR distance from
// n: -1 when a is closer to n, +1 when b is closer, 0 when a == b. Distinct
// names are never equidistant from n, so 0 really does mean a == b.
//
// Only the first byte at which a and b differ is inspected. A prefix they
// share contributes the same amount to both distances and cannot change
// the outcome, so the full distances are never materialized.
func (n Name) CompareDistance(a, b Name) int {
	for i := 0; i < Size; i++ {
		if a[i] != b[i] {
			if a[i]^n[i] < b[i]^n[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Xor returns the bitwise XOR of n and other. Read as a most-significant-
// first integer this is the XOR distance between the two names, so
// x.Xor(target).Compare(y.Xor(target)) always agrees with
// target.CompareDistance(x, y).
func (n Name) Xor(other Name) Name {
	var d Name
	for i := range n {
		d[i] = n[i] ^ other[i]
	}
	return d
}

// Closer returns true if x is strictly closer to target than y.
//
// "Closer" is as per the Kademlia notion of XOR distance. Equivalently,
// this returns true if in the most significant bit where x and y disagree,
// x agrees with target.
func Closer(x, y, target Name) bool {
	return target.CompareDistance(x, y) < 0
}

// CloserOrEqual returns true if x is closer to target than y, or when
// x == y.
func CloserOrEqual(x, y, target Name) bool {
	return target.CompareDistance(x, y) <= 0
}
