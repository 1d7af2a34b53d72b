// Package xorname provides Name, a fixed-size binary identifier used as a
// coordinate in an XOR metric space, as in Kademlia-style distributed hash
// tables (https://en.wikipedia.org/wiki/Kademlia#System_details).
//
// A Name is Size bytes (BitSize bits), stored most significant byte first,
// and behaves as a plain value: it is copied on assignment, compared byte
// for byte by ==, and usable as a map key. Because no operation mutates a
// name, values can be shared and passed between goroutines freely.
//
// Two orderings are defined and must not be confused:
//
//   - The total order (Compare, Less, LessOrEqual) sorts names as unsigned
//     big-endian integers, independent of any reference point.
//   - The distance order (CompareDistance, Closer, CloserOrEqual) sorts
//     names by their XOR distance from a reference name. Routing tables
//     use this one to decide which of two peers is nearer a target, and
//     CommonPrefixLen to pick the bucket a peer belongs in.
//
// Three encodings are provided. Hex and FromHex round-trip the full
// 2*Size-character lowercase hex form, also used by MarshalText and hence
// by JSON. MarshalBinary carries the raw Size bytes with no framing.
// MarshalCBOR embeds a name in CBOR documents as a length-tagged sequence
// of Size byte elements. String does not round-trip: it is the
// 14-character "48f2ab..ce67b0" debug form for logs.
package xorname
