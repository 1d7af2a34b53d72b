package xorname

import "testing"

func BenchmarkDistanceOps(b *testing.B) {
	target, x := Random(), Random()
	// Names differing only in the last bit force a scan of all Size bytes.
	y := flipBit(x, BitSize-1)

	b.Run("CompareDistance", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = target.CompareDistance(x, y)
		}
	})

	b.Run("CommonPrefixLen", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = x.CommonPrefixLen(y)
		}
	})
}

func BenchmarkHexCodec(b *testing.B) {
	n := Random()
	s := n.Hex()

	b.Run("Hex", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = n.Hex()
		}
	})

	b.Run("FromHex", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := FromHex(s); err != nil {
				b.Fatal(err)
			}
		}
	})
}
