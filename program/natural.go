package program

import (
	"math/bits"

	"github.com/uncomputable/asset-gen/bitstream"
)

// MaxNatural is the largest magnitude the format permits for length,
// offset, and depth fields by consensus convention. The codec itself
// accepts the full uint64 range: encoding one past this bound is
// exactly how out-of-range decoder tests are built.
const MaxNatural = 1<<31 - 1

// Natural returns the canonical self-delimiting encoding of a positive
// integer as bit groups:
//
//	enc(1)   = 0
//	enc(n>1) = 1 · enc(len) · low len bits of n,  len = bitlen(n) - 1
//
// The bit layout is a wire contract with the external decoder. Natural
// panics if n is 0, which the code cannot represent.
func Natural(n uint64) []bitstream.Group {
	w := bitstream.NewWriter()
	writeNatural(w, n)
	used := w.BitsWritten()
	return bitstream.Pack(w.Finish(), used)
}

func writeNatural(w *bitstream.Writer, n uint64) {
	if n == 0 {
		panic("program: naturals start at 1")
	}
	length := bits.Len64(n) - 1
	if length == 0 {
		w.WriteBits(0, 1)
		return
	}
	w.WriteBits(1, 1)
	writeNatural(w, uint64(length))
	w.WriteBits(n&(1<<uint(length)-1), length)
}
