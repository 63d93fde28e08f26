package program

import "github.com/uncomputable/asset-gen/bitstream"

type valueKind uint8

const (
	kindUnit valueKind = iota
	kindSumL
	kindSumR
	kindProduct
)

// Value is a Simplicity scalar: the unit value, tagged sums, and
// products of values. Values are immutable and may share subtrees.
type Value struct {
	kind  valueKind
	left  *Value
	right *Value
}

// UnitValue returns the unit value.
func UnitValue() *Value {
	return &Value{kind: kindUnit}
}

// SumL wraps inner in the left branch of a sum.
func SumL(inner *Value) *Value {
	return &Value{kind: kindSumL, left: inner}
}

// SumR wraps inner in the right branch of a sum.
func SumR(inner *Value) *Value {
	return &Value{kind: kindSumR, left: inner}
}

// Product pairs two values.
func Product(left, right *Value) *Value {
	return &Value{kind: kindProduct, left: left, right: right}
}

// U1 returns the 1-bit value of the low bit of v: a left sum of unit
// for 0, a right sum of unit for 1.
func U1(v uint8) *Value {
	if v&1 == 0 {
		return SumL(UnitValue())
	}
	return SumR(UnitValue())
}

// U2 returns the 2-bit value of the low two bits of v.
func U2(v uint8) *Value {
	return Product(U1(v>>1), U1(v))
}

// U4 returns the 4-bit value of the low four bits of v.
func U4(v uint8) *Value {
	return Product(U2(v>>2), U2(v))
}

// U8 returns the 8-bit value of v.
func U8(v uint8) *Value {
	return Product(U4(v>>4), U4(v))
}

// U16 returns the 16-bit value of v.
func U16(v uint16) *Value {
	return Product(U8(uint8(v>>8)), U8(uint8(v)))
}

// U32 returns the 32-bit value of v.
func U32(v uint32) *Value {
	return Product(U16(uint16(v>>16)), U16(uint16(v)))
}

// U64 returns the 64-bit value of v.
func U64(v uint64) *Value {
	return Product(U32(uint32(v>>32)), U32(uint32(v)))
}

// BitWidth returns the width of the value's canonical encoding in bits.
func (v *Value) BitWidth() int {
	switch v.kind {
	case kindUnit:
		return 0
	case kindSumL, kindSumR:
		return 1 + v.left.BitWidth()
	default:
		return v.left.BitWidth() + v.right.BitWidth()
	}
}

// ValueGroups returns the canonical flat bit encoding of v as bit
// groups: unit contributes nothing, a sum contributes its tag bit then
// the inner value, a product contributes left then right.
func ValueGroups(v *Value) []bitstream.Group {
	w := bitstream.NewWriter()
	v.write(w)
	used := w.BitsWritten()
	return bitstream.Pack(w.Finish(), used)
}

func (v *Value) write(w *bitstream.Writer) {
	switch v.kind {
	case kindUnit:
	case kindSumL:
		w.WriteBits(0, 1)
		v.left.write(w)
	case kindSumR:
		w.WriteBits(1, 1)
		v.left.write(w)
	default:
		v.left.write(w)
		v.right.write(w)
	}
}
