package program_test

import (
	"testing"

	"github.com/uncomputable/asset-gen/bitstream"
	"github.com/uncomputable/asset-gen/program"
)

// groupBits renders groups as a string of '0' and '1' runes,
// most significant bit first.
func groupBits(gs []bitstream.Group) string {
	var s []byte
	for _, g := range gs {
		for i := g.Width - 1; i >= 0; i-- {
			if g.Bits>>uint(i)&1 == 1 {
				s = append(s, '1')
			} else {
				s = append(s, '0')
			}
		}
	}
	return string(s)
}

func TestNatural(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{1, "0"},
		{2, "100"},
		{3, "101"},
		{4, "110000"},
		{5, "110001"},
		{7, "110011"},
		{8, "1101000"},
		{15, "1101111"},
		{16, "11100000000"},
		{31, "11100001111"},
	}
	for _, tt := range tests {
		got := groupBits(program.Natural(tt.n))
		if got != tt.want {
			t.Errorf("Natural(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestNaturalBoundaryWidths(t *testing.T) {
	// The largest value a decoder accepts is 2^31 - 1. Crossing the
	// boundary grows the encoding by one bit.
	tests := []struct {
		n    uint64
		bits int
	}{
		{program.MaxNatural, 42},
		{program.MaxNatural + 1, 43},
	}
	for _, tt := range tests {
		gs := program.Natural(tt.n)
		var total int
		for _, g := range gs {
			total += g.Width
		}
		if total != tt.bits {
			t.Errorf("Natural(%d): %d bits, want %d", tt.n, total, tt.bits)
		}
	}
}

func TestNaturalZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero")
		}
	}()
	program.Natural(0)
}
