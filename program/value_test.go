package program_test

import (
	"testing"

	"github.com/uncomputable/asset-gen/program"
)

func TestValueBits(t *testing.T) {
	tests := []struct {
		name string
		v    *program.Value
		want string
	}{
		{"unit", program.UnitValue(), ""},
		{"u1_0", program.U1(0), "0"},
		{"u1_1", program.U1(1), "1"},
		{"u2", program.U2(0b10), "10"},
		{"u4", program.U4(0b1011), "1011"},
		{"u8", program.U8(0xA5), "10100101"},
		{"sum_of_product", program.SumR(program.Product(program.U1(1), program.U1(0))), "110"},
		{"sum_of_unit_left", program.SumL(program.UnitValue()), "0"},
		{"product_of_units", program.Product(program.UnitValue(), program.UnitValue()), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupBits(program.ValueGroups(tt.v))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if w := tt.v.BitWidth(); w != len(tt.want) {
				t.Errorf("BitWidth() = %d, want %d", w, len(tt.want))
			}
		})
	}
}

func TestValueWideWords(t *testing.T) {
	tests := []struct {
		name  string
		v     *program.Value
		width int
	}{
		{"u16", program.U16(0xFFFF), 16},
		{"u32", program.U32(0), 32},
		{"u64", program.U64(0x0123456789ABCDEF), 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := tt.v.BitWidth(); w != tt.width {
				t.Errorf("BitWidth() = %d, want %d", w, tt.width)
			}
			gs := program.ValueGroups(tt.v)
			var total int
			for _, g := range gs {
				total += g.Width
			}
			if total != tt.width {
				t.Errorf("encoded width %d, want %d", total, tt.width)
			}
		})
	}
}

func TestU64BitOrder(t *testing.T) {
	got := groupBits(program.ValueGroups(program.U64(1)))
	want := "0000000000000000000000000000000000000000000000000000000000000001"
	if got != want {
		t.Errorf("U64(1) = %q", got)
	}
}
