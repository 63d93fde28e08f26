package bitstream_test

import (
	"bytes"
	"testing"

	"github.com/uncomputable/asset-gen/bitstream"
)

func TestWriterBitPacking(t *testing.T) {
	tests := []struct {
		name   string
		writes []bitstream.Group
		want   []byte
	}{
		{
			name:   "single byte",
			writes: []bitstream.Group{{Bits: 0xA9, Width: 8}},
			want:   []byte{0xA9},
		},
		{
			name:   "partial byte is left aligned",
			writes: []bitstream.Group{{Bits: 0b101, Width: 3}},
			want:   []byte{0b10100000},
		},
		{
			name: "group straddles byte boundary",
			writes: []bitstream.Group{
				{Bits: 0b101, Width: 3},
				{Bits: 0b0100101000, Width: 10},
			},
			want: []byte{0b10101001, 0b01000000},
		},
		{
			name:   "full 64-bit group",
			writes: []bitstream.Group{{Bits: 0x0123456789ABCDEF, Width: 64}},
			want:   []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF},
		},
		{
			name: "width zero is a no-op",
			writes: []bitstream.Group{
				{Bits: 0b1, Width: 1},
				{Bits: 0xFFFF, Width: 0},
				{Bits: 0b1, Width: 1},
			},
			want: []byte{0b11000000},
		},
		{
			name:   "bits above width are ignored",
			writes: []bitstream.Group{{Bits: 0xFF, Width: 4}},
			want:   []byte{0xF0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := bitstream.NewWriter()
			var total int
			for _, g := range tt.writes {
				w.WriteBits(g.Bits, g.Width)
				total += g.Width
			}
			if got := w.BitsWritten(); got != total {
				t.Errorf("BitsWritten: got %d, want %d", got, total)
			}
			if got := w.Finish(); !bytes.Equal(got, tt.want) {
				t.Errorf("Finish: got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestWriterWriteBytes(t *testing.T) {
	w := bitstream.NewWriter()
	w.WriteBits(0b1, 1)
	w.WriteBytes([]byte{0xFF, 0x00})

	if got := w.BitsWritten(); got != 17 {
		t.Fatalf("BitsWritten: got %d, want 17", got)
	}
	want := []byte{0b11111111, 0b10000000, 0b00000000}
	if got := w.Finish(); !bytes.Equal(got, want) {
		t.Errorf("Finish: got %x, want %x", got, want)
	}
}

func TestWriterEmpty(t *testing.T) {
	w := bitstream.NewWriter()
	if got := w.Finish(); len(got) != 0 {
		t.Errorf("expected no bytes, got %x", got)
	}
}

func TestWriterWidthOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for width 65")
		}
	}()
	bitstream.NewWriter().WriteBits(0, 65)
}
