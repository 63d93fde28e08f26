package bitstream_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/uncomputable/asset-gen/bitstream"
)

// bitAt returns bit i of b, counting MSB-first across the buffer.
func bitAt(b []byte, i int) byte {
	return b[i/8] >> (7 - i%8) & 1
}

func TestFlushAlignmentLaw(t *testing.T) {
	// Flush returns the plain bytes iff the total width is a multiple
	// of eight; otherwise a PaddingError with the exact deficit.
	for width := 0; width <= 64; width++ {
		q := &bitstream.Queue{}
		q.Append(0, width)

		b, err := q.Flush()
		if width%8 == 0 {
			if err != nil {
				t.Fatalf("width %d: unexpected error %v", width, err)
			}
			if len(b) != width/8 {
				t.Fatalf("width %d: got %d bytes, want %d", width, len(b), width/8)
			}
			continue
		}

		var pe *bitstream.PaddingError
		if !errors.As(err, &pe) {
			t.Fatalf("width %d: expected PaddingError, got %v", width, err)
		}
		if want := 8 - width%8; pe.DeficitBits != want {
			t.Errorf("width %d: deficit %d, want %d", width, pe.DeficitBits, want)
		}
		if len(pe.Bytes) != (width+7)/8 {
			t.Errorf("width %d: got %d padded bytes, want %d", width, len(pe.Bytes), (width+7)/8)
		}
	}
}

func TestFlushBitOrder(t *testing.T) {
	q := &bitstream.Queue{}
	q.Append(0b101, 3)
	q.Append(0b01001, 5)
	q.AppendBytes([]byte{0xFF})

	b, err := q.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0b10101001, 0xFF}
	if !bytes.Equal(b, want) {
		t.Errorf("got %x, want %x", b, want)
	}
}

func TestFlushConsumesQueue(t *testing.T) {
	q := &bitstream.Queue{}
	q.Append(0xFF, 8)
	if _, err := q.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := q.TotalWidth(); got != 0 {
		t.Errorf("queue not drained: %d bits left", got)
	}
	b, err := q.Flush()
	if err != nil || len(b) != 0 {
		t.Errorf("second flush: got %x, %v", b, err)
	}
}

func TestTruncationLaw(t *testing.T) {
	// Truncating n bits then flushing yields exactly the first w-n
	// bits of the untruncated stream.
	groups := []bitstream.Group{
		{Bits: 0b101, Width: 3},
		{Bits: 0xDEADBEEF, Width: 32},
		{Bits: 0b1, Width: 1},
		{Bits: 0x0123456789ABCDEF, Width: 64},
		{Bits: 0b0110, Width: 4},
	}
	build := func() *bitstream.Queue {
		q := &bitstream.Queue{}
		q.AppendGroups(groups)
		return q
	}

	w := build().TotalWidth()
	if w != 104 {
		t.Fatalf("TotalWidth: got %d, want 104", w)
	}
	full := bitstream.AllowPadding(build().Flush())

	for n := 0; n <= w; n++ {
		q := build()
		q.Truncate(n)
		if got := q.TotalWidth(); got != w-n {
			t.Fatalf("truncate %d: TotalWidth %d, want %d", n, got, w-n)
		}
		b := bitstream.AllowPadding(q.Flush())
		for i := 0; i < w-n; i++ {
			if bitAt(b, i) != bitAt(full, i) {
				t.Fatalf("truncate %d: bit %d differs", n, i)
			}
		}
	}
}

func TestTruncatePastStart(t *testing.T) {
	q := &bitstream.Queue{}
	q.Append(0b111, 3)
	q.Truncate(10)
	if got := q.TotalWidth(); got != 0 {
		t.Errorf("TotalWidth: got %d, want 0", got)
	}
}

func TestUnitOpcodeFlushesToSingleByte(t *testing.T) {
	// The unit opcode alone: 01001 plus three zero padding bits.
	q := &bitstream.Queue{}
	q.Append(0b01001, 5)

	_, err := q.Flush()
	b := bitstream.ExpectPadding(err, 3)
	if !bytes.Equal(b, []byte{0x48}) {
		t.Errorf("got %x, want 48", b)
	}
}

func TestAllowPadding(t *testing.T) {
	q := &bitstream.Queue{}
	q.Append(0b01001, 5)
	if got := bitstream.AllowPadding(q.Flush()); !bytes.Equal(got, []byte{0x48}) {
		t.Errorf("padded: got %x, want 48", got)
	}

	q = &bitstream.Queue{}
	q.Append(0xAB, 8)
	if got := bitstream.AllowPadding(q.Flush()); !bytes.Equal(got, []byte{0xAB}) {
		t.Errorf("aligned: got %x, want ab", got)
	}
}

func TestExpectPaddingWrongDeficit(t *testing.T) {
	q := &bitstream.Queue{}
	q.Append(0b01001, 5)
	_, err := q.Flush()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong deficit")
		}
	}()
	bitstream.ExpectPadding(err, 5)
}

func TestExpectPaddingAlignedStream(t *testing.T) {
	q := &bitstream.Queue{}
	q.Append(0xFF, 8)
	_, err := q.Flush()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for aligned stream")
		}
	}()
	bitstream.ExpectPadding(err, 1)
}
