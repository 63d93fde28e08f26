package bitstream

import (
	"errors"
	"fmt"
)

// Group is one unit of not-yet-flushed stream content: up to 64
// significant bits, most significant first. Bits must have no set bits
// at or above position Width.
type Group struct {
	Bits  uint64
	Width int
}

// Queue is an ordered sequence of bit groups. Groups are appended at
// the tail, bits can be removed from the tail, and Flush drains the
// whole queue head to tail. A Queue belongs to a single in-progress
// encoding and is consumed by Flush.
//
// The zero value is an empty queue ready for use.
type Queue struct {
	groups []Group
}

// Append pushes a group to the tail. Width 0 is a no-op.
func (q *Queue) Append(bits uint64, width int) {
	if width == 0 {
		return
	}
	q.groups = append(q.groups, Group{Bits: bits, Width: width})
}

// AppendBytes pushes each byte as a width-8 group.
func (q *Queue) AppendBytes(b []byte) {
	for _, by := range b {
		q.Append(uint64(by), 8)
	}
}

// AppendGroups pushes a sequence of groups, typically produced by Pack
// or one of the codecs in package program.
func (q *Queue) AppendGroups(gs []Group) {
	for _, g := range gs {
		q.Append(g.Bits, g.Width)
	}
}

// TotalWidth returns the summed width of all queued groups.
func (q *Queue) TotalWidth() int {
	var total int
	for _, g := range q.groups {
		total += g.Width
	}
	return total
}

// Truncate removes exactly n bits from the logical tail of the stream.
// Whole groups are popped while they fit; a group holding the cut is
// right-shifted, discarding its most recently appended bits. Truncating
// more bits than are queued leaves the queue empty.
func (q *Queue) Truncate(n int) {
	for n > 0 && len(q.groups) > 0 {
		last := q.groups[len(q.groups)-1]
		if last.Width <= n {
			q.groups = q.groups[:len(q.groups)-1]
			n -= last.Width
			continue
		}
		last.Bits >>= uint(n)
		last.Width -= n
		q.groups[len(q.groups)-1] = last
		return
	}
}

// Flush drains the queue head to tail into a byte buffer, writing each
// group MSB-first. If the total width is not a multiple of eight, the
// final byte is padded with zero bits and Flush returns a *PaddingError
// carrying the padded bytes and the exact deficit; callers decide
// whether that outcome is expected. The queue is empty afterwards.
func (q *Queue) Flush() ([]byte, error) {
	w := NewWriter()
	for _, g := range q.groups {
		w.WriteBits(g.Bits, g.Width)
	}
	q.groups = nil

	total := w.BitsWritten()
	b := w.Finish()
	if rem := total % 8; rem != 0 {
		return nil, &PaddingError{Bytes: b, DeficitBits: 8 - rem}
	}
	return b, nil
}

// PaddingError reports that a flushed stream was not byte-aligned.
// Bytes holds the zero-padded encoding and DeficitBits the number of
// padding bits in the final byte, in [1,7].
type PaddingError struct {
	Bytes       []byte
	DeficitBits int
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("bitstream: %d bits of padding in the final byte of %x", e.DeficitBits, e.Bytes)
}

// AllowPadding returns the flushed bytes whether or not padding was
// needed. It panics on any error other than *PaddingError, which Flush
// never produces.
func AllowPadding(b []byte, err error) []byte {
	if err == nil {
		return b
	}
	var pe *PaddingError
	if errors.As(err, &pe) {
		return pe.Bytes
	}
	panic(err)
}

// ExpectPadding returns the flushed bytes and asserts that exactly
// deficit padding bits were needed. It panics otherwise. This is a
// test-authoring aid: a wrong deficit means the constructed stream is
// not the one the test meant to build.
func ExpectPadding(err error, deficit int) []byte {
	var pe *PaddingError
	if !errors.As(err, &pe) {
		panic(fmt.Sprintf("bitstream: expected %d padding bits, stream was byte-aligned", deficit))
	}
	if pe.DeficitBits != deficit {
		panic(fmt.Sprintf("bitstream: expected %d padding bits, got %d", deficit, pe.DeficitBits))
	}
	return pe.Bytes
}
