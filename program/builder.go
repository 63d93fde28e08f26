package program

import (
	"fmt"

	"github.com/uncomputable/asset-gen/bitstream"
)

// encoder is the emission core every stage wraps. It moves from stage
// to stage as the builder transitions and is consumed by flushing.
type encoder struct {
	queue bitstream.Queue
}

func (e *encoder) assertWritten(n int) {
	if got := e.queue.TotalWidth(); got != n {
		panic(fmt.Sprintf("program: %d bits written, expected %d", got, n))
	}
}

// Program is the initial stage: the node count has been emitted and
// node emissions are legal, in any order and any count. The builder
// does not verify DAG well-formedness; out-of-order or dangling child
// references encode fine.
type Program struct {
	enc *encoder
}

// Preamble starts a program encoding by emitting the natural-number
// code of nodeCount.
func Preamble(nodeCount uint64) *Program {
	p := &Program{enc: &encoder{}}
	return p.PositiveInteger(nodeCount)
}

// Comp emits a comp node with two relative child offsets.
func (p *Program) Comp(left, right uint64) *Program {
	p.enc.queue.Append(prefixComp, 5)
	return p.PositiveInteger(left).PositiveInteger(right)
}

// Case emits a case node with two relative child offsets.
func (p *Program) Case(left, right uint64) *Program {
	p.enc.queue.Append(prefixCase, 5)
	return p.PositiveInteger(left).PositiveInteger(right)
}

// Pair emits a pair node with two relative child offsets.
func (p *Program) Pair(left, right uint64) *Program {
	p.enc.queue.Append(prefixPair, 5)
	return p.PositiveInteger(left).PositiveInteger(right)
}

// Disconnect emits a disconnect node with two relative child offsets.
func (p *Program) Disconnect(left, right uint64) *Program {
	p.enc.queue.Append(prefixDisconnect, 5)
	return p.PositiveInteger(left).PositiveInteger(right)
}

// Injl emits an injl node with one relative child offset.
func (p *Program) Injl(offset uint64) *Program {
	p.enc.queue.Append(prefixInjl, 5)
	return p.PositiveInteger(offset)
}

// Injr emits an injr node with one relative child offset.
func (p *Program) Injr(offset uint64) *Program {
	p.enc.queue.Append(prefixInjr, 5)
	return p.PositiveInteger(offset)
}

// Take emits a take node with one relative child offset.
func (p *Program) Take(offset uint64) *Program {
	p.enc.queue.Append(prefixTake, 5)
	return p.PositiveInteger(offset)
}

// Drop emits a drop node with one relative child offset.
func (p *Program) Drop(offset uint64) *Program {
	p.enc.queue.Append(prefixDrop, 5)
	return p.PositiveInteger(offset)
}

// Iden emits an iden node.
func (p *Program) Iden() *Program {
	p.enc.queue.Append(prefixIden, 5)
	return p
}

// Unit emits a unit node.
func (p *Program) Unit() *Program {
	p.enc.queue.Append(prefixUnit, 5)
	return p
}

// Stop emits the stop code.
func (p *Program) Stop() *Program {
	p.enc.queue.Append(prefixStop, 5)
	return p
}

// Witness emits a witness node.
func (p *Program) Witness() *Program {
	p.enc.queue.Append(prefixWitness, 4)
	return p
}

// Fail emits a fail node followed by its entropy payload, 64 bytes by
// convention. The length is not checked, so out-of-spec payloads can be
// constructed.
func (p *Program) Fail(entropy []byte) *Program {
	p.enc.queue.Append(prefixFail, 5)
	return p.RawBytes(entropy)
}

// Hidden emits a hidden node followed by its digest payload, 32 bytes
// by convention. The length is not checked.
func (p *Program) Hidden(digest []byte) *Program {
	p.enc.queue.Append(prefixHidden, 4)
	return p.RawBytes(digest)
}

// Jet emits a jet node with the given bit pattern. Resolving the
// pattern to a jet name is the decoder's business; any pattern encodes.
func (p *Program) Jet(bits uint64, width int) *Program {
	p.enc.queue.Append(prefixJet, 2)
	return p.RawBits(bits, width)
}

// Word emits a word node: the natural-number code of depth followed by
// the canonical encoding of v. A well-formed word of depth d carries a
// value of 2^(d-1) bits, but no such check is made here.
func (p *Program) Word(depth uint64, v *Value) *Program {
	p.enc.queue.Append(prefixWord, 2)
	p.PositiveInteger(depth)
	p.enc.queue.AppendGroups(ValueGroups(v))
	return p
}

// RawBits appends an arbitrary bit group.
func (p *Program) RawBits(bits uint64, width int) *Program {
	p.enc.queue.Append(bits, width)
	return p
}

// RawBytes appends raw bytes, eight bits each.
func (p *Program) RawBytes(b []byte) *Program {
	p.enc.queue.AppendBytes(b)
	return p
}

// PositiveInteger appends the natural-number code of n.
func (p *Program) PositiveInteger(n uint64) *Program {
	p.enc.queue.AppendGroups(Natural(n))
	return p
}

// DeleteBits removes n bits from the tail of the stream.
func (p *Program) DeleteBits(n int) *Program {
	p.enc.queue.Truncate(n)
	return p
}

// AssertBitsWritten panics unless exactly n bits have been emitted so
// far. A test-authoring aid for pinning truncation positions.
func (p *Program) AssertBitsWritten(n int) *Program {
	p.enc.assertWritten(n)
	return p
}

// WitnessPreamble ends the program body and declares the witness block
// length in bits. A length of 0 emits a single 0 bit (empty witness);
// anything else emits a 1 bit followed by the natural-number code of
// the length. The Program value is dead after this call.
func (p *Program) WitnessPreamble(bitLen int) *Witness {
	if bitLen == 0 {
		p.enc.queue.Append(0, 1)
	} else {
		p.enc.queue.Append(1, 1)
		p.PositiveInteger(uint64(bitLen))
	}
	return &Witness{enc: p.enc}
}

// Flush finalizes from the Program stage without a witness block,
// padding as needed. Legal from any stage; see Queue.Flush for the
// padding result.
func (p *Program) Flush() ([]byte, error) {
	return p.enc.queue.Flush()
}

// Witness is the stage after the witness preamble. It accepts raw bits
// and bytes as witness content; nothing ties the content to the
// declared length, so short and oversized witness blocks encode fine.
type Witness struct {
	enc *encoder
}

// RawBits appends an arbitrary bit group of witness content.
func (w *Witness) RawBits(bits uint64, width int) *Witness {
	w.enc.queue.Append(bits, width)
	return w
}

// RawBytes appends raw witness bytes, eight bits each.
func (w *Witness) RawBytes(b []byte) *Witness {
	w.enc.queue.AppendBytes(b)
	return w
}

// DeleteBits removes n bits from the tail of the stream, carving out
// incomplete witness blocks.
func (w *Witness) DeleteBits(n int) *Witness {
	w.enc.queue.Truncate(n)
	return w
}

// AssertBitsWritten panics unless exactly n bits have been emitted so
// far.
func (w *Witness) AssertBitsWritten(n int) *Witness {
	w.enc.assertWritten(n)
	return w
}

// Finish completes the program and asserts that the stream is
// byte-aligned: a *bitstream.PaddingError is propagated to the caller
// as a hard result rather than discarded.
func (w *Witness) Finish() ([]byte, error) {
	return w.enc.queue.Flush()
}

// Flush finalizes from the Witness stage, padding as needed.
func (w *Witness) Flush() ([]byte, error) {
	return w.enc.queue.Flush()
}

// IllegalPadding leaves the enforced protocol: the returned stage
// appends arbitrary bits after the logical end of the stream. This is
// the only path to trailing-bits malleability cases. The Witness value
// is dead after this call.
func (w *Witness) IllegalPadding() *IllegalPadding {
	return &IllegalPadding{enc: w.enc}
}

// IllegalPadding is the opt-in escape stage for trailing content after
// the witness block.
type IllegalPadding struct {
	enc *encoder
}

// RawBits appends an arbitrary trailing bit group.
func (ip *IllegalPadding) RawBits(bits uint64, width int) *IllegalPadding {
	ip.enc.queue.Append(bits, width)
	return ip
}

// RawBytes appends raw trailing bytes.
func (ip *IllegalPadding) RawBytes(b []byte) *IllegalPadding {
	ip.enc.queue.AppendBytes(b)
	return ip
}

// AssertBitsWritten panics unless exactly n bits have been emitted so
// far.
func (ip *IllegalPadding) AssertBitsWritten(n int) *IllegalPadding {
	ip.enc.assertWritten(n)
	return ip
}

// Flush finalizes the stream, padding as needed.
func (ip *IllegalPadding) Flush() ([]byte, error) {
	return ip.enc.queue.Flush()
}
