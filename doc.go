// Package assetgen generates byte-exact Simplicity program encodings for
// decoder test assets.
//
// Simplicity programs are serialized as a single bitstream: a node count,
// a sequence of prefix-coded nodes, a witness block, and zero padding up
// to the final byte boundary. This library assembles such bitstreams one
// node at a time and, unlike a regular encoder, is equally happy to
// produce deliberately broken ones: truncated streams, oversized length
// fields, out-of-order nodes, and illegal trailing bits. The external
// decoder/verifier under test is expected to reject each of these with a
// specific error, and the point of this library is to construct inputs
// that land on a chosen error deterministically.
//
// # Architecture Overview
//
// The library is organized into three packages:
//
//	asset-gen/
//	├── bitstream/   Bit group queue, MSB-first writer, word packer,
//	│                flush with an explicit padding result
//	├── program/     Natural-number and value codecs, the opcode prefix
//	│                table, and the staged builder protocol
//	└── vectors/     Named corpus of encoder outputs tagged with the
//	                 decoder error each one is designed to provoke
//
// # Quick Start
//
// Encode a three-node program (comp unit iden) with an empty witness:
//
//	bytes, err := program.Preamble(3).
//	    Unit().
//	    Iden().
//	    Comp(2, 1).
//	    WitnessPreamble(0).
//	    Finish()
//
// Finish reports a *bitstream.PaddingError when the stream is not
// byte-aligned; whether that is a bug or the expected outcome depends on
// the test being constructed.
//
// Engineer a truncated stream that hits end-of-file inside a length
// field:
//
//	bytes := bitstream.AllowPadding(program.Preamble(16).
//	    AssertBitsWritten(11).
//	    DeleteBits(3).
//	    Flush())
//
// The builder never validates child references, payload lengths, or DAG
// well-formedness. That is deliberate: validation here would make entire
// classes of negative tests impossible to express.
package assetgen
