// Package vectors builds the corpus of Simplicity decoder test assets.
//
// Each vector is a deterministic byte string paired with the script
// error the external decoder/verifier is expected to report for it.
// The corpus covers the byte-level failure surface of the decoder:
// end-of-stream at every parse position, out-of-range lengths and
// offsets at their exact consensus boundaries, non-canonical node
// order, forbidden node kinds, misplaced hidden nodes, unshared
// subexpressions, witness exhaustion, and trailing-bit malleability.
// For every failure group there is at least one companion vector on the
// passing side of the boundary.
//
// What happens to the bytes afterwards (taproot packaging, JSON test
// files, actually running the decoder) is someone else's job; the
// corpus stops at (name, bytes, expected error).
package vectors
