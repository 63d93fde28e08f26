// Package bitstream provides the bit-level primitives behind the
// Simplicity program encoder.
//
// A stream is a bounded sequence of bits. When encoded as bytes, the
// bits in each byte are arranged from most to least significant:
//
//	byte  0               1               2 ...
//	     +---------------+---------------+-
//	     |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|7 ...
//	     +---------------+---------------+-
//	bit   0 1 2 3 4 5 6 7 8 9 ...
//
// Content that has not been flushed yet lives in a Queue of Groups,
// each carrying up to 64 significant bits. The Queue supports appending
// at the tail and removing an exact number of bits from the tail, which
// is how truncation test cases are carved out of an otherwise valid
// stream. Flushing drains the Queue into bytes and reports a
// PaddingError when the total width is not a multiple of eight; in this
// domain a misaligned stream is a condition under test, not a defect.
package bitstream
