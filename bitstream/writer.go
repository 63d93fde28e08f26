package bitstream

// Writer accumulates bits MSB-first into a growing byte buffer.
type Writer struct {
	buf   []byte
	cur   byte // low nCur bits are valid
	nCur  int  // bits buffered in cur, 0..7
	total int
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits writes the low width bits of bits, most significant first.
// width must be in [0,64]; higher bits of bits are ignored.
func (w *Writer) WriteBits(bits uint64, width int) {
	if width < 0 || width > 64 {
		panic("bitstream: bit width out of range")
	}
	if width < 64 {
		bits &= (1 << uint(width)) - 1
	}
	w.total += width

	for width > 0 {
		take := 8 - w.nCur
		if take > width {
			take = width
		}
		chunk := byte(bits>>uint(width-take)) & (1<<uint(take) - 1)
		w.cur = w.cur<<uint(take) | chunk
		w.nCur += take
		width -= take

		if w.nCur == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.nCur = 0
		}
	}
}

// WriteBytes writes each byte as eight bits.
func (w *Writer) WriteBytes(b []byte) {
	for _, by := range b {
		w.WriteBits(uint64(by), 8)
	}
}

// BitsWritten returns the total number of bits written so far.
func (w *Writer) BitsWritten() int {
	return w.total
}

// Finish returns the written bytes. A partial final byte is padded with
// zero bits at the least significant positions. The Writer must not be
// used afterwards.
func (w *Writer) Finish() []byte {
	if w.nCur > 0 {
		w.buf = append(w.buf, w.cur<<uint(8-w.nCur))
		w.cur = 0
		w.nCur = 0
	}
	return w.buf
}
