package bitstream

// Pack repacks a byte buffer into a minimal sequence of bit groups.
// Only the first usedBits bits of b (MSB-first across the buffer) are
// significant; the insignificant low bits of the final byte are
// discarded. Every group except the last has width exactly 64, the last
// has width in [1,64]. An empty buffer or usedBits of 0 yields nil.
//
// Pack panics if usedBits points past the end of b.
func Pack(b []byte, usedBits int) []Group {
	if usedBits > len(b)*8 {
		panic("bitstream: used bit length points past end of buffer")
	}
	if len(b) == 0 || usedBits == 0 {
		return nil
	}

	var groups []Group
	var word uint64
	var width int

	for _, by := range b {
		word |= uint64(by)

		if usedBits <= 8 {
			// Final byte: drop its insignificant low bits.
			if usedBits < 8 {
				word >>= uint(8 - usedBits)
			}
			width += usedBits
			groups = append(groups, Group{Bits: word, Width: width})
			break
		}

		width += 8
		usedBits -= 8

		if width == 64 {
			groups = append(groups, Group{Bits: word, Width: 64})
			word = 0
			width = 0
		} else {
			word <<= 8
		}
	}

	for _, g := range groups[:len(groups)-1] {
		if g.Width != 64 {
			panic("bitstream: non-final group width must be 64")
		}
	}
	if last := groups[len(groups)-1]; last.Width < 1 || last.Width > 64 {
		panic("bitstream: final group width out of range")
	}
	return groups
}
