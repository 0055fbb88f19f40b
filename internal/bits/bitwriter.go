package bits

// BitWriter packs bits into bytes, most significant bit first. It is the inverse of BitReader
type BitWriter struct {
	bytes      []byte
	currentBit byte
	bitsInByte uint
}

func NewBitWriter(expectedBytes int) *BitWriter {
	return &BitWriter{bytes: make([]byte, 0, expectedBytes)}
}

// WriteBit appends the lowest bit of b. It reports true when the write completed a byte
func (bw *BitWriter) WriteBit(b byte) (byteCompleted bool) {
	bw.currentBit = bw.currentBit<<1 | b&1
	bw.bitsInByte++
	if bw.bitsInByte == 8 {
		bw.bytes = append(bw.bytes, bw.currentBit)
		bw.currentBit = 0
		bw.bitsInByte = 0
		return true
	}
	return false
}

// WriteBits appends the n lowest bits of v, most significant first
func (bw *BitWriter) WriteBits(v byte, n uint) {
	for i := n; i > 0; i-- {
		bw.WriteBit(v >> (i - 1))
	}
}

// Len is the number of complete bytes written so far
func (bw *BitWriter) Len() int {
	return len(bw.bytes)
}

// Last returns the most recently completed byte
func (bw *BitWriter) Last() byte {
	if len(bw.bytes) == 0 {
		return 0
	}
	return bw.bytes[len(bw.bytes)-1]
}

// Bytes returns the complete bytes written. Bits of an unfinished byte are not included
func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}
