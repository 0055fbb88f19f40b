package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant, byte by byte, which is the order in which payload bits are laid out in a carrier
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit as 0 or 1. ok is false once every bit has been read
func (br *BitReader) ReadBit() (bit byte, ok bool) {
	if len(br.bytes) == 0 {
		return 0, false
	}
	bit = (br.bytes[0] >> (7 - br.currentBitIdx)) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit, true
}

// ReadBits reads up to 8 bits and returns them right aligned, first bit read being the most significant. If fewer
// bits than requested are left, only those are returned
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for i := uint(0); i < bitsToRead; i++ {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}
		byteWithRequestedBits = byteWithRequestedBits<<1 | bit
	}
	return byteWithRequestedBits
}
