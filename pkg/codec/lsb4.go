package codec

import (
	"io"
	"stegobmp/internal/bits"
)

const nibbleMask = 0x0F

// LSB4Codec stores one stream nibble in the low 4 bits of every carrier byte. The high nibble of stream byte i goes
// into carrier byte 2i and the low nibble into 2i+1
type LSB4Codec struct{}

func NewLSB4() *LSB4Codec {
	return &LSB4Codec{}
}

func (c *LSB4Codec) Method() Method {
	return LSB4
}

func (c *LSB4Codec) Capacity(carrierLen int) int {
	return carrierLen / 2
}

func (c *LSB4Codec) Hide(carrier, stream []byte) error {
	if err := checkCapacity(c, len(carrier), len(stream)); err != nil {
		return err
	}

	br := bits.NewBitReader(stream)
	for currentByte := 0; br.BitsLeftToRead() > 0; currentByte++ {
		carrier[currentByte] = carrier[currentByte]&^nibbleMask | br.ReadBits(4)
	}
	return nil
}

func (c *LSB4Codec) Retrieve(carrier []byte, mode RetrieveMode) ([]byte, error) {
	return readStream(&lsb4Reader{carrier: carrier}, c.Capacity(len(carrier)), mode)
}

type lsb4Reader struct {
	carrier     []byte
	currentByte int
}

func (r *lsb4Reader) ReadByte() (byte, error) {
	if len(r.carrier)-r.currentByte < 2 {
		return 0, io.EOF
	}
	b := r.carrier[r.currentByte]<<4 | r.carrier[r.currentByte+1]&nibbleMask
	r.currentByte += 2
	return b, nil
}
