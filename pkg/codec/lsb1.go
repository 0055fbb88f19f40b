package codec

import (
	"io"
	"stegobmp/internal/bits"
)

// LSB1Codec stores one stream bit in bit 0 of every carrier byte, most significant stream bit first
type LSB1Codec struct{}

func NewLSB1() *LSB1Codec {
	return &LSB1Codec{}
}

func (c *LSB1Codec) Method() Method {
	return LSB1
}

func (c *LSB1Codec) Capacity(carrierLen int) int {
	return carrierLen / 8
}

func (c *LSB1Codec) Hide(carrier, stream []byte) error {
	if err := checkCapacity(c, len(carrier), len(stream)); err != nil {
		return err
	}

	br := bits.NewBitReader(stream)
	for currentByte := 0; ; currentByte++ {
		bit, ok := br.ReadBit()
		if !ok {
			return nil
		}
		carrier[currentByte] = carrier[currentByte]&^1 | bit
	}
}

func (c *LSB1Codec) Retrieve(carrier []byte, mode RetrieveMode) ([]byte, error) {
	return readStream(&lsb1Reader{carrier: carrier}, c.Capacity(len(carrier)), mode)
}

type lsb1Reader struct {
	carrier     []byte
	currentByte int
}

func (r *lsb1Reader) ReadByte() (byte, error) {
	if len(r.carrier)-r.currentByte < 8 {
		return 0, io.EOF
	}
	bw := bits.NewBitWriter(1)
	for _, b := range r.carrier[r.currentByte : r.currentByte+8] {
		bw.WriteBit(b)
	}
	r.currentByte += 8
	return bw.Last(), nil
}
