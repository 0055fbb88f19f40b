package bits

import (
	"bytes"
	"testing"
)

func TestReadBits(t *testing.T) {

	// 10000000 00000111 11111111 01100101
	bytesToTestWith := []byte{128, 7, 255, 101}
	expectedBitsToRead := map[uint][]byte{
		1: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1},
		2: {2, 0, 0, 0, 0, 0, 1, 3, 3, 3, 3, 3, 1, 2, 1, 1},
		3: {4, 0, 0, 0, 3, 7, 7, 7, 3, 1, 1},
		4: {8, 0, 0, 7, 15, 15, 6, 5},
		8: {128, 7, 255, 101},
	}

	for bitsToRead, expected := range expectedBitsToRead {
		tBitReader := NewBitReader(bytesToTestWith)
		for iter, expectedBits := range expected {
			bits := tBitReader.ReadBits(bitsToRead)
			if bits != expectedBits {
				t.Errorf("Failure testing bit reader with %d bits per read on iter %d, result was: %d, expected %d", bitsToRead, iter+1, bits, expectedBits)
			}
		}
		if tBitReader.BitsLeftToRead() != 0 {
			t.Errorf("Expected bit reader to be drained after reading %d bits at a time, %d bits left", bitsToRead, tBitReader.BitsLeftToRead())
		}
	}
}

func TestReadBitExhaustion(t *testing.T) {
	br := NewBitReader([]byte{0xFF})
	for i := 0; i < 8; i++ {
		if _, ok := br.ReadBit(); !ok {
			t.Fatalf("Bit %d should have been readable", i)
		}
	}
	if _, ok := br.ReadBit(); ok {
		t.Errorf("Reading past the end should report !ok")
	}
	if br.BytesLeftToRead() != 0 {
		t.Errorf("Expected 0 bytes left, got %d", br.BytesLeftToRead())
	}
}

func TestBitWriterIsInverseOfBitReader(t *testing.T) {
	input := []byte{0x00, 0x2E, 0x74, 0x78, 0x74, 0x00, 0xFF, 0xA5}
	for _, chunk := range []uint{1, 2, 4, 8} {
		br := NewBitReader(input)
		bw := NewBitWriter(len(input))
		for br.BitsLeftToRead() > 0 {
			bw.WriteBits(br.ReadBits(chunk), chunk)
		}
		if !bytes.Equal(input, bw.Bytes()) {
			t.Errorf("Writing back %d bit chunks produced %v, expected %v", chunk, bw.Bytes(), input)
		}
	}
}

func TestBitWriterReportsCompletedBytes(t *testing.T) {
	bw := NewBitWriter(1)
	for i := 0; i < 7; i++ {
		if bw.WriteBit(1) {
			t.Fatalf("Byte reported complete after %d bits", i+1)
		}
	}
	if !bw.WriteBit(0) {
		t.Fatalf("Byte should be complete after 8 bits")
	}
	if bw.Last() != 0xFE || bw.Len() != 1 {
		t.Errorf("Expected a single 0xFE byte, got %v", bw.Bytes())
	}
}
