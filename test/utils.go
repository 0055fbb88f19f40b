package test

import (
	"encoding/binary"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateSeededBytes returns the same bytes for the same seed, for tests that must be reproducible
func GenerateSeededBytes(seed int64, numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.New(rand.NewSource(seed)).Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateAlphanumeric returns n random ASCII letters and digits
func GenerateAlphanumeric(n int) []byte {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return out
}

// GenerateBMP returns an uncompressed 24-bit BMP file of random pixels. Row padding is filled with non-zero bytes so
// tests can tell whether it survives a round trip
func GenerateBMP(width, height int) []byte {
	rowSize := width * 3
	padding := (4 - rowSize%4) % 4
	pixelBytes := (rowSize + padding) * height

	file := make([]byte, 54, 54+pixelBytes)
	copy(file, "BM")
	binary.LittleEndian.PutUint32(file[2:], uint32(54+pixelBytes))
	binary.LittleEndian.PutUint32(file[10:], 54)
	binary.LittleEndian.PutUint32(file[14:], 40)
	binary.LittleEndian.PutUint32(file[18:], uint32(width))
	binary.LittleEndian.PutUint32(file[22:], uint32(height))
	binary.LittleEndian.PutUint16(file[26:], 1)
	binary.LittleEndian.PutUint16(file[28:], 24)
	binary.LittleEndian.PutUint32(file[34:], uint32(pixelBytes))

	for row := 0; row < height; row++ {
		file = append(file, GenerateRandomBytes(rowSize)...)
		for p := 0; p < padding; p++ {
			file = append(file, byte(0xA0+p))
		}
	}
	return file
}
