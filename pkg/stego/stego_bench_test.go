package stego

import (
	"io"
	"stegobmp/pkg/config"
	"stegobmp/test"
	"testing"
)

const benchImageSize = 1000

func BenchmarkEncode(b *testing.B) {
	for _, method := range []string{"LSB1", "LSB4", "LSBI"} {
		b.Run(method, func(b *testing.B) {
			carrier := generateCarrier(b, benchImageSize, benchImageSize)
			cfg := config.StegoConfig{Method: method}
			encoder, err := NewEncoder(carrier, cfg)
			if err != nil {
				b.Fatalf("Error creating encoder: %s", err)
			}
			content := test.GenerateRandomBytes(carrier.Capacity() / 16)
			b.SetBytes(int64(len(content)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = encoder.EncodeFile(inputFile("bench.bin", content)); err != nil {
					b.Fatalf("Error encoding: %s", err)
				}
				if err = encoder.WriteBMP(io.Discard); err != nil {
					b.Fatalf("Error writing BMP: %s", err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, method := range []string{"LSB1", "LSB4", "LSBI"} {
		b.Run(method, func(b *testing.B) {
			carrier := generateCarrier(b, benchImageSize, benchImageSize)
			cfg := config.StegoConfig{Method: method}
			encoder, _ := NewEncoder(carrier, cfg)
			content := test.GenerateRandomBytes(carrier.Capacity() / 16)
			if err := encoder.EncodeFile(inputFile("bench.bin", content)); err != nil {
				b.Fatalf("Error encoding: %s", err)
			}
			decoder, _ := NewDecoder(carrier, cfg)
			b.SetBytes(int64(len(content)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := decoder.DecodeFile("bench"); err != nil {
					b.Fatalf("Error decoding: %s", err)
				}
			}
		})
	}
}
