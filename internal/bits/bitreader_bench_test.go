package bits

import (
	"fmt"
	"stegobmp/test"
	"testing"
)

const numOfBytesForBenchmark = 1000000

func BenchmarkReadBits(b *testing.B) {
	bytesToRead := test.GenerateRandomBytes(numOfBytesForBenchmark)
	for _, bitsPerRead := range []uint{1, 4} {
		b.Run(fmt.Sprintf("BitsPerRead=%d", bitsPerRead), func(b *testing.B) {
			b.SetBytes(int64(numOfBytesForBenchmark))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				bBitReader := NewBitReader(bytesToRead)
				b.StartTimer()
				for len(bBitReader.bytes) > 0 {
					bBitReader.ReadBits(bitsPerRead)
				}
			}
		})
	}
}

func BenchmarkWriteBits(b *testing.B) {
	bytesToWrite := test.GenerateRandomBytes(numOfBytesForBenchmark)
	b.SetBytes(int64(numOfBytesForBenchmark))
	for i := 0; i < b.N; i++ {
		bw := NewBitWriter(len(bytesToWrite))
		for _, v := range bytesToWrite {
			bw.WriteBits(v, 8)
		}
	}
}
