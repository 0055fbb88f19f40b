package stego

import (
	"stegobmp/pkg/codec"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/envelope"
	"stegobmp/pkg/payload"
)

// MaxFileSize is the largest file, in bytes, that c can hide in a carrier of carrierLen bytes when the file has an
// extension of extLen bytes (dot included) and is protected with params
func MaxFileSize(c codec.Codec, carrierLen, extLen int, params crypt.Params) int {
	available := c.Capacity(carrierLen)
	if params.Enabled() {
		overhead, err := envelope.Size(0, params)
		if err != nil {
			return 0
		}
		params = params.Normalize()
		blockSize, _ := crypt.BlockSize(params.Method, params.Mode)
		// overhead includes the padding block a 0 byte stream gets, which the cipher text length below accounts for
		if blockSize > 1 {
			overhead -= blockSize
			cipherRoom := available - overhead
			if cipherRoom < blockSize {
				return 0
			}
			available = cipherRoom/blockSize*blockSize - 1
		} else {
			available -= overhead
		}
	}

	size := available - payload.StreamSize(0, extLen)
	if size < 0 {
		return 0
	}
	return size
}
