// Package envelope encrypts a payload stream and frames the ciphertext together with the salt and IV needed to
// decrypt it:
//
//	[4-byte envelope length][8-byte salt][1-byte IV length][IV][4-byte ciphertext length][ciphertext][NUL]
//
// where envelope length = 8 + 1 + IV length + 4 + ciphertext length.
package envelope

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/payload"
)

const (
	ivLengthSize     = 1
	cipherLengthSize = 4

	// MinSize is the size of an envelope with no IV and no ciphertext, trailing NUL excluded
	MinSize = payload.LengthPrefixSize + crypt.SaltLength + ivLengthSize + cipherLengthSize
)

var (
	ErrTruncatedEnvelope  = errors.New("encrypted envelope is truncated")
	ErrInconsistentLength = errors.New("encrypted envelope lengths are inconsistent")
	ErrDecryptionFailed   = errors.New("decryption failed")
)

// Header is the metadata of an envelope
type Header struct {
	// Length is the declared envelope length, the 4 prefix bytes excluded
	Length       uint32
	Salt         []byte
	IV           []byte
	CipherLength uint32

	// CipherOffset is where the ciphertext starts in the stream
	CipherOffset int
}

// Size is the number of bytes the envelope spans, prefix included and trailing NUL excluded
func (h *Header) Size() int {
	return payload.LengthPrefixSize + int(h.Length)
}

// Wrapper encrypts with salts and IVs drawn from Rand
type Wrapper struct {
	Rand io.Reader
}

var defaultWrapper = Wrapper{Rand: rand.Reader}

// Wrap encrypts stream with params using crypto/rand. Disabled params return stream unchanged
func Wrap(stream []byte, params crypt.Params) ([]byte, error) {
	return defaultWrapper.Wrap(stream, params)
}

// Unwrap reverses Wrap. Disabled params return stream unchanged
func Unwrap(stream []byte, params crypt.Params) ([]byte, error) {
	return defaultWrapper.Unwrap(stream, params)
}

// Size is the length of the envelope, trailing NUL included, that Wrap produces for a stream of streamLen bytes
func Size(streamLen int, params crypt.Params) (int, error) {
	if !params.Enabled() {
		return streamLen, nil
	}
	params = params.Normalize()
	ivLen, err := crypt.IVLength(params.Method, params.Mode)
	if err != nil {
		return 0, err
	}
	blockSize, _ := crypt.BlockSize(params.Method, params.Mode)
	cipherLen := streamLen
	if blockSize > 1 {
		cipherLen = (streamLen/blockSize + 1) * blockSize
	}
	return MinSize + ivLen + cipherLen + payload.TerminatorSize, nil
}

func (w Wrapper) Wrap(stream []byte, params crypt.Params) ([]byte, error) {
	if !params.Enabled() {
		return stream, nil
	}
	params = params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ivLen, err := crypt.IVLength(params.Method, params.Mode)
	if err != nil {
		return nil, err
	}
	salt := make([]byte, crypt.SaltLength)
	iv := make([]byte, ivLen)
	if _, err = io.ReadFull(w.Rand, salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}
	if _, err = io.ReadFull(w.Rand, iv); err != nil {
		return nil, fmt.Errorf("error generating iv: %w", err)
	}

	key, err := params.Key(salt)
	if err != nil {
		return nil, err
	}
	ciphertext, err := crypt.Encrypt(stream, params.Method, params.Mode, key, iv)
	if err != nil {
		return nil, err
	}

	envLen := crypt.SaltLength + ivLengthSize + ivLen + cipherLengthSize + len(ciphertext)
	out := make([]byte, payload.LengthPrefixSize+envLen+payload.TerminatorSize)
	binary.BigEndian.PutUint32(out, uint32(envLen))
	n := payload.LengthPrefixSize
	n += copy(out[n:], salt)
	out[n] = byte(ivLen)
	n++
	n += copy(out[n:], iv)
	binary.BigEndian.PutUint32(out[n:], uint32(len(ciphertext)))
	n += cipherLengthSize
	n += copy(out[n:], ciphertext)
	out[n] = payload.Terminator
	return out, nil
}

func (w Wrapper) Unwrap(stream []byte, params crypt.Params) ([]byte, error) {
	if !params.Enabled() {
		return stream, nil
	}
	params = params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	h, err := Inspect(stream)
	if err != nil {
		return nil, err
	}
	ivLen, err := crypt.IVLength(params.Method, params.Mode)
	if err != nil {
		return nil, err
	}
	if len(h.IV) != ivLen {
		return nil, fmt.Errorf("%w: stored iv of %d bytes, %s-%s needs %d", ErrInconsistentLength, len(h.IV),
			params.Method, params.Mode, ivLen)
	}

	key, err := params.Key(h.Salt)
	if err != nil {
		return nil, err
	}
	ciphertext := stream[h.CipherOffset : h.CipherOffset+int(h.CipherLength)]
	plaintext, err := crypt.Decrypt(ciphertext, params.Method, params.Mode, key, h.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// Inspect parses and checks the envelope metadata without decrypting
func Inspect(stream []byte) (*Header, error) {
	if len(stream) < payload.LengthPrefixSize+crypt.SaltLength+ivLengthSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedEnvelope, len(stream))
	}

	h := &Header{Length: binary.BigEndian.Uint32(stream)}
	n := payload.LengthPrefixSize
	h.Salt = stream[n : n+crypt.SaltLength]
	n += crypt.SaltLength
	ivLen := int(stream[n])
	n += ivLengthSize
	if ivLen > crypt.MaxIVLength {
		return nil, fmt.Errorf("%w: iv length %d", ErrInconsistentLength, ivLen)
	}
	if len(stream) < n+ivLen+cipherLengthSize {
		return nil, fmt.Errorf("%w: %d bytes, iv of %d bytes", ErrTruncatedEnvelope, len(stream), ivLen)
	}
	h.IV = stream[n : n+ivLen]
	n += ivLen
	h.CipherLength = binary.BigEndian.Uint32(stream[n:])
	n += cipherLengthSize
	h.CipherOffset = n

	if uint64(h.CipherLength) > uint64(len(stream)-n) {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes, %d remaining", ErrInconsistentLength, h.CipherLength,
			len(stream)-n)
	}
	expected := uint64(crypt.SaltLength+ivLengthSize+ivLen+cipherLengthSize) + uint64(h.CipherLength)
	if uint64(h.Length) != expected {
		return nil, fmt.Errorf("%w: envelope declares %d bytes, parts add up to %d", ErrInconsistentLength, h.Length,
			expected)
	}
	if h.CipherLength == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrInconsistentLength)
	}
	return h, nil
}
