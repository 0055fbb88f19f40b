// Package codec hides a payload stream in the low bits of a carrier's pixel bytes and recovers it again. Three
// schemes are available: LSB1 (one bit per byte), LSB4 (one nibble per byte) and LSBI (one adaptively inverted bit
// per byte). Codecs are stateless and safe to share; the carrier is owned by the caller for the duration of a call.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"stegobmp/pkg/payload"
	"strings"
)

type Method string

const (
	LSB1 Method = "LSB1"
	LSB4 Method = "LSB4"
	LSBI Method = "LSBI"
)

// RetrieveMode tells Retrieve where a stream ends
type RetrieveMode int

const (
	// Terminated streams end at the first NUL at or after the declared length
	Terminated RetrieveMode = iota
	// Exact streams end right after the declared length, plus the trailing NUL if one is there. Ciphertext may
	// contain NULs, so encrypted envelopes are read this way
	Exact
)

var (
	ErrInsufficientCapacity = errors.New("carrier is not big enough for the payload")
	ErrNoTerminatorFound    = errors.New("carrier exhausted before the payload terminator")
	ErrUnknownMethod        = errors.New("unknown steganography method")
)

type Codec interface {
	Method() Method
	// Capacity is the number of stream bytes a carrier of carrierLen bytes can hold
	Capacity(carrierLen int) int
	// Hide writes stream into carrier. The carrier is left untouched when the stream does not fit
	Hide(carrier, stream []byte) error
	Retrieve(carrier []byte, mode RetrieveMode) ([]byte, error)
}

// All returns one codec per method, in the order blind analysis tries them
func All() []Codec {
	return []Codec{NewLSB1(), NewLSB4(), NewLSBI(ConventionAdaptive)}
}

// ParseMethod matches a method name case-insensitively
func ParseMethod(s string) (Method, error) {
	for _, m := range []Method{LSB1, LSB4, LSBI} {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ByMethod returns the codec for m. LSBI hides with the adaptive convention
func ByMethod(m Method) (Codec, error) {
	switch m {
	case LSB1:
		return NewLSB1(), nil
	case LSB4:
		return NewLSB4(), nil
	case LSBI:
		return NewLSBI(ConventionAdaptive), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
}

// Raw decodes every whole byte the carrier holds with method m, ignoring any framing. LSBI carriers are read with
// the adaptive convention
func Raw(carrier []byte, m Method) ([]byte, error) {
	var r io.ByteReader
	switch m {
	case LSB1:
		r = &lsb1Reader{carrier: carrier}
	case LSB4:
		r = &lsb4Reader{carrier: carrier}
	case LSBI:
		r = newAdaptiveReader(carrier)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}

	var out []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return out, nil
		}
		out = append(out, b)
	}
}

func checkCapacity(c Codec, carrierLen, streamLen int) error {
	if capacity := c.Capacity(carrierLen); streamLen > capacity {
		return fmt.Errorf("%w: %s needs %d bytes of capacity, carrier of %d bytes has %d", ErrInsufficientCapacity,
			c.Method(), streamLen, carrierLen, capacity)
	}
	return nil
}

// readStream decodes a length prefixed stream from r, which yields at most capacity bytes
func readStream(r io.ByteReader, capacity int, mode RetrieveMode) ([]byte, error) {
	if capacity < payload.LengthPrefixSize {
		return nil, fmt.Errorf("%w: carrier holds %d bytes, the length prefix alone needs %d", ErrInsufficientCapacity,
			capacity, payload.LengthPrefixSize)
	}

	prefix := make([]byte, payload.LengthPrefixSize)
	for i := range prefix {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: reading length prefix", ErrInsufficientCapacity)
		}
		prefix[i] = b
	}

	declared := uint64(binary.BigEndian.Uint32(prefix))
	if declared == 0 {
		return nil, fmt.Errorf("%w: declared length is zero", payload.ErrMalformedPayload)
	}
	if declared > uint64(capacity-payload.LengthPrefixSize) ||
		uint64(payload.LengthPrefixSize)+declared+payload.TerminatorSize > uint64(capacity) {
		return nil, fmt.Errorf("%w: declared length %d does not fit a carrier holding %d bytes",
			payload.ErrMalformedPayload, declared, capacity)
	}

	end := payload.LengthPrefixSize + int(declared)
	stream := make([]byte, payload.LengthPrefixSize, min(capacity, end+64))
	copy(stream, prefix)
	for len(stream) < end {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: carrier ended after %d of %d bytes", payload.ErrMalformedPayload, len(stream), end)
		}
		stream = append(stream, b)
	}

	if mode == Exact {
		if b, err := r.ReadByte(); err == nil && b == payload.Terminator {
			stream = append(stream, b)
		}
		return stream, nil
	}

	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: read %d bytes", ErrNoTerminatorFound, len(stream))
		}
		stream = append(stream, b)
		if b == payload.Terminator {
			return stream, nil
		}
	}
}
