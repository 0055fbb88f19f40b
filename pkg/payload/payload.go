// Package payload builds and parses the self-describing byte stream that is hidden inside a carrier:
//
//	[4-byte big-endian file length][file bytes]['.'+extension][NUL]
package payload

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"
)

const (
	// LengthPrefixSize is the size of the big-endian length that starts every stream
	LengthPrefixSize = 4
	// TerminatorSize is the size of the NUL that ends every stream
	TerminatorSize = 1

	ExtensionDot = '.'
	Terminator   = 0x00
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrEmptyFile        = errors.New("file to hide is empty")
	ErrFileTooLarge     = errors.New("file to hide does not fit in a 32-bit length prefix")
	ErrInvalidExtension = errors.New("extension must start with '.' followed by alphanumeric characters")
	ErrMissingExtension = errors.New("file name has no extension")
)

// Payload is a parsed stream
type Payload struct {
	Data      []byte
	Extension string

	// DeclaredSize is the length prefix found in the stream, StreamSize the number of bytes the whole stream spans
	DeclaredSize uint32
	StreamSize   int
}

// Build frames fileBytes and extension into a stream
func Build(fileBytes []byte, extension string) ([]byte, error) {
	if len(fileBytes) == 0 {
		return nil, ErrEmptyFile
	}
	if uint64(len(fileBytes)) > math.MaxUint32 {
		return nil, ErrFileTooLarge
	}
	if !validExtension(extension) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, extension)
	}

	stream := make([]byte, StreamSize(len(fileBytes), len(extension)))
	binary.BigEndian.PutUint32(stream, uint32(len(fileBytes)))
	n := LengthPrefixSize
	n += copy(stream[n:], fileBytes)
	n += copy(stream[n:], extension)
	stream[n] = Terminator
	return stream, nil
}

// StreamSize is the length of the stream built for a file of fileLen bytes with an extension of extLen bytes
func StreamSize(fileLen, extLen int) int {
	return LengthPrefixSize + fileLen + extLen + TerminatorSize
}

// DeclaredLength reads the length prefix of a stream
func DeclaredLength(stream []byte) (uint32, error) {
	if len(stream) < LengthPrefixSize {
		return 0, fmt.Errorf("%w: stream of %d bytes has no length prefix", ErrMalformedPayload, len(stream))
	}
	return binary.BigEndian.Uint32(stream), nil
}

// Parse reads the declared length from the stream and parses it with ParseDeclared
func Parse(stream []byte) (*Payload, error) {
	declared, err := DeclaredLength(stream)
	if err != nil {
		return nil, err
	}
	return ParseDeclared(stream, declared)
}

// ParseDeclared splits a stream into file bytes and extension, trusting declaredLen as the file length. The
// extension is scanned greedily from 4+declaredLen and ends at the first NUL
func ParseDeclared(stream []byte, declaredLen uint32) (*Payload, error) {
	if declaredLen == 0 {
		return nil, fmt.Errorf("%w: declared length is zero", ErrMalformedPayload)
	}

	extOffset, extLen, err := LocateExtension(stream, declaredLen)
	if err != nil {
		return nil, err
	}

	return &Payload{
		Data:         stream[LengthPrefixSize:extOffset],
		Extension:    string(stream[extOffset : extOffset+extLen]),
		DeclaredSize: declaredLen,
		StreamSize:   extOffset + extLen + TerminatorSize,
	}, nil
}

// LocateExtension returns where the extension zone starts and how long it is, not counting the NUL
func LocateExtension(stream []byte, declaredLen uint32) (offset, length int, err error) {
	start := uint64(LengthPrefixSize) + uint64(declaredLen)
	if uint64(len(stream)) < start+TerminatorSize {
		return 0, 0, fmt.Errorf("%w: stream of %d bytes is shorter than declared length %d", ErrMalformedPayload,
			len(stream), declaredLen)
	}
	offset = int(start)
	if stream[offset] != ExtensionDot {
		return 0, 0, fmt.Errorf("%w: expected '.' at offset %d, found 0x%02x", ErrMalformedPayload, offset, stream[offset])
	}

	for i := offset + 1; i < len(stream); i++ {
		c := stream[i]
		if c == Terminator {
			if i == offset+1 {
				return 0, 0, fmt.Errorf("%w: empty extension", ErrMalformedPayload)
			}
			return offset, i - offset, nil
		}
		if !isExtensionChar(c) {
			return 0, 0, fmt.Errorf("%w: invalid extension character 0x%02x at offset %d", ErrMalformedPayload, c, i)
		}
	}
	return 0, 0, fmt.Errorf("%w: extension is not NUL terminated", ErrMalformedPayload)
}

// ExtensionFromName returns the extension of a file path, dot included
func ExtensionFromName(name string) (string, error) {
	ext := filepath.Ext(name)
	if ext == "" || ext == "." {
		return "", fmt.Errorf("%w: %s", ErrMissingExtension, name)
	}
	return ext, nil
}

// FileName is the name a recovered file is saved under
func FileName(base, extension string) string {
	return base + extension
}

func validExtension(ext string) bool {
	if len(ext) < 2 || ext[0] != ExtensionDot {
		return false
	}
	for i := 1; i < len(ext); i++ {
		if !isExtensionChar(ext[i]) {
			return false
		}
	}
	return true
}

func isExtensionChar(c byte) bool {
	return c == ExtensionDot || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
