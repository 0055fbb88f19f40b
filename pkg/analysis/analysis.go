// Package analysis detects which LSB method, if any, hides a payload in a carrier without being told.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/envelope"
	"stegobmp/pkg/payload"
)

type Format string

const (
	FormatPlain     Format = "plain"
	FormatEncrypted Format = "encrypted"

	maxGuessExtension = 8
)

var (
	ErrNoPayloadDetected = errors.New("no payload detected")
	ErrNotEncrypted      = errors.New("payload is not encrypted")
	ErrEncrypted         = errors.New("payload is encrypted")
)

// Attempt is the outcome of retrieving with one method
type Attempt struct {
	Method codec.Method `json:"method"`
	Err    error        `json:"-"`
}

func (a Attempt) MarshalJSON() ([]byte, error) {
	type attempt struct {
		Method codec.Method `json:"method"`
		Error  string       `json:"error,omitempty"`
	}
	out := attempt{Method: a.Method}
	if a.Err != nil {
		out.Error = a.Err.Error()
	}
	return json.Marshal(out)
}

// Guess is the best-guess method when no payload could be validated, with where its signature was found
type Guess struct {
	Method    codec.Method `json:"method"`
	Signature string       `json:"signature"`
	Offset    int          `json:"offset"`
}

// LSBStats describes the bit 0 plane of the carrier. Hidden data drives OnesRatio towards 0.5 and Entropy towards 1
type LSBStats struct {
	Zeros     int     `json:"zeros"`
	Ones      int     `json:"ones"`
	OnesRatio float64 `json:"ones_ratio"`
	Entropy   float64 `json:"entropy"`
}

type Result struct {
	HasPayload bool         `json:"has_payload"`
	Method     codec.Method `json:"method,omitempty"`
	Format     Format       `json:"format,omitempty"`
	// DeclaredSize is the file length for plain payloads and the envelope length for encrypted ones
	DeclaredSize  uint32    `json:"declared_size"`
	ExtractedSize int       `json:"extracted_size"`
	Stream        []byte    `json:"-"`
	Attempts      []Attempt `json:"attempts"`
	Guess         *Guess    `json:"guess,omitempty"`
	LSBStats      LSBStats  `json:"lsb_stats"`
}

// Analyze tries LSB1, LSB4 and LSBI in turn and reports the first whose stream is a well formed payload or
// encrypted envelope. When none is, the result carries a best guess and ErrNoPayloadDetected is returned with it
func Analyze(carrier []byte) (*Result, error) {
	result := &Result{LSBStats: ComputeLSBStats(carrier)}

	for _, c := range codec.All() {
		stream, err := c.Retrieve(carrier, codec.Terminated)
		if err == nil {
			err = result.validate(c.Method(), stream)
		}
		result.Attempts = append(result.Attempts, Attempt{Method: c.Method(), Err: err})
		if err == nil {
			return result, nil
		}
	}

	result.Guess = guess(carrier)
	return result, ErrNoPayloadDetected
}

func (r *Result) validate(method codec.Method, stream []byte) error {
	p, err := payload.Parse(stream)
	if err == nil {
		r.accept(method, FormatPlain, p.DeclaredSize, stream)
		return nil
	}

	h, envErr := envelope.Inspect(stream)
	if envErr != nil {
		return err
	}
	if len(stream) != h.Size()+payload.TerminatorSize || stream[len(stream)-1] != payload.Terminator {
		return fmt.Errorf("%w: envelope of %d bytes is not followed by its terminator", envelope.ErrInconsistentLength,
			h.Size())
	}
	r.accept(method, FormatEncrypted, h.Length, stream)
	return nil
}

func (r *Result) accept(method codec.Method, format Format, declared uint32, stream []byte) {
	r.HasPayload = true
	r.Method = method
	r.Format = format
	r.DeclaredSize = declared
	r.ExtractedSize = len(stream)
	r.Stream = stream
}

// Payload parses a detected plain payload
func (r *Result) Payload() (*payload.Payload, error) {
	if !r.HasPayload {
		return nil, ErrNoPayloadDetected
	}
	if r.Format == FormatEncrypted {
		return nil, ErrEncrypted
	}
	return payload.Parse(r.Stream)
}

// Decrypt unwraps a detected encrypted payload and parses the stream inside
func (r *Result) Decrypt(params crypt.Params) (*payload.Payload, error) {
	if !r.HasPayload {
		return nil, ErrNoPayloadDetected
	}
	if r.Format != FormatEncrypted {
		return nil, ErrNotEncrypted
	}
	stream, err := envelope.Unwrap(r.Stream, params)
	if err != nil {
		return nil, err
	}
	return payload.Parse(stream)
}

// ComputeLSBStats counts the bit 0 plane of carrier and its Shannon entropy
func ComputeLSBStats(carrier []byte) LSBStats {
	var s LSBStats
	for _, b := range carrier {
		if b&1 == 1 {
			s.Ones++
		} else {
			s.Zeros++
		}
	}
	if len(carrier) == 0 {
		return s
	}
	s.OnesRatio = float64(s.Ones) / float64(len(carrier))
	for _, p := range []float64{s.OnesRatio, 1 - s.OnesRatio} {
		if p > 0 {
			s.Entropy -= p * math.Log2(p)
		}
	}
	return s
}

// guess looks for the LSBI legacy control record, then for the earliest extension zone ('.', up to 8
// alphanumerics, NUL) in the bytes LSB1 and LSB4 decode
func guess(carrier []byte) *Guess {
	if control, ok := codec.ControlValue(carrier); ok && control == codec.LegacySignature {
		return &Guess{Method: codec.LSBI, Signature: fmt.Sprintf("control record 0x%X", control), Offset: 0}
	}

	var best *Guess
	for _, m := range []codec.Method{codec.LSB1, codec.LSB4} {
		raw, err := codec.Raw(carrier, m)
		if err != nil {
			continue
		}
		offset, ext, ok := findExtension(raw)
		if ok && (best == nil || offset < best.Offset) {
			best = &Guess{Method: m, Signature: fmt.Sprintf("extension %q", ext), Offset: offset}
		}
	}
	return best
}

func findExtension(raw []byte) (offset int, ext string, ok bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] != payload.ExtensionDot {
			continue
		}
		j := i + 1
		for j < len(raw) && j-i-1 < maxGuessExtension && isAlphanumeric(raw[j]) {
			j++
		}
		if j > i+1 && j < len(raw) && raw[j] == payload.Terminator {
			return i, string(raw[i:j]), true
		}
	}
	return 0, "", false
}

func isAlphanumeric(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
