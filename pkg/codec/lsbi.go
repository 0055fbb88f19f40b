package codec

import (
	"errors"
	"fmt"
	"io"
	"stegobmp/internal/bits"
	"strings"
)

// Convention selects how LSBI lays out its control record and stream bits
type Convention int

const (
	// ConventionAdaptive stores one inversion flag per bit pattern in the first 4 carrier bytes and the stream in
	// every carrier byte from 4 on, skipping every third byte
	ConventionAdaptive Convention = iota
	// ConventionLegacy stores the fixed LegacySignature in the first 4 carrier bytes and the stream in every carrier
	// byte from 4 on, each bit XORed with bit 7 of the byte it is written to
	ConventionLegacy
)

const (
	// LegacySignature is the control value that marks a legacy LSBI carrier
	LegacySignature = 0xA

	controlBytes = 4
	patterns     = 4
)

var ErrUnknownConvention = errors.New("unknown LSBI convention")

func (c Convention) String() string {
	switch c {
	case ConventionAdaptive:
		return "adaptive"
	case ConventionLegacy:
		return "legacy"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// ParseConvention matches a convention name case-insensitively, the empty string selecting ConventionAdaptive
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(s) {
	case "", "adaptive":
		return ConventionAdaptive, nil
	case "legacy":
		return ConventionLegacy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
}

// LSBICodec hides stream bits in bit 0 of carrier bytes, inverting them per carrier bit pattern when that flips
// fewer carrier bits. The pattern of a carrier byte is its bits 1 and 2, which embedding never changes
type LSBICodec struct {
	convention Convention
}

func NewLSBI(convention Convention) *LSBICodec {
	return &LSBICodec{convention: convention}
}

func (c *LSBICodec) Method() Method {
	return LSBI
}

func (c *LSBICodec) Convention() Convention {
	return c.convention
}

func (c *LSBICodec) Capacity(carrierLen int) int {
	if c.convention == ConventionLegacy {
		return legacyCapacity(carrierLen)
	}
	return adaptiveCapacity(carrierLen)
}

func (c *LSBICodec) Hide(carrier, stream []byte) error {
	if len(carrier) < controlBytes {
		return fmt.Errorf("%w: carrier of %d bytes cannot hold the %d byte control record", ErrInsufficientCapacity,
			len(carrier), controlBytes)
	}
	if err := checkCapacity(c, len(carrier), len(stream)); err != nil {
		return err
	}
	if c.convention == ConventionLegacy {
		hideLegacy(carrier, stream)
	} else {
		hideAdaptive(carrier, stream)
	}
	return nil
}

// Retrieve reads the control record to tell the conventions apart. A carrier carrying LegacySignature is read the
// legacy way first; since an adaptive record can hold the same value, the adaptive way is tried when that fails
func (c *LSBICodec) Retrieve(carrier []byte, mode RetrieveMode) ([]byte, error) {
	stream, _, err := c.RetrieveConvention(carrier, mode)
	return stream, err
}

// RetrieveConvention is Retrieve also reporting which convention the stream was found with
func (c *LSBICodec) RetrieveConvention(carrier []byte, mode RetrieveMode) ([]byte, Convention, error) {
	return c.RetrieveAccepted(carrier, mode, nil)
}

// RetrieveAccepted is RetrieveConvention where a legacy reading must also pass accept, when not nil, before it is
// preferred over the adaptive one. Exact mode has no terminator to reject a wrong legacy reading with
func (c *LSBICodec) RetrieveAccepted(carrier []byte, mode RetrieveMode, accept func([]byte) error) ([]byte, Convention,
	error) {
	control, ok := ControlValue(carrier)
	if ok && control == LegacySignature {
		stream, legacyErr := readStream(&legacyReader{carrier: carrier, currentByte: controlBytes},
			legacyCapacity(len(carrier)), mode)
		if legacyErr == nil && accept != nil {
			legacyErr = accept(stream)
		}
		if legacyErr == nil {
			return stream, ConventionLegacy, nil
		}
		stream, err := c.retrieveAdaptive(carrier, mode)
		if err == nil && accept != nil {
			err = accept(stream)
		}
		if err != nil {
			return nil, ConventionLegacy, legacyErr
		}
		return stream, ConventionAdaptive, nil
	}
	stream, err := c.retrieveAdaptive(carrier, mode)
	return stream, ConventionAdaptive, err
}

func (c *LSBICodec) retrieveAdaptive(carrier []byte, mode RetrieveMode) ([]byte, error) {
	return readStream(newAdaptiveReader(carrier), adaptiveCapacity(len(carrier)), mode)
}

// ControlValue reads the LSBs of the first 4 carrier bytes, first byte most significant. ok is false when the
// carrier is shorter than that
func ControlValue(carrier []byte) (control byte, ok bool) {
	if len(carrier) < controlBytes {
		return 0, false
	}
	bw := bits.NewBitWriter(1)
	for _, b := range carrier[:controlBytes] {
		bw.WriteBit(b)
	}
	bw.WriteBits(0, 8-controlBytes)
	return bw.Last() >> (8 - controlBytes), true
}

// adaptiveCandidates counts carrier bytes at index 4 or above whose index is not 2 modulo 3
func adaptiveCandidates(carrierLen int) int {
	if carrierLen <= controlBytes {
		return 0
	}
	// indexes 0, 1 and 3 are the non-skipped ones below 4
	return carrierLen - carrierLen/3 - 3
}

func adaptiveCapacity(carrierLen int) int {
	return adaptiveCandidates(carrierLen) / 8
}

func legacyCapacity(carrierLen int) int {
	if carrierLen <= controlBytes {
		return 0
	}
	return (carrierLen - controlBytes) / 8
}

func nextCandidate(i int) int {
	i++
	if i%3 == 2 {
		i++
	}
	return i
}

func pattern(b byte) int {
	return int(b>>1) & 3
}

func hideAdaptive(carrier, stream []byte) {
	// count the carrier bits that would flip per pattern, storing bits as they are and storing them inverted
	var cost0, cost1 [patterns]int
	br := bits.NewBitReader(stream)
	for currentByte := controlBytes; ; currentByte = nextCandidate(currentByte) {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}
		p := pattern(carrier[currentByte])
		if carrier[currentByte]&1 != bit {
			cost0[p]++
		} else {
			cost1[p]++
		}
	}

	var inverted [patterns]bool
	for p := 0; p < patterns; p++ {
		inverted[p] = cost1[p] < cost0[p]
		carrier[p] &^= 1
		if inverted[p] {
			carrier[p] |= 1
		}
	}

	br = bits.NewBitReader(stream)
	for currentByte := controlBytes; ; currentByte = nextCandidate(currentByte) {
		bit, ok := br.ReadBit()
		if !ok {
			return
		}
		if inverted[pattern(carrier[currentByte])] {
			bit ^= 1
		}
		carrier[currentByte] = carrier[currentByte]&^1 | bit
	}
}

func hideLegacy(carrier, stream []byte) {
	signature := bits.NewBitReader([]byte{LegacySignature << (8 - controlBytes)})
	for i := 0; i < controlBytes; i++ {
		bit, _ := signature.ReadBit()
		carrier[i] = carrier[i]&^1 | bit
	}

	br := bits.NewBitReader(stream)
	for currentByte := controlBytes; ; currentByte++ {
		bit, ok := br.ReadBit()
		if !ok {
			return
		}
		carrier[currentByte] = carrier[currentByte]&^1 | (bit ^ carrier[currentByte]>>7)
	}
}

type adaptiveReader struct {
	carrier     []byte
	currentByte int
	inverted    [patterns]bool
}

// newAdaptiveReader takes the inversion flags from the control record of carrier
func newAdaptiveReader(carrier []byte) *adaptiveReader {
	r := &adaptiveReader{carrier: carrier, currentByte: controlBytes}
	if len(carrier) >= controlBytes {
		for p := 0; p < patterns; p++ {
			r.inverted[p] = carrier[p]&1 == 1
		}
	}
	return r
}

func (r *adaptiveReader) ReadByte() (byte, error) {
	bw := bits.NewBitWriter(1)
	for i := 0; i < 8; i++ {
		if r.currentByte >= len(r.carrier) {
			return 0, io.EOF
		}
		b := r.carrier[r.currentByte]
		bit := b & 1
		if r.inverted[pattern(b)] {
			bit ^= 1
		}
		bw.WriteBit(bit)
		r.currentByte = nextCandidate(r.currentByte)
	}
	return bw.Last(), nil
}

type legacyReader struct {
	carrier     []byte
	currentByte int
}

func (r *legacyReader) ReadByte() (byte, error) {
	if len(r.carrier)-r.currentByte < 8 {
		return 0, io.EOF
	}
	bw := bits.NewBitWriter(1)
	for _, b := range r.carrier[r.currentByte : r.currentByte+8] {
		bw.WriteBit((b & 1) ^ (b >> 7))
	}
	r.currentByte += 8
	return bw.Last(), nil
}
