// Package stego ties framing, encryption and the LSB codecs together to hide a file in a BMP carrier and to get it
// back.
package stego

import (
	"errors"
	"fmt"
	"io"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/config"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/envelope"
	"stegobmp/pkg/model"
	"stegobmp/pkg/payload"
	"time"
)

var ErrFileSizeMismatch = errors.New("file content does not match its declared size")

// Encoder hides files in the pixels of a carrier. The carrier is modified in place
type Encoder struct {
	image  *bmp.Image
	codec  codec.Codec
	params crypt.Params
	stats  model.EncodeStats
}

func NewEncoder(img *bmp.Image, cfg config.StegoConfig) (*Encoder, error) {
	cfg.PopulateUnsetConfigVars()

	c, err := cfg.Codec()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return &Encoder{image: img, codec: c, params: params}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Image returns the carrier being written to
func (e *Encoder) Image() *bmp.Image {
	return e.image
}

// EncodeFile frames file, encrypts it when a password is configured and hides it. Nothing is written to the carrier
// when the file does not fit
func (e *Encoder) EncodeFile(file model.InputFile) error {
	e.stats = model.EncodeStats{Capacity: e.codec.Capacity(e.image.Capacity())}

	stream, err := e.setupStream(file)
	if err != nil {
		return err
	}
	if stream, err = e.encrypt(stream); err != nil {
		return err
	}
	e.stats.StreamSize = len(stream)

	return e.encodeStream(stream)
}

// WriteBMP writes the carrier as a BMP file
func (e *Encoder) WriteBMP(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return e.image.Write(output)
}

func (e *Encoder) setupStream(file model.InputFile) ([]byte, error) {
	setupStart := time.Now()
	defer func() {
		e.stats.Setup = time.Since(setupStart)
	}()

	ext, err := payload.ExtensionFromName(file.Name)
	if err != nil {
		return nil, err
	}
	content, err := io.ReadAll(file.Content)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file.Name, err)
	}
	if file.Size > 0 && int64(len(content)) != file.Size {
		return nil, fmt.Errorf("%w: %s declared %d bytes, read %d", ErrFileSizeMismatch, file.Name, file.Size,
			len(content))
	}
	return payload.Build(content, ext)
}

func (e *Encoder) encrypt(stream []byte) ([]byte, error) {
	encryptionStart := time.Now()
	defer func() {
		e.stats.Encryption = time.Since(encryptionStart)
	}()
	return envelope.Wrap(stream, e.params)
}

func (e *Encoder) encodeStream(stream []byte) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()
	return e.codec.Hide(e.image.Pixels, stream)
}
