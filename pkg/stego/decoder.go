package stego

import (
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/config"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/envelope"
	"stegobmp/pkg/model"
	"stegobmp/pkg/payload"
	"time"
)

// Decoder recovers a file hidden by Encoder
type Decoder struct {
	image  *bmp.Image
	codec  codec.Codec
	params crypt.Params
	stats  model.DecodeStats
}

func NewDecoder(img *bmp.Image, cfg config.StegoConfig) (*Decoder, error) {
	cfg.PopulateUnsetConfigVars()

	c, err := cfg.Codec()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return &Decoder{image: img, codec: c, params: params}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// DecodeFile recovers the hidden file, naming it base plus the recovered extension
func (d *Decoder) DecodeFile(base string) (*model.OutputFile, error) {
	d.stats = model.DecodeStats{}

	stream, err := d.decodeStream()
	if err != nil {
		return nil, err
	}
	d.stats.StreamSize = len(stream)

	if stream, err = d.decrypt(stream); err != nil {
		return nil, err
	}

	p, err := payload.Parse(stream)
	if err != nil {
		return nil, err
	}
	return toOutputFile(base, p), nil
}

func toOutputFile(base string, p *payload.Payload) *model.OutputFile {
	return &model.OutputFile{
		Name:      payload.FileName(base, p.Extension),
		Extension: p.Extension,
		Content:   p.Data,
	}
}

func (d *Decoder) decodeStream() ([]byte, error) {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	// ciphertext may contain NULs, so an envelope ends where its length says
	if !d.params.Enabled() {
		return d.codec.Retrieve(d.image.Pixels, codec.Terminated)
	}
	if lsbi, ok := d.codec.(*codec.LSBICodec); ok {
		stream, _, err := lsbi.RetrieveAccepted(d.image.Pixels, codec.Exact, inspectEnvelope)
		return stream, err
	}
	return d.codec.Retrieve(d.image.Pixels, codec.Exact)
}

func inspectEnvelope(stream []byte) error {
	_, err := envelope.Inspect(stream)
	return err
}

func (d *Decoder) decrypt(stream []byte) ([]byte, error) {
	decryptionStart := time.Now()
	defer func() {
		d.stats.Decryption = time.Since(decryptionStart)
	}()
	return envelope.Unwrap(stream, d.params)
}
