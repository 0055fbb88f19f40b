// Package bmp reads and writes uncompressed 24-bit BMP files, exposing the pixel bytes as one flat buffer with the
// row padding stripped. Everything else in the file is kept so that writing an image back reproduces it byte for
// byte apart from the pixels that changed.
package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	xbmp "golang.org/x/image/bmp"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
)

const (
	HeaderSize    = 54
	BitsPerPixel  = 24
	BytesPerPixel = 3

	magic             = "BM"
	offsetPixelData   = 10
	offsetWidth       = 18
	offsetHeight      = 22
	offsetBitCount    = 28
	offsetCompression = 30
	compressionNone   = 0
)

var (
	ErrNotBMP             = errors.New("not a BMP file")
	ErrUnsupportedFormat  = errors.New("only uncompressed 24-bit BMP files are supported")
	ErrInvalidDimensions  = errors.New("invalid BMP dimensions")
	ErrTruncated          = errors.New("BMP file is truncated")
	ErrUnsupportedPicture = errors.New("image cannot be converted to BMP")
)

// Image is a 24-bit BMP. Pixels holds Width*3 bytes per row in file order, that is bottom-up BGR unless the height
// in the header is negative
type Image struct {
	Width, Height int
	TopDown       bool
	Pixels        []byte

	// everything before the pixel data, header included
	prefix []byte
	// row padding as found in the file, one run per row
	padding []byte
	// bytes after the last row
	suffix []byte
}

// Capacity is the number of pixel bytes available to a codec
func (img *Image) Capacity() int {
	return len(img.Pixels)
}

func (img *Image) rowSize() int {
	return img.Width * BytesPerPixel
}

func (img *Image) rowPadding() int {
	return (4 - img.rowSize()%4) % 4
}

// Clone returns a deep copy, so a carrier can be modified without touching the original
func (img *Image) Clone() *Image {
	return &Image{
		Width:   img.Width,
		Height:  img.Height,
		TopDown: img.TopDown,
		Pixels:  bytes.Clone(img.Pixels),
		prefix:  bytes.Clone(img.prefix),
		padding: bytes.Clone(img.padding),
		suffix:  bytes.Clone(img.suffix),
	}
}

// Read parses a BMP file
func Read(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses the bytes of a BMP file
func Parse(data []byte) (*Image, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrNotBMP, len(data))
	}
	if string(data[:2]) != magic {
		return nil, ErrNotBMP
	}

	le := binary.LittleEndian
	pixelOffset := int(le.Uint32(data[offsetPixelData:]))
	width := int(int32(le.Uint32(data[offsetWidth:])))
	height := int(int32(le.Uint32(data[offsetHeight:])))
	bitCount := le.Uint16(data[offsetBitCount:])
	compression := le.Uint32(data[offsetCompression:])

	if bitCount != BitsPerPixel || compression != compressionNone {
		return nil, fmt.Errorf("%w: %d bits per pixel, compression %d", ErrUnsupportedFormat, bitCount, compression)
	}
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if pixelOffset < HeaderSize || pixelOffset > len(data) {
		return nil, fmt.Errorf("%w: pixel data offset %d", ErrTruncated, pixelOffset)
	}

	img := &Image{Width: width, Height: height}
	if height < 0 {
		img.Height = -height
		img.TopDown = true
	}

	rowSize, rowPadding := img.rowSize(), img.rowPadding()
	stride := rowSize + rowPadding
	if uint64(stride)*uint64(img.Height) > uint64(len(data)-pixelOffset) {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes of pixel data, %d present", ErrTruncated, img.Width,
			img.Height, stride*img.Height, len(data)-pixelOffset)
	}

	img.prefix = bytes.Clone(data[:pixelOffset])
	img.Pixels = make([]byte, 0, rowSize*img.Height)
	img.padding = make([]byte, 0, rowPadding*img.Height)
	for row := 0; row < img.Height; row++ {
		start := pixelOffset + row*stride
		img.Pixels = append(img.Pixels, data[start:start+rowSize]...)
		img.padding = append(img.padding, data[start+rowSize:start+stride]...)
	}
	img.suffix = bytes.Clone(data[pixelOffset+stride*img.Height:])
	return img, nil
}

// Write writes the image, re-applying the row padding it was read with
func (img *Image) Write(w io.Writer) error {
	if len(img.Pixels) != img.rowSize()*img.Height {
		return fmt.Errorf("%w: %d pixel bytes for %dx%d", ErrInvalidDimensions, len(img.Pixels), img.Width, img.Height)
	}

	rowSize, rowPadding := img.rowSize(), img.rowPadding()
	buf := bytes.NewBuffer(make([]byte, 0, len(img.prefix)+(rowSize+rowPadding)*img.Height+len(img.suffix)))
	buf.Write(img.prefix)
	for row := 0; row < img.Height; row++ {
		buf.Write(img.Pixels[row*rowSize : (row+1)*rowSize])
		buf.Write(img.padding[row*rowPadding : (row+1)*rowPadding])
	}
	buf.Write(img.suffix)
	_, err := buf.WriteTo(w)
	return err
}

// FromImage flattens img onto an opaque canvas and encodes it as a 24-bit BMP carrier
func FromImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, bounds)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedPicture, err)
	}
	return Parse(buf.Bytes())
}

// Convert decodes a PNG, JPEG or BMP image of any pixel format and turns it into a 24-bit BMP carrier
func Convert(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedPicture, err)
	}
	return FromImage(img)
}
