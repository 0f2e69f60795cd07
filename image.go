package iterm2img

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is the file format FromImage encodes to
type Format int

const (
	// PNG is lossless and the most widely supported format
	PNG Format = iota
	// JPEG is smaller for photos
	JPEG
	// GIF encodes a single frame
	GIF
	// BMP is uncompressed
	BMP
	// TIFF uses deflate compression
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FromImage encodes img in the given format and returns an Encoder over the result
func FromImage(img image.Image, f Format) (*Encoder, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	var buf bytes.Buffer
	var err error
	switch f {
	case PNG:
		err = png.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
	case GIF:
		err = gif.Encode(&buf, img, nil)
	case BMP:
		err = bmp.Encode(&buf, img)
	case TIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image as %s: %w", f, err)
	}

	return FromBytes(buf.Bytes()), nil
}
