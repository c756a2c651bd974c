//go:build !vips

package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// DrawThumbnailer resizes images in pure Go.
type DrawThumbnailer struct{}

// NewThumbnailer returns the thumbnailer selected at build time.
func NewThumbnailer() Thumbnailer {
	return DrawThumbnailer{}
}

func (DrawThumbnailer) Thumbnail(content []byte, maxWidth, maxHeight int) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	w, h, err := fitWithin(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(&buf, dst)
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	case "bmp":
		err = bmp.Encode(&buf, dst)
	case "tiff":
		err = tiff.Encode(&buf, dst, nil)
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s thumbnail: %w", format, err)
	}

	return buf.Bytes(), nil
}
