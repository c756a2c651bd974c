//go:build vips

package storage

import (
	"fmt"

	"github.com/h2non/bimg"
)

// VipsThumbnailer resizes images with libvips.
type VipsThumbnailer struct{}

// NewThumbnailer returns the thumbnailer selected at build time.
func NewThumbnailer() Thumbnailer {
	return VipsThumbnailer{}
}

func (VipsThumbnailer) Thumbnail(content []byte, maxWidth, maxHeight int) ([]byte, error) {
	img := bimg.NewImage(content)

	size, err := img.Size()
	if err != nil {
		return nil, fmt.Errorf("failed to read image size: %w", err)
	}

	w, h, err := fitWithin(size.Width, size.Height, maxWidth, maxHeight)
	if err != nil {
		return nil, err
	}
	out, err := img.Process(bimg.Options{
		Width:  w,
		Height: h,
		Force:  true,
		Type:   bimg.DetermineImageType(content),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	return out, nil
}
