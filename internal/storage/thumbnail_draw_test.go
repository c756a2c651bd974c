//go:build !vips

package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedImage(t *testing.T, format string, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	return buf.Bytes()
}

func TestDrawThumbnailer(t *testing.T) {
	th := NewThumbnailer()

	tests := []struct {
		name         string
		format       string
		w, h         int
		wantW, wantH int
	}{
		{name: "wide png", format: "png", w: 900, h: 300, wantW: 300, wantH: 100},
		{name: "tall jpeg", format: "jpeg", w: 200, h: 800, wantW: 75, wantH: 300},
		{name: "small image is not enlarged", format: "png", w: 40, h: 20, wantW: 40, wantH: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := th.Thumbnail(encodedImage(t, tt.format, tt.w, tt.h), ThumbnailSize, ThumbnailSize)
			require.NoError(t, err)

			cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, tt.wantH, cfg.Height)
		})
	}
}

func TestDrawThumbnailer_NotAnImage(t *testing.T) {
	_, err := NewThumbnailer().Thumbnail([]byte("plain text"), ThumbnailSize, ThumbnailSize)
	assert.Error(t, err)
}
