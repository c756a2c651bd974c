package storage

import "fmt"

// ThumbnailSize bounds both sides of a thumbnail.
const ThumbnailSize = 300

// Thumbnailer scales an encoded image to fit a box and re-encodes it in its
// original format.
type Thumbnailer interface {
	Thumbnail(content []byte, maxWidth, maxHeight int) ([]byte, error)
}

// fitWithin scales w x h down to fit maxW x maxH keeping the aspect ratio.
// Images that already fit are left as they are.
func fitWithin(w, h, maxW, maxH int) (int, int, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("image has no area: %dx%d", w, h)
	}
	if w <= maxW && h <= maxH {
		return w, h, nil
	}

	nw, nh := maxW, h*maxW/w
	if nh > maxH {
		nw, nh = w*maxH/h, maxH
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh, nil
}
