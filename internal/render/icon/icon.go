// Package icon decodes indicator images. Raster formats go through
// image.Decode; SVG icons are rasterized with oksvg.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	// Register a broad set of image decoders so image.Decode can handle many formats.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrEmptyIcon is returned for SVG documents without a usable size.
var ErrEmptyIcon = errors.New("svg icon has no size")

// Decode decodes an indicator image. SVG is rasterized to size x size
// pixels; raster images keep their own size. mimeType may be empty.
func Decode(data []byte, mimeType string, size int) (image.Image, error) {
	if isSVG(data, mimeType) {
		return Rasterize(data, size)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Rasterize renders an SVG icon into a size x size image. A size below 1
// uses the icon's view box.
func Rasterize(data []byte, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	w, h := size, size
	if size < 1 {
		w = int(math.Ceil(icon.ViewBox.W))
		h = int(math.Ceil(icon.ViewBox.H))
	}
	if w < 1 || h < 1 {
		return nil, ErrEmptyIcon
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

func isSVG(data []byte, mimeType string) bool {
	if strings.HasPrefix(mimeType, "image/svg") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}
