package imaging

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Crop extracts a rectangular region from an image.
func Crop(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()

	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2)), nil
}

// FitMaxPixels downscales img so that width*height <= maxPixels, keeping the
// aspect ratio. Images already within the limit, and maxPixels <= 0, return
// img unchanged. It never upscales.
//
// The service downscales oversized inputs itself (input.max_pixels); doing
// it locally shrinks the upload.
func FitMaxPixels(img image.Image, maxPixels int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxPixels <= 0 || w*h <= maxPixels {
		return img
	}

	scale := math.Sqrt(float64(maxPixels) / float64(w*h))
	nw := int(math.Floor(float64(w) * scale))
	nh := int(math.Floor(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	// Floating point error in scale can overshoot by one row or column.
	for nw*nh > maxPixels {
		if nw >= nh {
			nw--
		} else {
			nh--
		}
	}

	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}
	return buf.Bytes(), nil
}

// PrepareOptions controls Prepare. The zero value uploads the image as is,
// re-encoded to PNG.
type PrepareOptions struct {
	// Crop limits the upload to a region.
	Crop *Region

	// MaxPixels downscales the (cropped) image to at most this many pixels.
	MaxPixels int
}

// Prepared is an image ready for upload.
type Prepared struct {
	Data     []byte
	Filename string
	Original ImageInfo
	Width    int
	Height   int
}

// Prepare loads path through cache, applies opts and encodes the result as
// PNG for upload.
func Prepare(cache *ImageCache, path string, opts PrepareOptions) (*Prepared, error) {
	info, err := LoadImageInfo(cache, path)
	if err != nil {
		return nil, err
	}
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Crop != nil {
		if img, err = Crop(img, *opts.Crop); err != nil {
			return nil, err
		}
	}
	img = FitMaxPixels(img, opts.MaxPixels)

	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}

	return &Prepared{
		Data:     data,
		Filename: "image.png",
		Original: *info,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}, nil
}
