package imaging

import (
	"fmt"
	"image"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return.
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// # Color Quantization
//
// To group similar colors, each 8-bit component is quantized to a multiple
// of 16:
//
//	quantized = (original / 16) * 16
//
// Fully transparent pixels are skipped; they carry no color the vectorizer
// would keep.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if !r.In(bounds) || r.Empty() {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds", region.X1, region.Y1, region.X2, region.Y2)
		}
		bounds = r
	}

	colorCounts := make(map[string]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// RGBA is alpha-premultiplied; undo it before quantizing.
			r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
			key := fmt.Sprintf("#%02X%02X%02X", (r>>8)/16*16, (g>>8)/16*16, (b>>8)/16*16)
			colorCounts[key]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for hex, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        hex,
			Percentage: float64(cnt) / float64(totalPixels) * 100,
		})
	}

	// Ties are broken by hex so the result is deterministic.
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// SuggestPalette proposes up to count colors for processing.palette.
//
// It walks the quantized histogram from most to least frequent and keeps a
// color only if its CIE Lab distance to every color already kept is at least
// minDistance (0.1 is a reasonable start). Colors are returned as uppercase
// "#RRGGBB".
func SuggestPalette(img image.Image, count int, minDistance float64) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	// The histogram holds at most 16^3 buckets.
	hist, err := DominantColors(img, 4096, nil)
	if err != nil {
		return nil, err
	}

	var kept []colorful.Color
	for _, cf := range hist.Colors {
		c, err := colorful.Hex(cf.Hex)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", cf.Hex, err)
		}

		distinct := true
		for _, k := range kept {
			if c.DistanceLab(k) < minDistance {
				distinct = false
				break
			}
		}
		if !distinct {
			continue
		}

		kept = append(kept, c)
		if len(kept) == count {
			break
		}
	}

	out := make([]string, len(kept))
	for i, c := range kept {
		out[i] = strings.ToUpper(c.Hex())
	}
	return out, nil
}
