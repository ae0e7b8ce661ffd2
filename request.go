package vectorizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Image is the input of a vectorize call. Exactly one source must be set.
type Image struct {
	// Data is the raw image file (PNG, JPEG, BMP, GIF or TIFF), uploaded as
	// a multipart file.
	Data []byte `form:"image" yaml:"-"`

	// Filename is sent with Data. Defaults to "image".
	Filename string `form:"-" yaml:"-"`

	// Base64 is the image file encoded as base64.
	Base64 string `form:"image.base64" yaml:"-" validate:"omitempty,base64"`

	// URL is fetched by the service.
	URL string `form:"image.url" yaml:"-" validate:"omitempty,url"`

	// Token refers to an image retained by an earlier call.
	Token string `form:"image_token" yaml:"-"`
}

var imageSourceNames = []string{"image", "image.base64", "image.url", "image_token"}

// ImageFromFile reads path into an Image with Data and Filename set.
func ImageFromFile(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	return Image{Data: data, Filename: filepath.Base(path)}, nil
}

func (img Image) validate() error {
	if err := RequireOne(imageSourceNames, img.Data, img.Base64, img.URL, img.Token); err != nil {
		return err
	}
	set := 0
	for _, v := range []any{img.Data, img.Base64, img.URL, img.Token} {
		if !isEmpty(v) {
			set++
		}
	}
	if set > 1 {
		return invalid("image", "only one of %s may be provided", strings.Join(imageSourceNames, ", "))
	}
	return nil
}

// PaletteEntry is one color of processing.palette. Shapes close to Color
// are snapped to it, or to MapTo when set.
type PaletteEntry struct {
	Color     string   `yaml:"color"`
	MapTo     string   `yaml:"map_to,omitempty"`
	Tolerance *float64 `yaml:"tolerance,omitempty"`
}

// Palette restricts the colors used in the output.
type Palette []PaletteEntry

// String renders the palette in the service's syntax:
// "#RRGGBB [-> #RRGGBB] [~ tolerance];" per entry.
func (p Palette) String() string {
	var sb strings.Builder
	for i, e := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.Color)
		if e.MapTo != "" {
			sb.WriteString(" -> ")
			sb.WriteString(e.MapTo)
		}
		if e.Tolerance != nil {
			sb.WriteString(" ~ ")
			sb.WriteString(strconv.FormatFloat(*e.Tolerance, 'f', -1, 64))
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

func (p Palette) validate() error {
	var errs []error
	for i, e := range p {
		field := fmt.Sprintf("processing.palette[%d]", i)
		errs = append(errs, ValidateHex(field+".color", e.Color))
		if e.MapTo != "" {
			errs = append(errs, ValidateHex(field+".map_to", e.MapTo))
		}
		if e.Tolerance != nil {
			errs = append(errs, ValidateRange(field+".tolerance", *e.Tolerance, 0, 1))
		}
	}
	return joinValidation(errs...)
}

// ParsePalette parses the service's palette syntax, e.g.
// "#FF0000; #00FF00 -> #008000 ~ 0.1;". The trailing semicolon is optional.
func ParsePalette(s string) (Palette, error) {
	var p Palette
	for _, raw := range strings.Split(s, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		var e PaletteEntry
		if before, after, ok := strings.Cut(raw, "~"); ok {
			tol, err := strconv.ParseFloat(strings.TrimSpace(after), 64)
			if err != nil {
				return nil, invalid("processing.palette", "invalid tolerance in %q", raw)
			}
			e.Tolerance = &tol
			raw = strings.TrimSpace(before)
		}
		if before, after, ok := strings.Cut(raw, "->"); ok {
			e.MapTo = strings.TrimSpace(after)
			raw = strings.TrimSpace(before)
		}
		e.Color = raw
		p = append(p, e)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ProcessingOptions holds the processing.* parameters.
type ProcessingOptions struct {
	// MaxColors limits the number of colors; 0 means unlimited.
	MaxColors *int `form:"processing.max_colors" yaml:"max_colors" validate:"omitempty,min=0,max=256"`

	Palette Palette `form:"processing.palette" yaml:"palette" validate:"-"`

	// ShapesMinAreaPx discards shapes smaller than this many pixels.
	ShapesMinAreaPx *float64 `form:"processing.shapes.min_area_px" yaml:"shapes_min_area_px" validate:"omitempty,min=0,max=100"`
}

// VectorizeRequest is the input of Client.Vectorize.
type VectorizeRequest struct {
	Image Image `yaml:"-"`

	Mode Mode `form:"mode" yaml:"mode" validate:"omitempty,oneof=production preview test test_preview"`

	// InputMaxPixels makes the service downscale larger inputs.
	InputMaxPixels *int `form:"input.max_pixels" yaml:"input_max_pixels" validate:"omitempty,min=100,max=3145728"`

	// RetentionDays keeps the image on the server so Download can re-render
	// it. The token is returned in Result.ImageToken.
	RetentionDays *int `form:"policy.retention_days" yaml:"retention_days" validate:"omitempty,min=0,max=30"`

	Processing ProcessingOptions `yaml:"processing"`
	Output     OutputOptions     `yaml:"output"`
}

// Validate checks every parameter without touching the network.
func (r *VectorizeRequest) Validate() error {
	if r == nil {
		return invalid("request", "must not be nil")
	}
	return joinValidation(
		r.Image.validate(),
		validateStruct(r),
		r.Processing.Palette.validate(),
	)
}

// DownloadRequest is the input of Client.Download.
type DownloadRequest struct {
	ImageToken string `form:"image_token" validate:"required"`

	// Receipt from an earlier preview-mode call, so the production result
	// is charged at the upgrade rate.
	Receipt string `form:"receipt"`

	Output OutputOptions
}

// Validate checks every parameter without touching the network.
func (r *DownloadRequest) Validate() error {
	if r == nil {
		return invalid("request", "must not be nil")
	}
	return validateStruct(r)
}

// joinValidation merges validation errors into a single *ValidationError.
// The first error that is not a *ValidationError is returned as is.
func joinValidation(errs ...error) error {
	var out *ValidationError
	for _, err := range errs {
		if err == nil {
			continue
		}
		ve, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		if out == nil {
			out = &ValidationError{}
		}
		out.Fields = append(out.Fields, ve.Fields...)
	}
	if out == nil {
		return nil
	}
	return out
}
