package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ironsheep/vectorizer-go"
	"github.com/ironsheep/vectorizer-go/internal/imaging"
	"github.com/ironsheep/vectorizer-go/internal/preset"
)

type vectorizeFlags struct {
	url              string
	base64           string
	token            string
	preset           string
	mode             string
	format           string
	svgVersion       string
	maxColors        int
	palette          string
	autoPalette      int
	minDistance      float64
	inputMaxPixels   int
	retentionDays    int
	prepareMaxPixels int
	crop             string
	out              string
}

func vectorizeCmd(g *globalFlags) *cobra.Command {
	var f vectorizeFlags

	c := &cobra.Command{
		Use:   "vectorize [image]",
		Short: "Vectorize a local image, a URL or a retained image token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source string
			if len(args) == 1 {
				source = args[0]
			}

			req, err := f.request(cmd, source)
			if err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}

			client, log, err := g.setup()
			if err != nil {
				return err
			}

			log.Info().Str("mode", string(req.Mode)).Str("format", string(req.Output.FileFormat)).Msg("vectorizing")
			res, err := client.Vectorize(cmd.Context(), req)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), res, outputPath(f.out, source, "vectorized", res))
		},
	}

	fl := c.Flags()
	fl.StringVar(&f.url, "url", "", "Image URL fetched by the service")
	fl.StringVar(&f.base64, "base64", "", "Base64 encoded image")
	fl.StringVar(&f.token, "token", "", "Image token of a retained image")
	fl.StringVar(&f.preset, "preset", "", "YAML file with vectorize options; flags override it")
	fl.StringVar(&f.mode, "mode", "", "Mode: production|preview|test|test_preview")
	fl.StringVar(&f.format, "format", "", "Output format: svg|eps|pdf|dxf|png")
	fl.StringVar(&f.svgVersion, "svg-version", "", "SVG version: svg_1_0|svg_1_1|svg_tiny_1_2")
	fl.IntVar(&f.maxColors, "max-colors", 0, "Maximum number of colors, 0 for unlimited")
	fl.StringVar(&f.palette, "palette", "", `Palette, e.g. "#000000; #FFFFFF -> #FAFAFA ~ 0.1;"`)
	fl.IntVar(&f.autoPalette, "auto-palette", 0, "Derive a palette of up to N colors from the local image")
	fl.Float64Var(&f.minDistance, "min-distance", 0.1, "Minimum Lab distance between --auto-palette colors")
	fl.IntVar(&f.inputMaxPixels, "input-max-pixels", 0, "Let the service downscale inputs above this many pixels")
	fl.IntVar(&f.retentionDays, "retention-days", 0, "Keep the image on the server for N days (0-30)")
	fl.IntVar(&f.prepareMaxPixels, "prepare-max-pixels", 0, "Downscale the local image to at most N pixels before upload")
	fl.StringVar(&f.crop, "crop", "", "Upload only the region x1,y1,x2,y2 of the local image")
	fl.StringVarP(&f.out, "out", "o", "", `Output file, "-" for stdout (default: next to the input)`)

	return c
}

// request builds the vectorize request from the preset, the image source and
// the flags that were set explicitly.
func (f *vectorizeFlags) request(cmd *cobra.Command, source string) (*vectorizer.VectorizeRequest, error) {
	req := &vectorizer.VectorizeRequest{}
	if f.preset != "" {
		p, err := preset.Load(f.preset)
		if err != nil {
			return nil, err
		}
		req = p
	}

	cache := imaging.NewImageCache()
	img, err := f.image(cache, source)
	if err != nil {
		return nil, err
	}
	req.Image = img

	changed := cmd.Flags().Changed
	if changed("mode") {
		req.Mode = vectorizer.Mode(f.mode)
	}
	if changed("format") {
		req.Output.FileFormat = vectorizer.FileFormat(f.format)
	}
	if changed("svg-version") {
		req.Output.SVGVersion = vectorizer.SVGVersion(f.svgVersion)
	}
	if changed("max-colors") {
		req.Processing.MaxColors = vectorizer.Int(f.maxColors)
	}
	if changed("input-max-pixels") {
		req.InputMaxPixels = vectorizer.Int(f.inputMaxPixels)
	}
	if changed("retention-days") {
		req.RetentionDays = vectorizer.Int(f.retentionDays)
	}

	switch {
	case f.palette != "" && f.autoPalette > 0:
		return nil, errors.New("--palette and --auto-palette are mutually exclusive")
	case f.palette != "":
		p, err := vectorizer.ParsePalette(f.palette)
		if err != nil {
			return nil, err
		}
		req.Processing.Palette = p
	case f.autoPalette > 0:
		if source == "" {
			return nil, errors.New("--auto-palette needs a local image")
		}
		p, err := suggestPalette(cache, source, f.autoPalette, f.minDistance)
		if err != nil {
			return nil, err
		}
		req.Processing.Palette = p
	}

	return req, nil
}

// image resolves the image source. A local file is cropped and downscaled
// first when --crop or --prepare-max-pixels ask for it.
func (f *vectorizeFlags) image(cache *imaging.ImageCache, source string) (vectorizer.Image, error) {
	img := vectorizer.Image{URL: f.url, Base64: f.base64, Token: f.token}
	if source == "" {
		if f.crop != "" || f.prepareMaxPixels > 0 {
			return img, errors.New("--crop and --prepare-max-pixels need a local image")
		}
		return img, nil
	}
	if !fileExists(source) {
		return img, errors.Errorf("image not found: %s", source)
	}

	if f.crop == "" && f.prepareMaxPixels <= 0 {
		local, err := vectorizer.ImageFromFile(source)
		if err != nil {
			return img, err
		}
		img.Data, img.Filename = local.Data, local.Filename
		return img, nil
	}

	opts := imaging.PrepareOptions{MaxPixels: f.prepareMaxPixels}
	if f.crop != "" {
		r, err := parseRegion(f.crop)
		if err != nil {
			return img, err
		}
		opts.Crop = &r
	}
	p, err := imaging.Prepare(cache, source, opts)
	if err != nil {
		return img, err
	}
	img.Data, img.Filename = p.Data, p.Filename
	return img, nil
}

func suggestPalette(cache *imaging.ImageCache, path string, count int, minDistance float64) (vectorizer.Palette, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	colors, err := imaging.SuggestPalette(img, count, minDistance)
	if err != nil {
		return nil, err
	}
	p := make(vectorizer.Palette, len(colors))
	for i, c := range colors {
		p[i] = vectorizer.PaletteEntry{Color: c}
	}
	return p, nil
}

// parseRegion parses "x1,y1,x2,y2".
func parseRegion(s string) (imaging.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return imaging.Region{}, fmt.Errorf("invalid region %q, want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Region{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		v[i] = n
	}
	return imaging.Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}
