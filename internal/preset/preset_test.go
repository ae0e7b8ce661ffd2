package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/vectorizer-go"
)

const sample = `
mode: test
input_max_pixels: 1000000
processing:
  max_colors: 8
  palette:
    - color: "#000000"
    - color: "#FFFFFF"
      map_to: "#FAFAFA"
      tolerance: 0.1
output:
  file_format: svg
  svg_version: svg_1_1
  svg_fixed_size: true
  curves:
    line_fit_tolerance: 0.5
  size:
    unit: mm
    width: 100
`

func TestParse(t *testing.T) {
	req, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if req.Mode != vectorizer.ModeTest {
		t.Errorf("Mode: got %q, want test", req.Mode)
	}
	if req.InputMaxPixels == nil || *req.InputMaxPixels != 1000000 {
		t.Errorf("InputMaxPixels: got %v, want 1000000", req.InputMaxPixels)
	}
	if req.Processing.MaxColors == nil || *req.Processing.MaxColors != 8 {
		t.Errorf("MaxColors: got %v, want 8", req.Processing.MaxColors)
	}
	if got := req.Processing.Palette.String(); got != "#000000; #FFFFFF -> #FAFAFA ~ 0.1;" {
		t.Errorf("Palette: got %q", got)
	}
	if req.Output.FileFormat != vectorizer.FormatSVG {
		t.Errorf("FileFormat: got %q, want svg", req.Output.FileFormat)
	}
	if req.Output.SVGFixedSize == nil || !*req.Output.SVGFixedSize {
		t.Error("SVGFixedSize: want true")
	}
	if req.Output.Curves.LineFitTolerance == nil || *req.Output.Curves.LineFitTolerance != 0.5 {
		t.Errorf("LineFitTolerance: got %v, want 0.5", req.Output.Curves.LineFitTolerance)
	}
	if req.Output.Size.Unit != vectorizer.UnitMm {
		t.Errorf("Size.Unit: got %q, want mm", req.Output.Size.Unit)
	}

	// The preset carries no image; adding one must make it valid.
	req.Image = vectorizer.Image{URL: "https://example.com/logo.png"}
	if err := req.Validate(); err != nil {
		t.Errorf("preset with image should validate: %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colours: 3\n"},
		{"wrong type", "input_max_pixels: many\n"},
		{"not a mapping", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse should fail")
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	req, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if req.Mode != "" || req.Output.FileFormat != "" {
		t.Errorf("empty preset should leave defaults, got %+v", req)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("mode: preview\n"), 0o644); err != nil {
		t.Fatalf("failed to write preset: %v", err)
	}

	req, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if req.Mode != vectorizer.ModePreview {
		t.Errorf("Mode: got %q, want preview", req.Mode)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
