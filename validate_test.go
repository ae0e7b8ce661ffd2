package vectorizer

import (
	"errors"
	"strings"
	"testing"
)

func TestRequireOne(t *testing.T) {
	var nilPtr *int

	tests := []struct {
		name    string
		values  []any
		wantErr bool
	}{
		{"first set", []any{"a", ""}, false},
		{"last set", []any{"", []byte{1}}, false},
		{"pointer set", []any{nilPtr, Int(0)}, false},
		{"all empty", []any{"", []byte(nil), nilPtr, nil}, true},
		{"no values", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOne([]string{"a", "b"}, tt.values...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Error("should match ErrInvalidParameter")
				}
				if !strings.Contains(err.Error(), "either a, b must be provided") {
					t.Errorf("message: got %q", err.Error())
				}
			}
		})
	}
}

func TestValidateOption(t *testing.T) {
	if err := ValidateOption("output.file_format", FormatPDF, FormatSVG, FormatPDF); err != nil {
		t.Errorf("allowed value rejected: %v", err)
	}

	err := ValidateOption("output.file_format", FileFormat("gif"), FormatSVG, FormatPDF)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err: got %v", err)
	}
	want := "output.file_format invalid value gif, must be one of: svg, pdf"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("message: got %q, want it to contain %q", err.Error(), want)
	}

	if err := ValidateOption("count", 3, 1, 2); err == nil {
		t.Error("int option outside the set accepted")
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"int low bound", ValidateRange("n", 0, 0, 256), false},
		{"int high bound", ValidateRange("n", 256, 0, 256), false},
		{"int above", ValidateRange("n", 257, 0, 256), true},
		{"int below", ValidateRange("n", -1, 0, 256), true},
		{"float inside", ValidateRange("f", 0.5, 0.0, 1.0), false},
		{"float above", ValidateRange("f", 1.01, 0.0, 1.0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Errorf("err: got %v, wantErr %v", tt.err, tt.wantErr)
			}
		})
	}

	err := ValidateRange("processing.max_colors", 300, 0, 256)
	if !strings.Contains(err.Error(), "invalid value 300, valid range is 0 to 256") {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestValidateHex(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{"#000000", false},
		{"#aBcDeF", false},
		{"#FFF", true},
		{"000000", true},
		{"#0000000", true},
		{"#GGGGGG", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			err := ValidateHex("color", tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHex(%q): got %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStruct_FieldNames(t *testing.T) {
	req := &VectorizeRequest{
		Image: Image{Token: "t"},
		Mode:  "free",
		Output: OutputOptions{
			FileFormat: "gif",
			Size:       SizeOptions{AlignX: Float(2)},
		},
		Processing: ProcessingOptions{MaxColors: Int(-1)},
	}

	err := req.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	got := map[string]string{}
	for _, f := range ve.Fields {
		got[f.Field] = f.Message
	}
	want := map[string]string{
		"mode":                  "must be one of: production, preview, test, test_preview",
		"output.file_format":    "must be one of: svg, eps, pdf, dxf, png",
		"output.size.align_x":   "must not exceed 1",
		"processing.max_colors": "must be at least 0",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
	if len(ve.Fields) != len(want) {
		t.Errorf("got %d field errors, want %d: %v", len(ve.Fields), len(want), ve.Fields)
	}
}

func TestValidateStruct_ExplicitZero(t *testing.T) {
	// A non-nil pointer is always range checked, even when it holds zero.
	req := &VectorizeRequest{Image: Image{Token: "t"}, InputMaxPixels: Int(0)}
	if err := req.Validate(); err == nil {
		t.Fatal("input.max_pixels=0 accepted")
	}

	req = &VectorizeRequest{Image: Image{Token: "t"}, Processing: ProcessingOptions{MaxColors: Int(0)}}
	if err := req.Validate(); err != nil {
		t.Errorf("processing.max_colors=0 rejected: %v", err)
	}
}
