package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/vectorizer-go"
)

// resultInfo is printed after a vectorize or download call.
type resultInfo struct {
	Output            string  `json:"output"`
	ContentType       string  `json:"content_type"`
	Bytes             int     `json:"bytes"`
	ImageToken        string  `json:"image_token,omitempty"`
	Receipt           string  `json:"receipt,omitempty"`
	CreditsCalculated float64 `json:"credits_calculated"`
	CreditsCharged    float64 `json:"credits_charged"`
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResult stores res at out, or on w when out is "-". Metadata goes to
// w unless the data itself did.
func writeResult(w io.Writer, res *vectorizer.Result, out string) error {
	if out == "-" {
		_, err := w.Write(res.Data)
		return errors.Wrap(err, "failed to write result")
	}
	if err := res.WriteFile(out); err != nil {
		return err
	}
	return printJSON(w, resultInfo{
		Output:            out,
		ContentType:       res.ContentType,
		Bytes:             len(res.Data),
		ImageToken:        res.ImageToken,
		Receipt:           res.Receipt,
		CreditsCalculated: res.CreditsCalculated,
		CreditsCharged:    res.CreditsCharged,
	})
}

// outputPath picks where to write a result when --out is not given: next to
// the source image, or "<fallback><ext>" in the working directory.
func outputPath(out, source, fallback string, res *vectorizer.Result) string {
	if out != "" {
		return out
	}
	ext := res.Extension()
	if ext == "" {
		ext = ".bin"
	}
	if source == "" {
		return fallback + ext
	}
	base := strings.TrimSuffix(source, filepath.Ext(source))
	if base+ext == source {
		base += ".vectorized"
	}
	return base + ext
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
