package vectorizer

import (
	"fmt"
	"mime"
	"os"
)

var extensions = map[string]string{
	"image/svg+xml":          ".svg",
	"application/postscript": ".eps",
	"application/pdf":        ".pdf",
	"application/dxf":        ".dxf",
	"image/vnd.dxf":          ".dxf",
	"image/png":              ".png",
}

// Extension returns the file extension matching ContentType, including the
// dot, or "" when the type is unknown.
func (r *Result) Extension() string {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return ""
	}
	return extensions[mediaType]
}

// WriteFile writes Data to path.
func (r *Result) WriteFile(path string) error {
	if err := os.WriteFile(path, r.Data, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
