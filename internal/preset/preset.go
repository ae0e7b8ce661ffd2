// Package preset reads vectorize options from YAML files so that a set of
// options can be reused across runs.
//
//	mode: test
//	processing:
//	  max_colors: 8
//	  palette:
//	    - color: "#000000"
//	    - color: "#FFFFFF"
//	      tolerance: 0.1
//	output:
//	  file_format: svg
//	  svg_version: svg_1_1
//	  size:
//	    unit: mm
//	    width: 100
//
// Keys mirror the Go field names of vectorizer.VectorizeRequest in
// snake_case. Unknown keys are rejected.
package preset

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/vectorizer-go"
)

// Load reads the preset at path.
func Load(path string) (*vectorizer.VectorizeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read preset %s", path)
	}
	req, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "preset %s", path)
	}
	return req, nil
}

// Parse decodes a YAML preset. An empty document yields an empty request.
func Parse(data []byte) (*vectorizer.VectorizeRequest, error) {
	req := &vectorizer.VectorizeRequest{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(req); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "invalid YAML")
	}
	return req, nil
}
