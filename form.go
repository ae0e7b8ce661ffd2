package vectorizer

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"
)

// formField is one multipart form value.
type formField struct {
	Name  string
	Value string
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// encodeForm flattens v into form fields using the `form` struct tags, in
// field declaration order. Untagged struct fields are descended into. Nil
// pointers, empty strings and empty slices are skipped. Byte slices are
// skipped too; file parts are written separately.
func encodeForm(v any) []formField {
	var out []formField
	appendForm(&out, reflect.ValueOf(v))
	return out
}

func appendForm(out *[]formField, rv reflect.Value) {
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)

		name, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			if fv.Kind() == reflect.Struct {
				appendForm(out, fv)
			}
			continue
		}

		if value, ok := formValue(fv); ok {
			*out = append(*out, formField{Name: name, Value: value})
		}
	}
}

func formValue(fv reflect.Value) (string, bool) {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return "", false
		}
		fv = fv.Elem()
	}

	if fv.Type().Implements(stringerType) && fv.Kind() != reflect.String {
		if fv.Kind() == reflect.Slice && fv.Len() == 0 {
			return "", false
		}
		return fv.Interface().(fmt.Stringer).String(), true
	}

	switch fv.Kind() {
	case reflect.String:
		s := fv.String()
		return s, s != ""
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), true
	case reflect.Int, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// multipartBody writes fields, and the image file part when data is not
// empty, into a multipart/form-data body. It returns the body and its
// content type.
func multipartBody(fields []formField, fileField, filename string, data []byte) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("error writing %s field: %w", f.Name, err)
		}
	}

	if len(data) > 0 {
		if filename == "" {
			filename = "image"
		}
		part, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			return nil, "", fmt.Errorf("error creating form file: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, "", fmt.Errorf("error writing image data: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart writer: %w", err)
	}
	return &body, w.FormDataContentType(), nil
}
