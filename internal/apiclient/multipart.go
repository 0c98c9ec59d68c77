package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// File is one file part of a multipart upload
type File struct {
	Field       string
	Name        string
	ContentType string
	Reader      io.Reader
}

// MultipartForm is a multipart/form-data request body
type MultipartForm struct {
	Fields url.Values
	Files  []File
}

// HasFiles reports whether at least one file is attached
func (f *MultipartForm) HasFiles() bool {
	return f != nil && len(f.Files) > 0
}

// encode writes the form and returns the body and its content type
func (f *MultipartForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range f.Fields[k] {
			if err := mw.WriteField(k, v); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", k, err)
			}
		}
	}

	for _, file := range f.Files {
		if file.Reader == nil {
			return nil, "", fmt.Errorf("file %s has no content", file.Field)
		}
		part, err := createFilePart(mw, file)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", fmt.Errorf("failed to write file %s: %w", file.Field, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return buf, mw.FormDataContentType(), nil
}

func createFilePart(mw *multipart.Writer, file File) (io.Writer, error) {
	if file.ContentType == "" {
		return mw.CreateFormFile(file.Field, file.Name)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.Field), quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", file.ContentType)
	return mw.CreatePart(header)
}

// FormFromBody flattens a JSON-serializable body into form fields and attaches files.
// Scalars are written as text; arrays and objects are written as JSON; nulls are skipped.
func FormFromBody(body interface{}, files []File) (*MultipartForm, error) {
	form := &MultipartForm{Fields: url.Values{}, Files: files}
	if body == nil {
		return form, nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form body: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("form body must be an object: %w", err)
	}

	for k, v := range fields {
		switch val := v.(type) {
		case nil:
		case string:
			form.Fields.Set(k, val)
		case bool:
			form.Fields.Set(k, strconv.FormatBool(val))
		case float64:
			form.Fields.Set(k, strconv.FormatFloat(val, 'f', -1, 64))
		default:
			nested, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal field %s: %w", k, err)
			}
			form.Fields.Set(k, string(nested))
		}
	}
	return form, nil
}
