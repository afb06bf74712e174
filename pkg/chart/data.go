package chart

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Data holds chart rows, inline or from a file.
type Data struct {
	Values []map[string]any `toml:"values" json:"values,omitempty"`
	// File is a CSV or JSON file relative to the document.
	File string `toml:"file" json:"file,omitempty"`
	// Format overrides the format implied by the file extension.
	Format string `toml:"format" json:"format,omitempty"`
}

func (d Data) load(fsys fs.FS) ([]map[string]any, error) {
	raw, err := readFile(fsys, d.File)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(d.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(path.Ext(d.File)), ".")
	}
	switch format {
	case "csv":
		return ParseCSV(bytes.NewReader(raw))
	case "json":
		return ParseJSON(raw)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported data format %q for %s", format, d.File)
}

// readFile reads a document-relative file from fsys.
func readFile(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "file references are not allowed here: %s", name)
	}
	if err := errors.ValidatePath(name); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", name)
	}
	return data, nil
}

// ParseCSV reads rows from CSV with a header line. Cells that parse as
// numbers become float64, empty cells become nil and the rest stay strings.
func ParseCSV(r io.Reader) ([]map[string]any, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read csv header")
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows []map[string]any
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read csv")
		}
		row := make(map[string]any, len(header))
		for i, name := range header {
			row[name] = cell(rec[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// ParseJSON reads rows from a JSON array of objects.
func ParseJSON(data []byte) ([]map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json data")
	}
	return rows, nil
}
