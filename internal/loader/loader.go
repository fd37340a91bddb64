package loader

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/loads"
	"gopkg.in/yaml.v3"
)

// Format is a truss document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".csv":
		return CSV, nil
	}
	return "", fmt.Errorf("unsupported truss file %q (expected .json, .yaml, .yml or .csv)", path)
}

// LoadFromFile loads and validates a truss document
func LoadFromFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Decode parses and validates a document in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case CSV:
		d, err := decodeCSV(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		doc = *d
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// decodeCSV reads tagged rows:
//
//	node,<index>,<x>,<y>[,<fx>,<fy>[,<constraint>]]
//	bar,<index>,<init>,<end>
//	load,<node>,<case>,<fx>,<fy>
//	name,<text>
//
// Blank lines and lines starting with # are skipped. A header row whose
// first cell is "type" is ignored.
func decodeCSV(r io.Reader) (*Document, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	doc := &Document{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		p := fields{rec: rec, line: line}
		switch kind := strings.ToLower(strings.TrimSpace(rec[0])); kind {
		case "", "type":
			continue
		case "name":
			doc.Name = p.text(1)
		case "node":
			n := NodeRecord{
				Index:      p.integer(1),
				X:          p.number(2),
				Y:          p.number(3),
				FX:         p.optNumber(4),
				FY:         p.optNumber(5),
				Constraint: p.optText(6),
			}
			doc.Nodes = append(doc.Nodes, n)
		case "bar":
			doc.Bars = append(doc.Bars, BarRecord{Index: p.integer(1), Init: p.integer(2), End: p.integer(3)})
		case "load":
			doc.Loads = append(doc.Loads, loads.PointLoad{
				Node: p.integer(1),
				Case: loads.Case(p.text(2)),
				FX:   p.number(3),
				FY:   p.number(4),
			})
		default:
			return nil, invalid("line %d: unknown row type %q", line, kind)
		}
		if p.err != nil {
			return nil, p.err
		}
	}
	return doc, nil
}

// fields reads typed cells from a CSV record, keeping the first error.
type fields struct {
	rec  []string
	line int
	err  error
}

func (f *fields) cell(i int, required bool) (string, bool) {
	if i >= len(f.rec) || strings.TrimSpace(f.rec[i]) == "" {
		if required && f.err == nil {
			f.err = invalid("line %d: missing column %d", f.line, i+1)
		}
		return "", false
	}
	return strings.TrimSpace(f.rec[i]), true
}

func (f *fields) text(i int) string {
	s, _ := f.cell(i, true)
	return s
}

func (f *fields) optText(i int) string {
	s, _ := f.cell(i, false)
	return s
}

func (f *fields) integer(i int) int {
	s, ok := f.cell(i, true)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil && f.err == nil {
		f.err = invalid("line %d: column %d: %q is not an integer", f.line, i+1, s)
	}
	return v
}

func (f *fields) parseFloat(i int, required bool) float64 {
	s, ok := f.cell(i, required)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && f.err == nil {
		f.err = invalid("line %d: column %d: %q is not a number", f.line, i+1, s)
	}
	return v
}

func (f *fields) number(i int) float64 { return f.parseFloat(i, true) }
func (f *fields) optNumber(i int) float64 { return f.parseFloat(i, false) }
