package geometry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a geometry file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// DetectFormat picks a format from the file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown geometry format %q (use json, yaml or toml)", s)
	}
}

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// document is the decoded shape of a geometry file. Pointer fields let
// missing keys be told apart from empty arrays.
type document struct {
	Reference *[]float64 `json:"reference" yaml:"reference"`
	XC        *[]float64 `json:"x_c" yaml:"x_c"`
	YC        *[]float64 `json:"y_c" yaml:"y_c"`
}

// tomlDocument is decoded with toml.MetaData tracking which keys are present.
type tomlDocument struct {
	Reference []float64 `toml:"reference"`
	XC        []float64 `toml:"x_c"`
	YC        []float64 `toml:"y_c"`
}

// encoded is the output shape shared by all formats.
type encoded struct {
	Reference []float64 `json:"reference" yaml:"reference,flow" toml:"reference"`
	XC        []float64 `json:"x_c" yaml:"x_c,flow" toml:"x_c"`
	YC        []float64 `json:"y_c" yaml:"y_c,flow" toml:"y_c"`
}

// Decode reads a geometry from r without validating it.
// Read failures return *ReadError; content failures return *ParseError.
func Decode(r io.Reader, format Format) (*Geometry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	g, err := decode(data, format)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return g, nil
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g *Geometry, format Format) error {
	doc := encoded{
		Reference: []float64{g.Reference[0], g.Reference[1]},
		XC:        nonNil(g.XC),
		YC:        nonNil(g.YC),
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unknown geometry format %q", format)
	}
}

func decode(data []byte, format Format) (*Geometry, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("unknown geometry format %q", format)
	}
}

func decodeJSON(data []byte) (*Geometry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after geometry document")
	}
	return doc.geometry()
}

func decodeYAML(data []byte) (*Geometry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.geometry()
}

func decodeTOML(data []byte) (*Geometry, error) {
	var raw tomlDocument
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	var doc document
	if meta.IsDefined("reference") {
		doc.Reference = &raw.Reference
	}
	if meta.IsDefined("x_c") {
		doc.XC = &raw.XC
	}
	if meta.IsDefined("y_c") {
		doc.YC = &raw.YC
	}
	return doc.geometry()
}

// geometry checks required fields and builds a Geometry.
func (d document) geometry() (*Geometry, error) {
	switch {
	case d.Reference == nil:
		return nil, errors.New("missing required field \"reference\"")
	case d.XC == nil:
		return nil, errors.New("missing required field \"x_c\"")
	case d.YC == nil:
		return nil, errors.New("missing required field \"y_c\"")
	}

	ref := *d.Reference
	if len(ref) != 2 {
		return nil, fmt.Errorf("field \"reference\" must hold exactly 2 numbers, got %d", len(ref))
	}

	fields := []struct {
		name string
		vals []float64
	}{
		{"reference", ref},
		{"x_c", *d.XC},
		{"y_c", *d.YC},
	}
	for _, f := range fields {
		if i := firstNonFinite(f.vals); i >= 0 {
			return nil, fmt.Errorf("field %q holds a non-finite value at index %d", f.name, i)
		}
	}

	return &Geometry{
		Reference: [2]float64{ref[0], ref[1]},
		XC:        nonNil(*d.XC),
		YC:        nonNil(*d.YC),
	}, nil
}

func firstNonFinite(vals []float64) int {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

func nonNil(vals []float64) []float64 {
	if vals == nil {
		return []float64{}
	}
	return vals
}
