package geometry

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
)

// Read loads and decodes the geometry file at path without validating it.
// The format is chosen from the file extension.
func Read(path string) (*Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	format := DetectFormat(path)
	slog.Debug("decoding geometry",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("bytes", len(data)))

	g, err := decode(data, format)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}
	return g, nil
}

// Load reads the geometry file at path and validates it.
// Validation failures are returned as the *InvalidGeometryError itself.
func Load(path string) (*Geometry, error) {
	g, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(g); err != nil {
		slog.Debug("geometry rejected", slog.String("path", path), slog.String("rule", ruleOf(err)))
		return nil, err
	}
	return g, nil
}

// Write encodes g into a new file at path, replacing any existing file.
func Write(path string, g *Geometry, format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g, format); err != nil {
		return fmt.Errorf("encode geometry as %s: %w", format, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write geometry file %s: %w", path, err)
	}
	return nil
}

func ruleOf(err error) string {
	if ie, ok := err.(*InvalidGeometryError); ok {
		return ie.Rule.String()
	}
	return ""
}
