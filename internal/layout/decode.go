package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a layout definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath guesses the format from a file extension. Unknown extensions
// are treated as YAML, which is a superset of JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode reads a single layout definition and validates its structure.
func Decode(r io.Reader, format Format) (*Node, error) {
	var root Node
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&root); err != nil {
			return nil, fmt.Errorf("decoding json layout: %w", err)
		}
	case FormatYAML, "":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil {
			return nil, fmt.Errorf("decoding yaml layout: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format %q", format)
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return &root, nil
}

// DecodeFile reads the layout definition at path.
func DecodeFile(path string) (*Node, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is a user-supplied layout file
	if err != nil {
		return nil, fmt.Errorf("opening layout: %w", err)
	}
	defer func() { _ = f.Close() }()

	root, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
