package survey

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/pulse.json
var defaultJSON []byte

// Format is the encoding of a definition document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the document format from a file extension.
// Anything that is not .yaml/.yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var (
	defaultOnce sync.Once
	defaultDef  *Definition
)

// Default returns the built-in pulse-check survey. The embedded document is
// validated by tests; a broken build panics here rather than serving a
// half-loaded survey.
func Default() *Definition {
	defaultOnce.Do(func() {
		d, err := Parse(defaultJSON, FormatJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded survey definition: %v", err))
		}
		defaultDef = d
	})
	return defaultDef
}

// Load reads and validates a definition file. An empty path yields Default.
func Load(path string) (*Definition, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey definition: %w", err)
	}
	d, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes, schema-checks and semantically validates a definition.
func Parse(data []byte, format Format) (*Definition, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var d Definition
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return New(d)
}

// toJSON normalises a YAML document to JSON so that both formats share the
// schema and decoding path.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert YAML to JSON: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown definition format %q", format)
	}
}
