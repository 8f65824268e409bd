package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema/inputs.schema.json
var inputsSchema string

var schemaLoader = gojsonschema.NewStringLoader(inputsSchema)

// InputParser handles parsing of input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads inputs from a YAML, JSON or TOML file, chosen by extension
func (ip *InputParser) LoadFromFile(filename string) (*Inputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}
	return ip.Parse(data, format)
}

// FormatFromPath maps a file extension to an input format name
func FormatFromPath(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("unsupported input format %q (use .yaml, .json or .toml)", ext)
	}
}

// Parse decodes and validates inputs in the given format
func (ip *InputParser) Parse(data []byte, format string) (*Inputs, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	var in Inputs
	switch format {
	case "yaml":
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &in); err != nil {
				return nil, fmt.Errorf("failed to parse YAML: %w", err)
			}
		}
	case "json":
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}
	return &in, nil
}

func decodeDocument(data []byte, format string) (map[string]any, error) {
	doc := map[string]any{}
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// ValidateDocument checks a decoded document against the input schema
func (ip *InputParser) ValidateDocument(doc map[string]any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// ValidateInputs checks an in-memory Inputs value, e.g. one collected interactively
func (ip *InputParser) ValidateInputs(in Inputs) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}
	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode inputs: %w", err)
	}
	return ip.ValidateDocument(doc)
}
