package casing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Format identifies the serialization of a payload.
type Format string

const (
	// FormatUnknown is returned for empty or whitespace-only input.
	FormatUnknown Format = "unknown"
	// FormatJSON indicates a JSON document.
	FormatJSON Format = "json"
	// FormatYAML indicates a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format. The empty string selects
// FormatUnknown, which Decode treats as "detect from content".
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatUnknown:
		return FormatUnknown, nil
	case FormatJSON, FormatYAML:
		return Format(name), nil
	}
	return FormatUnknown, fmt.Errorf("casing: invalid format %q: must be one of: %s, %s", name, FormatJSON, FormatYAML)
}

// DetectFormat reports the format of data. JSON objects and arrays start
// with '{' or '['; anything else non-empty is assumed to be YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// Decode decodes data as format f, or as the result of DetectFormat when f
// is FormatUnknown, and converts its keys. It returns the format that was
// used. Empty input decodes to nil as YAML.
func Decode(data []byte, f Format, opts ...Option) (any, Format, error) {
	if f == FormatUnknown {
		f = DetectFormat(data)
	}
	if f == FormatJSON {
		v, err := DecodeJSON(data, opts...)
		return v, FormatJSON, err
	}
	v, err := DecodeYAML(data, opts...)
	return v, FormatYAML, err
}

// Marshal encodes v in format f. JSON is indented with two spaces.
// Values produced by DecodeJSON should be marshaled back as JSON, since
// json.Number is a string type to YAML.
func Marshal(v any, f Format) ([]byte, error) {
	if f == FormatJSON {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}
