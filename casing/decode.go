package casing

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/erraggy/chatutil/chaterrors"
	"github.com/mitchellh/mapstructure"
	"go.yaml.in/yaml/v4"
)

// DecodeJSON decodes a single JSON document and returns it with its keys
// converted by ConvertKeys. Numbers are decoded as json.Number so that
// 64-bit snowflake IDs survive without float rounding.
func DecodeJSON(data []byte, opts ...Option) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &chaterrors.DecodeError{Format: "json", Message: "decoding payload", Cause: err}
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, &chaterrors.DecodeError{Format: "json", Message: "unexpected data after top-level value"}
	}
	return ConvertKeys(v, opts...), nil
}

// DecodeYAML decodes a YAML document and returns it with its keys
// converted by ConvertKeys. An empty document decodes to nil.
func DecodeYAML(data []byte, opts ...Option) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &chaterrors.DecodeError{Format: "yaml", Message: "decoding payload", Cause: err}
	}
	return ConvertKeys(v, opts...), nil
}

// DecodeInto converts the keys of src with ConvertKeys and decodes the
// result into dst, which must be a non-nil pointer. Struct fields are
// matched by their json tag (falling back to a case-insensitive field name
// match), and scalar types are converted weakly, so json.Number and numeric
// strings decode into integer fields.
//
// Example:
//
//	var member struct {
//	    UserID   string `json:"userId"`
//	    JoinedAt string `json:"joinedAt"`
//	}
//	err := casing.DecodeInto(payload, &member)
func DecodeInto(src any, dst any, opts ...Option) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return &chaterrors.DecodeError{Format: "struct", Message: "invalid destination", Cause: err}
	}
	if err := dec.Decode(ConvertKeys(src, opts...)); err != nil {
		return &chaterrors.DecodeError{Format: "struct", Message: "mapping payload", Cause: err}
	}
	return nil
}
