// Package json is the JSON codec used for save data, backed by json-iterator.
//
// Numbers decode as json.Number so integer indices and 64-bit field values survive
// a round trip through untyped values.
package json

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Number is the untyped numeric value produced when decoding into any.
type Number = stdjson.Number

var api = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// API returns the frozen json-iterator configuration.
func API() jsoniter.API {
	return api
}

// Marshal encodes v.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent encodes v with indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
