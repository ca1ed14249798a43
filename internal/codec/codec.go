// Package codec serializes entity collections to the backend's textual form.
//
// The encoding is canonical JSON. Optional fields are pointers or carry
// omitempty tags in the models, so absence and presence survive the round
// trip; decimal amounts marshal as exact strings.
package codec

import (
	"encoding/json"
	"fmt"
)

// Encode serializes v to the backend's textual representation.
func Encode[T any](v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %T: %w", v, err)
	}
	return string(data), nil
}

// Decode deserializes a backend value produced by Encode.
func Decode[T any](s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("decoding %T: %w", v, err)
	}
	return v, nil
}
