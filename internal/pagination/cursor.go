// Package pagination encodes the opaque continuation tokens handed to clients.
//
// Two token shapes exist: lookup cursors carrying the last-seen row id and sort value
// (keyset pagination), and offset cursors carrying the number of rows already served.
// Both are base64 (URL alphabet) JSON and are rejected as a whole when anything is off.
package pagination

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCursor is returned for every token that cannot be decoded back into a cursor
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor identifies the last row of a keyset-paginated page
type Cursor struct {
	ID        string `json:"id"`
	SortValue string `json:"sortValue,omitempty"`
}

type offsetCursor struct {
	Skip *int `json:"skip"`
}

// Encode returns the opaque token for c
func Encode(c Cursor) string {
	return encode(c)
}

// Decode parses a token produced by Encode
func Decode(token string) (Cursor, error) {
	var c Cursor
	if err := decode(token, &c); err != nil {
		return Cursor{}, err
	}
	if c.ID == "" {
		return Cursor{}, fmt.Errorf("%w: missing id", ErrInvalidCursor)
	}
	return c, nil
}

// EncodeOffset returns the opaque token for an offset of skip rows
func EncodeOffset(skip int) string {
	if skip < 0 {
		skip = 0
	}
	return encode(offsetCursor{Skip: &skip})
}

// DecodeOffset parses a token produced by EncodeOffset
func DecodeOffset(token string) (int, error) {
	var c offsetCursor
	if err := decode(token, &c); err != nil {
		return 0, err
	}
	if c.Skip == nil {
		return 0, fmt.Errorf("%w: missing skip", ErrInvalidCursor)
	}
	if *c.Skip < 0 {
		return 0, fmt.Errorf("%w: negative skip", ErrInvalidCursor)
	}
	return *c.Skip, nil
}

func encode(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(jsonData)
}

func decode(token string, v any) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidCursor)
	}

	jsonData, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: bad encoding", ErrInvalidCursor)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: bad payload", ErrInvalidCursor)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidCursor)
	}

	return nil
}
