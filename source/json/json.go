// Package json provides the encoding/json backed token source.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	eng "github.com/andyprasetya/geojson/internal/engine"
)

// NewReader wraps an io.Reader into an engine.TokenSource for JSON. Numbers
// are reported verbatim so no precision is lost before decoding.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return eng.NewTokenizer(dec, true)
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }
