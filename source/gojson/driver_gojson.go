// Package gojson provides a geojson.JSONDriver backed by github.com/goccy/go-json.
package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	geojson "github.com/andyprasetya/geojson"
	eng "github.com/andyprasetya/geojson/internal/engine"
)

// Driver returns a geojson.JSONDriver backed by goccy/go-json.
func Driver() geojson.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) geojson.Source {
	return geojson.SourceFromEngine(NewReader(r), geojson.NumberJSONNumber)
}
func (driverGoJSON) NewBytes(b []byte) geojson.Source {
	return geojson.SourceFromEngine(NewBytes(b), geojson.NumberJSONNumber)
}
func (driverGoJSON) Name() string { return "go-json" }

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return eng.NewTokenizer(dec, true)
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }
