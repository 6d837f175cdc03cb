// Package engine turns JSON token streams into the generic value tree
// (map[string]any, []any, json.Number or float64, string, bool, nil) consumed
// by the GeoJSON decoders.
package engine

import (
	"encoding/json"
	"io"
	"strconv"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// NumberConv converts the literal text of a JSON number into a tree value.
type NumberConv func(string) (any, error)

// JSONNumber keeps numbers as json.Number so no precision is lost before the
// decoders see them.
func JSONNumber(s string) (any, error) { return json.Number(s), nil }

// Float64 decodes numbers eagerly as float64.
func Float64(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DecodeAnyWithConv reads exactly one JSON value from src.
func DecodeAnyWithConv(src TokenSource, conv NumberConv) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	b := builder{src: src, conv: conv}
	return b.value(tok)
}

type builder struct {
	src  TokenSource
	conv NumberConv
}

func (b *builder) next() (Token, error) {
	tok, err := b.src.NextToken()
	if err == io.EOF {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (b *builder) value(tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return b.object()
	case KindBeginArray:
		return b.array()
	case KindString:
		return tok.String, nil
	case KindNumber:
		return b.conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (b *builder) object() (any, error) {
	m := make(map[string]any)
	for {
		tok, err := b.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := b.next()
		if err != nil {
			return nil, err
		}
		v, err := b.value(vt)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func (b *builder) array() (any, error) {
	arr := []any{}
	for {
		tok, err := b.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := b.value(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
