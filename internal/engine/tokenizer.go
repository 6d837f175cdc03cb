package engine

import (
	"encoding/json"
	"io"
	"strconv"
)

// Decoder is the streaming token API shared by encoding/json and
// github.com/goccy/go-json (whose Token and Delim alias the standard ones).
type Decoder interface {
	Token() (json.Token, error)
	InputOffset() int64
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Tokenizer adapts a Decoder into a TokenSource, telling object keys apart
// from string values.
type Tokenizer struct {
	dec        Decoder
	stack      []frame
	lastOffset int64
	// noOffset makes Location report -1 for decoders whose offsets are not
	// meaningful.
	noOffset bool
}

// NewTokenizer wraps dec. When trackOffset is false Location always reports -1.
func NewTokenizer(dec Decoder, trackOffset bool) *Tokenizer {
	return &Tokenizer{dec: dec, lastOffset: -1, noOffset: !trackOffset}
}

// NextToken returns the next classified token or io.EOF at end of input.
func (t *Tokenizer) NextToken() (Token, error) {
	tok, err := t.dec.Token()
	if err != nil {
		return Token{}, err
	}
	if !t.noOffset {
		t.lastOffset = t.dec.InputOffset()
	}
	off := t.lastOffset

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			t.stack = append(t.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject, Offset: off}, nil
		case '}':
			t.pop()
			return Token{Kind: KindEndObject, Offset: off}, nil
		case '[':
			t.stack = append(t.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray, Offset: off}, nil
		case ']':
			t.pop()
			return Token{Kind: KindEndArray, Offset: off}, nil
		}
	case string:
		if n := len(t.stack); n > 0 {
			top := &t.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v, Offset: off}, nil
			}
		}
		t.valueDone()
		return Token{Kind: KindString, String: v, Offset: off}, nil
	case bool:
		t.valueDone()
		return Token{Kind: KindBool, Bool: v, Offset: off}, nil
	case json.Number:
		t.valueDone()
		return Token{Kind: KindNumber, Number: string(v), Offset: off}, nil
	case float64:
		t.valueDone()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	case nil:
		t.valueDone()
		return Token{Kind: KindNull, Offset: off}, nil
	}
	return Token{}, io.ErrUnexpectedEOF
}

// Location reports the byte offset after the last token, or -1.
func (t *Tokenizer) Location() int64 { return t.lastOffset }

func (t *Tokenizer) pop() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
	t.valueDone()
}

// valueDone marks the pending member value of the enclosing object as read.
func (t *Tokenizer) valueDone() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
