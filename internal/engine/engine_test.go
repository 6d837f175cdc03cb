package engine

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func tokens(s string) *Tokenizer {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	return NewTokenizer(dec, true)
}

func decodeTree(ts TokenSource) (any, error) { return DecodeAnyWithConv(ts, JSONNumber) }

func TestTokenizer_Kinds(t *testing.T) {
	ts := tokens(`{"a":["x",1,true,null],"b":{}}`)
	want := []Kind{
		KindBeginObject, KindKey, KindBeginArray, KindString, KindNumber, KindBool, KindNull, KindEndArray,
		KindKey, KindBeginObject, KindEndObject, KindEndObject,
	}
	for i, k := range want {
		tok, err := ts.NextToken()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != k {
			t.Fatalf("token %d: kind %d want %d", i, tok.Kind, k)
		}
	}
	if _, err := ts.NextToken(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if ts.Location() <= 0 {
		t.Fatalf("offset not tracked")
	}
}

func TestTokenizer_NoOffset(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`[1]`))
	ts := NewTokenizer(dec, false)
	if _, err := ts.NextToken(); err != nil {
		t.Fatal(err)
	}
	if ts.Location() != -1 {
		t.Fatalf("expected -1, got %d", ts.Location())
	}
}

func TestDecodeAny(t *testing.T) {
	v, err := decodeTree(tokens(`{"type":"Point","coordinates":[1.5,-2],"x":{"y":[null,false]}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"type":        "Point",
		"coordinates": []any{json.Number("1.5"), json.Number("-2")},
		"x":           map[string]any{"y": []any{nil, false}},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v", v)
	}

	v, err = DecodeAnyWithConv(tokens(`[1.5,2]`), Float64)
	if err != nil || !reflect.DeepEqual(v, []any{1.5, 2.0}) {
		t.Fatalf("float64 mode: %#v %v", v, err)
	}

	v, err = decodeTree(tokens(`[]`))
	if err != nil || !reflect.DeepEqual(v, []any{}) {
		t.Fatalf("empty array must be non-nil: %#v %v", v, err)
	}
}

func TestDecodeAny_Truncated(t *testing.T) {
	for _, s := range []string{``, `{`, `{"a":`, `[1,`} {
		_, err := decodeTree(tokens(s))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("%q: expected ErrUnexpectedEOF, got %v", s, err)
		}
	}
}

func TestEnforcement_Depth(t *testing.T) {
	ts := WrapWithEnforcement(tokens(`{"features":[{"geometry":{}}]}`), EnforceOptions{MaxDepth: 3})
	_, err := decodeTree(ts)
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != "parse_error" || ie.Path != "/features/0/geometry" {
		t.Fatalf("got %+v", ie.SimpleIssue)
	}
}

func TestEnforcement_Duplicates(t *testing.T) {
	var sunk []SimpleIssue
	opt := EnforceOptions{OnDuplicate: DupWarn, IssueSink: func(si SimpleIssue) { sunk = append(sunk, si) }}
	v, err := decodeTree(WrapWithEnforcement(tokens(`[{"k":1,"k":2}]`), opt))
	if err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(sunk) != 1 || sunk[0].Path != "/0/k" {
		t.Fatalf("sunk: %v", sunk)
	}
	if !reflect.DeepEqual(v, []any{map[string]any{"k": json.Number("2")}}) {
		t.Fatalf("got %#v", v)
	}

	opt.OnDuplicate = DupError
	sunk = nil
	_, err = decodeTree(WrapWithEnforcement(tokens(`{"a":{"k":1,"k":2}}`), opt))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "duplicate_key" || ie.Path != "/a/k" {
		t.Fatalf("got %v", err)
	}
	if len(sunk) != 1 {
		t.Fatalf("fatal issue should also reach the sink: %v", sunk)
	}
}

func TestEnforcement_KeysInSiblingObjects(t *testing.T) {
	opt := EnforceOptions{OnDuplicate: DupError}
	_, err := decodeTree(WrapWithEnforcement(tokens(`[{"k":1},{"k":2}]`), opt))
	if err != nil {
		t.Fatalf("keys in different objects are not duplicates: %v", err)
	}
}

func TestEnforcement_MaxBytes(t *testing.T) {
	ts := WrapWithEnforcement(tokens(`{"type":"Point","coordinates":[0,0]}`), EnforceOptions{MaxBytes: 10})
	_, err := decodeTree(ts)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("got %v", err)
	}
}

func TestEnforceOptions_Disabled(t *testing.T) {
	if !(EnforceOptions{}).Disabled() {
		t.Fatalf("zero options should be disabled")
	}
	if (EnforceOptions{MaxDepth: 1}).Disabled() {
		t.Fatalf("depth limit is not disabled")
	}
}

func TestDetectDuplicateKeys(t *testing.T) {
	iss, err := DetectDuplicateKeys(tokens(`{"a":1,"a":2,"b":{"c":1,"c":2}}`), DupWarn, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(iss) != 2 || iss[0].Path != "/a" || iss[1].Path != "/b/c" {
		t.Fatalf("got %v", iss)
	}

	iss, _ = DetectDuplicateKeys(tokens(`{"a":1,"a":2}`), DupIgnore, -1)
	if len(iss) != 0 {
		t.Fatalf("ignore: %v", iss)
	}

	iss, _ = DetectDuplicateKeys(tokens(`{"a" 1}`), DupWarn, -1)
	if len(iss) != 1 || iss[0].Code != "parse_error" {
		t.Fatalf("syntax error: %v", iss)
	}
}

func TestJoinJSONPointer(t *testing.T) {
	if got := joinJSONPointer("/properties", "a/b~"); got != "/properties/a~1b~0" {
		t.Fatalf("got %s", got)
	}
}
