package geojson

import (
	"encoding/json"
	"reflect"
	"testing"
)

func jn(s string) json.Number { return json.Number(s) }

func TestDecodePositions_Depths(t *testing.T) {
	p := RootPath()
	ring := []any{[]any{jn("0"), jn("0")}, []any{jn("1"), jn("0")}, []any{jn("0"), jn("0")}}

	d1, err := decodePositions1(ring, p)
	if err != nil {
		t.Fatalf("d1: %v", err)
	}
	if want := []Position{{0, 0}, {1, 0}, {0, 0}}; !reflect.DeepEqual(d1, want) {
		t.Fatalf("d1: got %v", d1)
	}

	d2, err := decodePositions2([]any{ring, ring}, p)
	if err != nil || len(d2) != 2 || len(d2[1]) != 3 {
		t.Fatalf("d2: %v %v", d2, err)
	}

	d3, err := decodePositions3([]any{[]any{ring}}, p)
	if err != nil || len(d3) != 1 || len(d3[0]) != 1 || len(d3[0][0]) != 3 {
		t.Fatalf("d3: %v %v", d3, err)
	}
}

func TestDecodePositions_EmptyLevels(t *testing.T) {
	d3, err := decodePositions3([]any{}, RootPath())
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if d3 == nil || len(d3) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", d3)
	}
}

func TestDecodePositions_FirstErrorWins(t *testing.T) {
	p := RootPath().Field("coordinates")
	in := []any{
		[]any{[]any{jn("0"), jn("0")}, []any{jn("1"), "x"}},
		"not an array",
	}
	_, err := decodePositions2(in, p)
	iss, ok := AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != CodeExpectedF64Value || iss[0].Path != "/coordinates/0/1/1" {
		t.Fatalf("got %s at %s", iss[0].Code, iss[0].Path)
	}
}

func TestDecodePositions_WrongDepth(t *testing.T) {
	_, err := decodePositions3([]any{[]any{jn("1"), jn("2")}}, RootPath())
	iss, _ := AsIssues(err)
	if len(iss) != 1 || iss[0].Code != CodeExpectedArrayValue || iss[0].Path != "/0/0" {
		t.Fatalf("got %v", err)
	}
	_, err = decodePositions1(map[string]any{}, RootPath())
	if !HasCode(err, CodeExpectedArrayValue) {
		t.Fatalf("got %v", err)
	}
}

func TestEncodePositions_Mirror(t *testing.T) {
	in := [][][]Position{{{{1, 2}, {3, 4}}}, {}}
	enc := encodePositions3(in)
	want := []any{
		[]any{[]any{[]any{1.0, 2.0}, []any{3.0, 4.0}}},
		[]any{},
	}
	if !reflect.DeepEqual(enc, want) {
		t.Fatalf("got %#v", enc)
	}
	back, err := decodePositions3(enc, RootPath())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(back, [][][]Position{{{{1, 2}, {3, 4}}}, {}}) {
		t.Fatalf("round trip: %v", back)
	}
}
