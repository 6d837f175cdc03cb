package geojson

import (
	"encoding/json"
	"math"
)

// Position is one coordinate tuple: longitude, latitude, then optional
// altitude and further values. Arity is not fixed; callers agree on a
// convention.
type Position []float64

// Bbox is a flat bounding box such as [west, south, east, north]. Its length
// is not checked against the dimensionality of the coordinates.
type Bbox []float64

// DecodePosition converts a JSON array of numbers into a Position.
func DecodePosition(v any) (Position, error) { return decodePosition(v, RootPath()) }

// EncodePosition is the inverse of DecodePosition.
func EncodePosition(pos Position) []any { return encodeNumbers(pos) }

func decodePosition(v any, p PathRef) (Position, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fail(p, CodeExpectedArrayValue)
	}
	pos := make(Position, len(arr))
	for i, item := range arr {
		f, ok := expectF64(item)
		if !ok {
			return nil, fail(p.Index(i), CodeExpectedF64Value)
		}
		pos[i] = f
	}
	return pos, nil
}

func encodeNumbers(xs []float64) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// expectF64 accepts every numeric representation a JSON tree may carry:
// json.Number from the token drivers, float64 from encoding/json defaults,
// and integer kinds from YAML/BSON front-ends or hand-built trees.
func expectF64(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
