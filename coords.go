package geojson

// Coordinate arrays nest positions one (MultiPoint, LineString), two
// (MultiLineString, Polygon) or three (MultiPolygon) levels deep. Each level
// is the same array walk applied to the level below it.

func decodeArray[T any](v any, p PathRef, elem func(any, PathRef) (T, error)) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fail(p, CodeExpectedArrayValue)
	}
	out := make([]T, 0, len(arr))
	for i, item := range arr {
		x, err := elem(item, p.Index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

func encodeArray[T any](xs []T, elem func(T) any) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = elem(x)
	}
	return out
}

func decodePositions1(v any, p PathRef) ([]Position, error) {
	return decodeArray(v, p, decodePosition)
}

func decodePositions2(v any, p PathRef) ([][]Position, error) {
	return decodeArray(v, p, decodePositions1)
}

func decodePositions3(v any, p PathRef) ([][][]Position, error) {
	return decodeArray(v, p, decodePositions2)
}

func encodePosition(pos Position) any { return encodeNumbers(pos) }

func encodePositions1(ps []Position) any { return encodeArray(ps, encodePosition) }

func encodePositions2(ps [][]Position) any { return encodeArray(ps, encodePositions1) }

func encodePositions3(ps [][][]Position) any { return encodeArray(ps, encodePositions2) }
