package geojson

import (
	"encoding/json"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON encodes g as a GeoJSON geometry object.
func (g Geometry) MarshalJSON() ([]byte, error) { return marshalObject(&g) }

// UnmarshalJSON decodes a GeoJSON geometry object into g.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	v, err := ParseGeometry(data)
	if err != nil {
		return err
	}
	*g = *v
	return nil
}

// MarshalYAML renders g as a YAML mapping.
func (g Geometry) MarshalYAML() (any, error) { return yamlObject(&g) }

// MarshalJSON encodes f as a GeoJSON feature object.
func (f Feature) MarshalJSON() ([]byte, error) { return marshalObject(&f) }

// UnmarshalJSON decodes a GeoJSON feature object into f.
func (f *Feature) UnmarshalJSON(data []byte) error {
	v, err := ParseFeature(data)
	if err != nil {
		return err
	}
	*f = *v
	return nil
}

// MarshalYAML renders f as a YAML mapping.
func (f Feature) MarshalYAML() (any, error) { return yamlObject(&f) }

// MarshalJSON encodes fc as a GeoJSON feature collection.
func (fc FeatureCollection) MarshalJSON() ([]byte, error) { return marshalObject(&fc) }

// UnmarshalJSON decodes a GeoJSON feature collection into fc.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	v, err := ParseFeatureCollection(data)
	if err != nil {
		return err
	}
	*fc = *v
	return nil
}

// MarshalYAML renders fc as a YAML mapping.
func (fc FeatureCollection) MarshalYAML() (any, error) { return yamlObject(&fc) }

func marshalObject(v GeoJSON) ([]byte, error) {
	obj, err := v.JSONObject()
	if err != nil {
		return nil, err
	}
	return gojson.Marshal(obj)
}

func yamlObject(v GeoJSON) (any, error) {
	obj, err := v.JSONObject()
	if err != nil {
		return nil, err
	}
	return PlainNumbers(obj), nil
}

// PlainNumbers returns a copy of a value tree in which every json.Number is
// replaced by an int64 (when the literal is an integer that fits) or a
// float64, for encoders that do not understand json.Number.
func PlainNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = PlainNumbers(x)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = PlainNumbers(x)
		}
		return out
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return s
	default:
		return v
	}
}
