package geojson

import (
	"encoding/json"
	"strconv"
)

// ID is a feature identifier: either a string or a number.
type ID struct {
	str   string
	num   json.Number
	isNum bool
}

// StringID returns a string identifier.
func StringID(s string) ID { return ID{str: s} }

// NumberID returns a numeric identifier holding the literal n.
func NumberID(n json.Number) ID { return ID{num: n, isNum: true} }

// IntID returns a numeric identifier for an integer.
func IntID(n int64) ID { return NumberID(json.Number(strconv.FormatInt(n, 10))) }

// IsNumber reports whether id is numeric.
func (id ID) IsNumber() bool { return id.isNum }

// Number returns the numeric literal; ok is false for string identifiers.
func (id ID) Number() (n json.Number, ok bool) { return id.num, id.isNum }

// String returns the identifier as text (the literal for numbers).
func (id ID) String() string {
	if id.isNum {
		return id.num.String()
	}
	return id.str
}

// MarshalJSON encodes a number or a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isNum {
		return []byte(id.num), nil
	}
	return json.Marshal(id.str)
}

func (id ID) value() any {
	if id.isNum {
		return id.num
	}
	return id.str
}

// numberLiteral renders a numeric tree value as a json.Number.
func numberLiteral(v any) (json.Number, bool) {
	switch n := v.(type) {
	case json.Number:
		return n, true
	case int:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(n, 10)), true
	}
	f, ok := expectF64(v)
	if !ok {
		return "", false
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), true
}

// Feature is a GeoJSON feature. A nil Geometry encodes as "geometry": null
// and nil Properties as "properties": null.
type Feature struct {
	BBox           Bbox
	Geometry       *Geometry
	ID             *ID
	Properties     Object
	ForeignMembers Object
}

// NewFeature returns a Feature holding g and no properties.
func NewFeature(g *Geometry) *Feature { return &Feature{Geometry: g} }

// Type always returns TypeFeature.
func (*Feature) Type() Type { return TypeFeature }

// JSONObject encodes f into the generic value tree.
func (f *Feature) JSONObject() (Object, error) { return encodeFeature(f, RootPath()) }

// Property returns the named property and whether it is set.
func (f *Feature) Property(key string) (any, bool) {
	v, ok := f.Properties[key]
	return v, ok
}

// ContainsProperty reports whether the named property is set.
func (f *Feature) ContainsProperty(key string) bool {
	_, ok := f.Properties[key]
	return ok
}

// SetProperty sets a property, creating the properties object if needed.
func (f *Feature) SetProperty(key string, value any) {
	if f.Properties == nil {
		f.Properties = Object{}
	}
	f.Properties[key] = value
}

// RemoveProperty deletes a property and returns its previous value.
func (f *Feature) RemoveProperty(key string) (any, bool) {
	v, ok := f.Properties[key]
	if ok {
		delete(f.Properties, key)
	}
	return v, ok
}

// PropertiesLen returns the number of properties.
func (f *Feature) PropertiesLen() int { return len(f.Properties) }

// DecodeFeature builds a Feature from obj, consuming it the way
// DecodeGeometry does.
func DecodeFeature(obj Object) (*Feature, error) { return decodeFeature(obj, RootPath()) }

// EncodeFeature is the inverse of DecodeFeature.
func EncodeFeature(f *Feature) (Object, error) { return encodeFeature(f, RootPath()) }

func decodeFeature(obj Object, p PathRef) (*Feature, error) {
	tag, err := expectType(obj, p)
	if err != nil {
		return nil, err
	}
	if tag != string(TypeFeature) {
		return nil, failType(p, string(TypeFeature), tag)
	}
	geom, err := requiredGeometry(obj, p)
	if err != nil {
		return nil, err
	}
	props, err := requiredProperties(obj, p)
	if err != nil {
		return nil, err
	}
	id, err := optionalID(obj, p)
	if err != nil {
		return nil, err
	}
	bbox, err := optionalBbox(obj, p)
	if err != nil {
		return nil, err
	}
	return &Feature{
		BBox:           bbox,
		Geometry:       geom,
		ID:             id,
		Properties:     props,
		ForeignMembers: foreignMembers(obj),
	}, nil
}

func encodeFeature(f *Feature, p PathRef) (Object, error) {
	if f == nil {
		return nil, failType(p, string(TypeFeature), "")
	}
	obj := Object{"type": string(TypeFeature)}
	if f.Geometry != nil {
		g, err := encodeGeometry(f.Geometry, p.Field("geometry"))
		if err != nil {
			return nil, err
		}
		obj["geometry"] = g
	} else {
		obj["geometry"] = nil
	}
	if f.Properties != nil {
		obj["properties"] = cloneValue(f.Properties)
	} else {
		obj["properties"] = nil
	}
	if f.ID != nil {
		obj["id"] = f.ID.value()
	}
	if f.BBox != nil {
		obj["bbox"] = encodeNumbers(f.BBox)
	}
	if err := spliceForeignMembers(obj, f.ForeignMembers, featureMembers, p); err != nil {
		return nil, err
	}
	return obj, nil
}
