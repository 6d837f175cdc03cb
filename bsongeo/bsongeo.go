// Package bsongeo stores GeoJSON objects as BSON documents.
//
// Documents are written with the GeoJSON members in their conventional order
// so MongoDB 2dsphere indexes and human readers see "type" first. Numbers are
// written as int64 when the value is integral in the source literal and as
// double otherwise; coordinates are always doubles.
package bsongeo

import (
	"encoding/json"
	"math"
	"strconv"

	geojson "github.com/andyprasetya/geojson"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToDocument renders v as an ordered BSON document.
func ToDocument(v geojson.GeoJSON) (bson.D, error) {
	obj, err := v.JSONObject()
	if err != nil {
		return nil, err
	}
	return toD(geojson.PlainNumbers(obj).(map[string]any)), nil
}

// Marshal renders v as raw BSON bytes.
func Marshal(v geojson.GeoJSON) ([]byte, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(doc)
}

// FromDocument dispatches a BSON document on its "type" member. Members the
// GeoJSON model does not know, such as "_id", are kept as foreign members
// with their BSON values.
func FromDocument(doc bson.D) (geojson.GeoJSON, error) {
	return FromDocumentAs(geojson.AnyCodec(), doc)
}

// FromDocumentAs decodes a BSON document into the model of c.
func FromDocumentAs[T geojson.GeoJSON](c geojson.Codec[T], doc bson.D) (T, error) {
	return geojson.DecodeTree(c, fromBSON(doc))
}

// Unmarshal decodes raw BSON bytes.
func Unmarshal(data []byte) (geojson.GeoJSON, error) {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, geojson.Issues{{Path: "/", Code: geojson.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return FromDocument(doc)
}

func toD(obj map[string]any) bson.D {
	doc := make(bson.D, 0, len(obj))
	for _, k := range geojson.OrderedKeys(obj) {
		doc = append(doc, bson.E{Key: k, Value: toBSON(obj[k])})
	}
	return doc
}

func toBSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return toD(t)
	case []any:
		arr := make(bson.A, len(t))
		for i, x := range t {
			arr[i] = toBSON(x)
		}
		return arr
	}
	return v
}

// fromBSON normalises a decoded BSON value into the generic value tree.
func fromBSON(v any) any {
	switch t := v.(type) {
	case bson.D:
		obj := make(map[string]any, len(t))
		for _, e := range t {
			obj[e.Key] = fromBSON(e.Value)
		}
		return obj
	case bson.M:
		obj := make(map[string]any, len(t))
		for k, x := range t {
			obj[k] = fromBSON(x)
		}
		return obj
	case bson.A:
		return fromArray(t)
	case []any:
		return fromArray(t)
	case int32:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return t
		}
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case primitive.Decimal128:
		s := t.String()
		if _, err := strconv.ParseFloat(s, 64); err == nil && !t.IsNaN() && t.IsInf() == 0 {
			return json.Number(s)
		}
		return t
	}
	return v
}

func fromArray(xs []any) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = fromBSON(x)
	}
	return out
}
