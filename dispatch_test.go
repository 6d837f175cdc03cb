package geojson_test

import (
	"encoding/json"
	"reflect"
	"testing"

	geojson "github.com/andyprasetya/geojson"
)

func mustParse(t *testing.T, doc string) geojson.GeoJSON {
	t.Helper()
	v, err := geojson.ParseString(doc)
	if err != nil {
		t.Fatalf("parse %s: %v", doc, err)
	}
	return v
}

func issueOf(t *testing.T, err error) geojson.Issue {
	t.Helper()
	iss, ok := geojson.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %v", err)
	}
	return iss[0]
}

func TestRoundTrip_Constructed(t *testing.T) {
	pt := geojson.NewGeometry(geojson.Point{102, 0.5})
	line := &geojson.Geometry{
		BBox:  geojson.Bbox{102, 0, 105, 1},
		Value: geojson.LineString{{102, 0}, {103, 1}, {104, 0}, {105, 1}},
	}
	poly := geojson.NewGeometry(geojson.Polygon{
		{{100, 0}, {101, 0}, {101, 1}, {100, 1}, {100, 0}},
		{{100.2, 0.2}, {100.8, 0.2}, {100.8, 0.8}, {100.2, 0.8}, {100.2, 0.2}},
	})
	multi := geojson.NewGeometry(geojson.MultiPolygon{
		{{{102, 2}, {103, 2}, {103, 3}, {102, 3}, {102, 2}}},
		{{{100, 0}, {101, 0}, {101, 1}, {100, 1}, {100, 0}}},
	})
	id := geojson.IntID(7)
	sid := geojson.StringID("f-2")

	values := []geojson.GeoJSON{
		pt,
		line,
		poly,
		multi,
		geojson.NewGeometry(geojson.MultiPoint{{1, 2}, {3, 4, 5}}),
		geojson.NewGeometry(geojson.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}),
		geojson.NewGeometry(geojson.GeometryCollection{*pt, *line}),
		&geojson.Feature{Geometry: poly, ID: &id, Properties: geojson.Object{"name": "a", "tags": []any{"x"}}},
		&geojson.Feature{ID: &sid, BBox: geojson.Bbox{0, 0, 1, 1}},
		geojson.NewFeatureCollection(
			geojson.Feature{Geometry: pt, Properties: geojson.Object{}},
			geojson.Feature{Geometry: multi},
		),
		&geojson.FeatureCollection{BBox: geojson.Bbox{-1, -1, 1, 1}, Features: []geojson.Feature{}},
	}
	for _, v := range values {
		obj, err := v.JSONObject()
		if err != nil {
			t.Fatalf("%s: encode: %v", v.Type(), err)
		}
		got, err := geojson.Dispatch(obj)
		if err != nil {
			t.Fatalf("%s: decode: %v", v.Type(), err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Fatalf("%s: round trip mismatch\n got: %#v\nwant: %#v", v.Type(), got, v)
		}
	}
}

func TestRoundTrip_ThroughText(t *testing.T) {
	doc := `{"type":"FeatureCollection","bbox":[-10,-10,10,10],"features":[` +
		`{"type":"Feature","id":1,"geometry":{"type":"Point","coordinates":[1,2]},"properties":{"n":1}},` +
		`{"type":"Feature","id":"two","geometry":null,"properties":null}]}`
	v := mustParse(t, doc)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again := mustParse(t, string(data))
	if !reflect.DeepEqual(v, again) {
		t.Fatalf("text round trip mismatch:\n%s", data)
	}
}

func TestForeignMembers_Preserved(t *testing.T) {
	v := mustParse(t, `{"type":"Feature","geometry":null,"properties":{},"custom":1}`)
	f := v.(*geojson.Feature)
	if !reflect.DeepEqual(f.ForeignMembers, geojson.Object{"custom": json.Number("1")}) {
		t.Fatalf("foreign members: %#v", f.ForeignMembers)
	}
	obj, err := f.JSONObject()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if obj["custom"] != json.Number("1") {
		t.Fatalf("custom member not re-emitted: %v", obj)
	}
}

func TestForeignMembers_Nested(t *testing.T) {
	v := mustParse(t, `{"type":"FeatureCollection","crs":{"type":"name"},"features":[`+
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0],"srid":4326},"properties":null,"title":"t"}]}`)
	fc := v.(*geojson.FeatureCollection)
	if _, ok := fc.ForeignMembers["crs"]; !ok {
		t.Fatalf("collection foreign members: %v", fc.ForeignMembers)
	}
	f := fc.Features[0]
	if f.ForeignMembers["title"] != "t" {
		t.Fatalf("feature foreign members: %v", f.ForeignMembers)
	}
	if f.Geometry.ForeignMembers["srid"] != json.Number("4326") {
		t.Fatalf("geometry foreign members: %v", f.Geometry.ForeignMembers)
	}
}

func TestForeignMembers_AbsentNotEmpty(t *testing.T) {
	g := mustParse(t, `{"type":"Point","coordinates":[1,2]}`).(*geojson.Geometry)
	if g.ForeignMembers != nil {
		t.Fatalf("expected nil foreign members, got %#v", g.ForeignMembers)
	}
}

func TestFeature_NullProperties(t *testing.T) {
	v := mustParse(t, `{"type":"Feature","properties":null,"geometry":null}`)
	f, ok := v.(*geojson.Feature)
	if !ok {
		t.Fatalf("expected *Feature, got %T", v)
	}
	if f.Properties != nil || f.Geometry != nil || f.ID != nil || f.BBox != nil || f.ForeignMembers != nil {
		t.Fatalf("unexpected members: %#v", f)
	}
}

func TestFeature_MissingPropertiesKey(t *testing.T) {
	_, err := geojson.ParseString(`{"type":"Feature","geometry":null}`)
	it := issueOf(t, err)
	if it.Code != geojson.CodeExpectedProperty || it.Property != "properties" || it.Path != "/" {
		t.Fatalf("got %+v", it)
	}
}

func TestFeature_MissingGeometryKey(t *testing.T) {
	_, err := geojson.ParseString(`{"type":"Feature","properties":{}}`)
	it := issueOf(t, err)
	if it.Code != geojson.CodeExpectedProperty || it.Property != "geometry" {
		t.Fatalf("got %+v", it)
	}
}

func TestMultiPolygon_Depth(t *testing.T) {
	v := mustParse(t, `{"type":"MultiPolygon","coordinates":[[[[1,2],[3,4]]]]}`)
	g := v.(*geojson.Geometry)
	want := geojson.MultiPolygon{{{{1, 2}, {3, 4}}}}
	if !reflect.DeepEqual(g.Value, want) {
		t.Fatalf("got %#v", g.Value)
	}

	_, err := geojson.ParseString(`{"type":"MultiPolygon","coordinates":[[1,2]]}`)
	it := issueOf(t, err)
	if it.Code != geojson.CodeExpectedArrayValue || it.Path != "/coordinates/0/0" {
		t.Fatalf("got %+v", it)
	}
}

func TestUnknownType(t *testing.T) {
	_, err := geojson.ParseString(`{"type":"Circle","coordinates":[0,0]}`)
	it := issueOf(t, err)
	if it.Code != geojson.CodeUnknownType || it.Path != "/type" {
		t.Fatalf("got %+v", it)
	}
	if it.Params["got"] != "Circle" {
		t.Fatalf("params: %v", it.Params)
	}
}

func TestDispatch_TypeMember(t *testing.T) {
	for _, doc := range []string{`{"coordinates":[0,0]}`, `{"type":1}`, `{"type":null}`} {
		_, err := geojson.ParseString(doc)
		it := issueOf(t, err)
		if it.Code != geojson.CodeExpectedProperty || it.Property != "type" {
			t.Fatalf("%s: got %+v", doc, it)
		}
	}
}

func TestGeometryCollection_Nested(t *testing.T) {
	doc := `{"type":"GeometryCollection","geometries":[{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]}]}]}`
	g := mustParse(t, doc).(*geojson.Geometry)
	outer, ok := g.Value.(geojson.GeometryCollection)
	if !ok || len(outer) != 1 {
		t.Fatalf("outer: %#v", g.Value)
	}
	inner, ok := outer[0].Value.(geojson.GeometryCollection)
	if !ok || len(inner) != 1 {
		t.Fatalf("inner collection flattened: %#v", outer[0].Value)
	}
	if !reflect.DeepEqual(inner[0].Value, geojson.Point{1, 2}) {
		t.Fatalf("point: %#v", inner[0].Value)
	}

	obj, err := g.JSONObject()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := geojson.Dispatch(obj)
	if err != nil || !reflect.DeepEqual(back, g) {
		t.Fatalf("round trip: %v", err)
	}
}

func TestGeometryCollection_ErrorPath(t *testing.T) {
	doc := `{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[0,0]},{"type":"LineString","coordinates":[[0,0],[1]]},{"type":"Point"}]}`
	_, err := geojson.ParseString(doc)
	it := issueOf(t, err)
	// [1] is a valid one-element position; the third geometry fails first
	if it.Code != geojson.CodeExpectedProperty || it.Path != "/geometries/2" || it.Property != "coordinates" {
		t.Fatalf("got %+v", it)
	}
}

func TestGeometry_RejectsNonGeometryTags(t *testing.T) {
	_, err := geojson.ParseString(`{"type":"Feature","geometry":{"type":"Feature","geometry":null,"properties":null},"properties":null}`)
	it := issueOf(t, err)
	if it.Code != geojson.CodeUnknownType || it.Path != "/geometry/type" {
		t.Fatalf("got %+v", it)
	}
}

func TestFeature_InvalidMembers(t *testing.T) {
	cases := []struct {
		doc, code, path string
	}{
		{`{"type":"Feature","geometry":null,"properties":[]}`, geojson.CodePropertiesExpectedObjectOrNull, "/properties"},
		{`{"type":"Feature","geometry":null,"properties":null,"id":true}`, geojson.CodeInvalidIdentifierType, "/id"},
		{`{"type":"Feature","geometry":null,"properties":null,"bbox":{}}`, geojson.CodeBboxExpectedArray, "/bbox"},
		{`{"type":"Feature","geometry":null,"properties":null,"bbox":[0,"1"]}`, geojson.CodeBboxExpectedNumericValues, "/bbox/1"},
		{`{"type":"Feature","geometry":"Point","properties":null}`, geojson.CodeExpectedObjectValue, "/geometry"},
		{`{"type":"FeatureCollection","features":{}}`, geojson.CodeExpectedArrayValue, "/features"},
		{`{"type":"FeatureCollection","features":[1]}`, geojson.CodeExpectedObjectValue, "/features/0"},
		{`{"type":"GeometryCollection","geometries":[[]]}`, geojson.CodeExpectedObjectValue, "/geometries/0"},
		{`{"type":"Point","coordinates":"0,0"}`, geojson.CodeExpectedArrayValue, "/coordinates"},
	}
	for _, tc := range cases {
		_, err := geojson.ParseString(tc.doc)
		it := issueOf(t, err)
		if it.Code != tc.code || it.Path != tc.path {
			t.Fatalf("%s: got %s at %s, want %s at %s", tc.doc, it.Code, it.Path, tc.code, tc.path)
		}
	}
}

func TestDecodeOrder_TypeBeforeOthers(t *testing.T) {
	// both "type" and "coordinates" are wrong; the type error is reported
	_, err := geojson.ParseString(`{"type":"Circle","coordinates":"x"}`)
	if it := issueOf(t, err); it.Code != geojson.CodeUnknownType {
		t.Fatalf("got %+v", it)
	}
	// geometry is decoded before properties
	_, err = geojson.ParseString(`{"type":"Feature","geometry":1,"properties":1}`)
	if it := issueOf(t, err); it.Code != geojson.CodeExpectedObjectValue {
		t.Fatalf("got %+v", it)
	}
}

func TestDispatch_ConsumesInput(t *testing.T) {
	obj := geojson.Object{
		"type":        "Point",
		"coordinates": []any{1.0, 2.0},
		"bbox":        []any{1.0, 2.0, 1.0, 2.0},
		"extra":       "x",
	}
	v, err := geojson.Dispatch(obj)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if !reflect.DeepEqual(obj, geojson.Object{"extra": "x"}) {
		t.Fatalf("residual object: %v", obj)
	}
	if !reflect.DeepEqual(v.(*geojson.Geometry).ForeignMembers, obj) {
		t.Fatalf("foreign members should be the residual object")
	}
}

func TestDecodeValue_NotObject(t *testing.T) {
	for _, v := range []any{nil, "Point", []any{}, json.Number("1")} {
		_, err := geojson.DecodeValue(v)
		it := issueOf(t, err)
		if it.Code != geojson.CodeGeoJSONExpectedObject {
			t.Fatalf("%v: got %+v", v, it)
		}
	}
}

func TestKindSpecificDecoders(t *testing.T) {
	_, err := geojson.DecodeFeature(geojson.Object{"type": "Point", "coordinates": []any{}})
	it := issueOf(t, err)
	if it.Code != geojson.CodeUnknownType || it.Params["expected"] != "Feature" || it.Params["got"] != "Point" {
		t.Fatalf("got %+v", it)
	}
	_, err = geojson.DecodeFeatureCollection(geojson.Object{"type": "Feature"})
	if it := issueOf(t, err); it.Code != geojson.CodeUnknownType {
		t.Fatalf("got %+v", it)
	}
	_, err = geojson.DecodeGeometry(geojson.Object{"type": "FeatureCollection"})
	if it := issueOf(t, err); it.Code != geojson.CodeUnknownType {
		t.Fatalf("got %+v", it)
	}
	_, err = geojson.DecodeGeometry(geojson.Object{"type": []any{}})
	if it := issueOf(t, err); it.Code != geojson.CodeExpectedStringValue || it.Path != "/type" {
		t.Fatalf("got %+v", it)
	}
}
