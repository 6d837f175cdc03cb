// Package geojson decodes and encodes RFC 7946 GeoJSON documents.
//
// - A sealed GeoJSON sum over Geometry, Feature and FeatureCollection
// - Coordinate decoders for Point through MultiPolygon with exact nesting depth
// - Foreign members: every key a decoder does not consume is preserved and re-emitted on encode
// - A stable error model via Issues (JSON Pointer, code, message)
// - Streaming input via Source with duplicate-key/depth/size enforcement
//
// Design policy:
//   - Decoding is fail-fast: a returned Issues holds the first failure only.
//   - Decoders consume the object they are given; callers that need the input
//     afterwards pass a copy.
//   - Numbers are kept as json.Number in the tree so ids survive a round trip.
//   - Adapters live in subpackages: yamlgeo for YAML, bsongeo for BSON and the
//     CLI under cmd/geojson.
//
// Typical usage:
//
//	v, err := geojson.Parse(data)
//	switch g := v.(type) {
//	case *geojson.Feature:
//		name, _ := g.Property("name")
//	}
//
//	fc, err := geojson.ParseFromAs(ctx, geojson.FeatureCollectionCodec(), geojson.JSONReader(r),
//		geojson.ParseOpt{MaxDepth: 64})
//
//	obj, err := fc.JSONObject()
package geojson
