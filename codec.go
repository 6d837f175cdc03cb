package geojson

// Codec performs the bidirectional mapping between the generic object tree and
// one GeoJSON model type. Front-ends (YAML, BSON) are written against it so a
// caller can ask for "a Feature" instead of "whatever the type tag says".
type Codec[T GeoJSON] interface {
	// Decode consumes obj and returns the model (see DecodeGeometry).
	Decode(obj Object) (T, error)
	// Encode renders v as a fresh object tree.
	Encode(v T) (Object, error)
}

type funcCodec[T GeoJSON] struct {
	decode func(Object) (T, error)
	encode func(T) (Object, error)
}

func (c funcCodec[T]) Decode(obj Object) (T, error) { return c.decode(obj) }
func (c funcCodec[T]) Encode(v T) (Object, error)   { return c.encode(v) }

// GeometryCodec returns the Codec for geometry objects.
func GeometryCodec() Codec[*Geometry] {
	return funcCodec[*Geometry]{decode: DecodeGeometry, encode: EncodeGeometry}
}

// FeatureCodec returns the Codec for feature objects.
func FeatureCodec() Codec[*Feature] {
	return funcCodec[*Feature]{decode: DecodeFeature, encode: EncodeFeature}
}

// FeatureCollectionCodec returns the Codec for feature collections.
func FeatureCollectionCodec() Codec[*FeatureCollection] {
	return funcCodec[*FeatureCollection]{decode: DecodeFeatureCollection, encode: EncodeFeatureCollection}
}

// AnyCodec returns the Codec that dispatches on the "type" member.
func AnyCodec() Codec[GeoJSON] {
	return funcCodec[GeoJSON]{
		decode: Dispatch,
		encode: func(v GeoJSON) (Object, error) { return v.JSONObject() },
	}
}

// DecodeTree applies c to an arbitrary tree value, requiring an object.
func DecodeTree[T GeoJSON](c Codec[T], v any) (T, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		var zero T
		return zero, fail(RootPath(), CodeGeoJSONExpectedObject)
	}
	return c.Decode(obj)
}
