package geojson

// Dispatch decodes obj into a *Geometry, *Feature or *FeatureCollection
// according to its "type" member. obj is consumed as by DecodeGeometry.
func Dispatch(obj Object) (GeoJSON, error) { return dispatch(obj, RootPath()) }

// DecodeValue is Dispatch for an arbitrary tree value; anything but an object
// fails with geojson_expected_object.
func DecodeValue(v any) (GeoJSON, error) { return DecodeTree(AnyCodec(), v) }

func dispatch(obj Object, p PathRef) (GeoJSON, error) {
	tag, ok := obj["type"].(string)
	if !ok {
		return nil, failProperty(p, CodeExpectedProperty, "type")
	}
	t, ok := ParseType(tag)
	if !ok {
		return nil, failType(p, "", tag)
	}
	switch t {
	case TypeFeature:
		f, err := decodeFeature(obj, p)
		if err != nil {
			return nil, err
		}
		return f, nil
	case TypeFeatureCollection:
		fc, err := decodeFeatureCollection(obj, p)
		if err != nil {
			return nil, err
		}
		return fc, nil
	default:
		g, err := decodeGeometry(obj, p)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
