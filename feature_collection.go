package geojson

// FeatureCollection is an ordered list of features.
type FeatureCollection struct {
	BBox           Bbox
	Features       []Feature
	ForeignMembers Object
}

// NewFeatureCollection returns a collection holding fs in order.
func NewFeatureCollection(fs ...Feature) *FeatureCollection {
	return &FeatureCollection{Features: append([]Feature{}, fs...)}
}

// Type always returns TypeFeatureCollection.
func (*FeatureCollection) Type() Type { return TypeFeatureCollection }

// JSONObject encodes fc into the generic value tree.
func (fc *FeatureCollection) JSONObject() (Object, error) {
	return encodeFeatureCollection(fc, RootPath())
}

// DecodeFeatureCollection builds a FeatureCollection from obj, consuming it
// the way DecodeGeometry does.
func DecodeFeatureCollection(obj Object) (*FeatureCollection, error) {
	return decodeFeatureCollection(obj, RootPath())
}

// EncodeFeatureCollection is the inverse of DecodeFeatureCollection.
func EncodeFeatureCollection(fc *FeatureCollection) (Object, error) {
	return encodeFeatureCollection(fc, RootPath())
}

func decodeFeatureCollection(obj Object, p PathRef) (*FeatureCollection, error) {
	tag, err := expectType(obj, p)
	if err != nil {
		return nil, err
	}
	if tag != string(TypeFeatureCollection) {
		return nil, failType(p, string(TypeFeatureCollection), tag)
	}
	bbox, err := optionalBbox(obj, p)
	if err != nil {
		return nil, err
	}
	features, err := requiredFeatures(obj, p)
	if err != nil {
		return nil, err
	}
	return &FeatureCollection{
		BBox:           bbox,
		Features:       features,
		ForeignMembers: foreignMembers(obj),
	}, nil
}

func encodeFeatureCollection(fc *FeatureCollection, p PathRef) (Object, error) {
	if fc == nil {
		return nil, failType(p, string(TypeFeatureCollection), "")
	}
	fp := p.Field("features")
	features := make([]any, len(fc.Features))
	for i := range fc.Features {
		o, err := encodeFeature(&fc.Features[i], fp.Index(i))
		if err != nil {
			return nil, err
		}
		features[i] = o
	}
	obj := Object{
		"type":     string(TypeFeatureCollection),
		"features": features,
	}
	if fc.BBox != nil {
		obj["bbox"] = encodeNumbers(fc.BBox)
	}
	if err := spliceForeignMembers(obj, fc.ForeignMembers, featureCollectionMembers, p); err != nil {
		return nil, err
	}
	return obj, nil
}
