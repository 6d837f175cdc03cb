package geojson

// Field extraction consumes the object it reads from: every recognized member
// is deleted, so whatever is left afterwards is the set of foreign members.

func expectProperty(obj Object, name string, p PathRef) (any, error) {
	v, ok := obj[name]
	if !ok {
		return nil, failProperty(p, CodeExpectedProperty, name)
	}
	delete(obj, name)
	return v, nil
}

func expectType(obj Object, p PathRef) (string, error) {
	v, err := expectProperty(obj, "type", p)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fail(p.Field("type"), CodeExpectedStringValue)
	}
	return s, nil
}

func expectObject(v any, p PathRef) (Object, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fail(p, CodeExpectedObjectValue)
	}
	return obj, nil
}

// optionalBbox removes "bbox"; absence is not an error.
func optionalBbox(obj Object, p PathRef) (Bbox, error) {
	v, ok := obj["bbox"]
	if !ok {
		return nil, nil
	}
	delete(obj, "bbox")
	bp := p.Field("bbox")
	arr, ok := v.([]any)
	if !ok {
		return nil, fail(bp, CodeBboxExpectedArray)
	}
	bbox := make(Bbox, len(arr))
	for i, item := range arr {
		f, ok := expectF64(item)
		if !ok {
			return nil, fail(bp.Index(i), CodeBboxExpectedNumericValues)
		}
		bbox[i] = f
	}
	return bbox, nil
}

// requiredProperties removes "properties". The key is mandatory but its value
// may be null, which yields nil.
func requiredProperties(obj Object, p PathRef) (Object, error) {
	v, err := expectProperty(obj, "properties", p)
	if err != nil {
		return nil, err
	}
	switch props := v.(type) {
	case map[string]any:
		return props, nil
	case nil:
		return nil, nil
	default:
		return nil, fail(p.Field("properties"), CodePropertiesExpectedObjectOrNull)
	}
}

// optionalID removes "id"; absence is not an error.
func optionalID(obj Object, p PathRef) (*ID, error) {
	v, ok := obj["id"]
	if !ok {
		return nil, nil
	}
	delete(obj, "id")
	if s, ok := v.(string); ok {
		id := StringID(s)
		return &id, nil
	}
	n, ok := numberLiteral(v)
	if !ok {
		return nil, fail(p.Field("id"), CodeInvalidIdentifierType)
	}
	id := NumberID(n)
	return &id, nil
}

// foreignMembers returns the residual object, or nil when nothing is left.
func foreignMembers(obj Object) Object {
	if len(obj) == 0 {
		return nil
	}
	return obj
}

// requiredGeometry removes "geometry"; null yields nil.
func requiredGeometry(obj Object, p PathRef) (*Geometry, error) {
	v, err := expectProperty(obj, "geometry", p)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	gp := p.Field("geometry")
	gobj, err := expectObject(v, gp)
	if err != nil {
		return nil, err
	}
	return decodeGeometry(gobj, gp)
}

func requiredGeometries(obj Object, p PathRef) ([]Geometry, error) {
	v, err := expectProperty(obj, "geometries", p)
	if err != nil {
		return nil, err
	}
	return decodeArray(v, p.Field("geometries"), func(item any, ip PathRef) (Geometry, error) {
		gobj, err := expectObject(item, ip)
		if err != nil {
			return Geometry{}, err
		}
		g, err := decodeGeometry(gobj, ip)
		if err != nil {
			return Geometry{}, err
		}
		return *g, nil
	})
}

func requiredFeatures(obj Object, p PathRef) ([]Feature, error) {
	v, err := expectProperty(obj, "features", p)
	if err != nil {
		return nil, err
	}
	return decodeArray(v, p.Field("features"), func(item any, ip PathRef) (Feature, error) {
		fobj, err := expectObject(item, ip)
		if err != nil {
			return Feature{}, err
		}
		f, err := decodeFeature(fobj, ip)
		if err != nil {
			return Feature{}, err
		}
		return *f, nil
	})
}

// Members each object kind may not carry as foreign members, whether or not
// the model writes them.
var (
	geometryMembers          = []string{"type", "bbox", "coordinates", "geometries"}
	featureMembers           = []string{"type", "bbox", "geometry", "properties", "id"}
	featureCollectionMembers = []string{"type", "bbox", "features"}
)

// spliceForeignMembers copies fm into an encoded object. Nothing is copied
// when any key of fm is one of the reserved members.
func spliceForeignMembers(obj, fm Object, reserved []string, p PathRef) error {
	for _, k := range reserved {
		if _, taken := fm[k]; taken {
			return failProperty(p.Field(k), CodeReservedForeignMember, k)
		}
	}
	for k, v := range fm {
		obj[k] = cloneValue(v)
	}
	return nil
}

// cloneValue deep-copies the objects and arrays of a value tree so encoded
// output never aliases the model.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = cloneValue(x)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = cloneValue(x)
		}
		return out
	}
	return v
}
