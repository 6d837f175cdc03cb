package geojson

// Object is a JSON object in the generic value tree. Properties and foreign
// members are kept in this form verbatim.
type Object = map[string]any

// Type is the value of a GeoJSON object's "type" member.
type Type string

const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// ParseType maps a "type" tag onto one of the nine known types.
func ParseType(s string) (Type, bool) {
	switch t := Type(s); t {
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection,
		TypeFeature, TypeFeatureCollection:
		return t, true
	}
	return "", false
}

// IsGeometry reports whether t names one of the seven geometry kinds.
func (t Type) IsGeometry() bool {
	_, ok := ParseType(string(t))
	return ok && t != TypeFeature && t != TypeFeatureCollection
}

// GeoJSON is implemented by *Geometry, *Feature and *FeatureCollection.
type GeoJSON interface {
	// Type returns the "type" tag the object encodes to.
	Type() Type
	// JSONObject encodes the object into the generic value tree.
	JSONObject() (Object, error)

	sealed()
}

func (*Geometry) sealed()          {}
func (*Feature) sealed()           {}
func (*FeatureCollection) sealed() {}
