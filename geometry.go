package geojson

// GeometryValue is the coordinate payload of a Geometry. It is implemented by
// Point, MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon and
// GeometryCollection only.
type GeometryValue interface {
	GeometryType() Type
	geometryValue()
}

type (
	Point              Position
	MultiPoint         []Position
	LineString         []Position
	MultiLineString    [][]Position
	Polygon            [][]Position
	MultiPolygon       [][][]Position
	GeometryCollection []Geometry
)

func (Point) GeometryType() Type              { return TypePoint }
func (MultiPoint) GeometryType() Type         { return TypeMultiPoint }
func (LineString) GeometryType() Type         { return TypeLineString }
func (MultiLineString) GeometryType() Type    { return TypeMultiLineString }
func (Polygon) GeometryType() Type            { return TypePolygon }
func (MultiPolygon) GeometryType() Type       { return TypeMultiPolygon }
func (GeometryCollection) GeometryType() Type { return TypeGeometryCollection }

func (Point) geometryValue()              {}
func (MultiPoint) geometryValue()         {}
func (LineString) geometryValue()         {}
func (MultiLineString) geometryValue()    {}
func (Polygon) geometryValue()            {}
func (MultiPolygon) geometryValue()       {}
func (GeometryCollection) geometryValue() {}

// Geometry is a GeoJSON geometry object.
type Geometry struct {
	BBox           Bbox
	Value          GeometryValue
	ForeignMembers Object // nil when the object carried no unrecognized members
}

// NewGeometry returns a Geometry without bbox or foreign members.
func NewGeometry(v GeometryValue) *Geometry { return &Geometry{Value: v} }

// Type returns the geometry kind, or "" when Value is unset.
func (g *Geometry) Type() Type {
	if g.Value == nil {
		return ""
	}
	return g.Value.GeometryType()
}

// JSONObject encodes g into the generic value tree.
func (g *Geometry) JSONObject() (Object, error) { return encodeGeometry(g, RootPath()) }

// DecodeGeometry builds a Geometry from obj. obj is consumed: recognized
// members are deleted from it and, when anything remains, obj itself becomes
// the ForeignMembers of the result.
func DecodeGeometry(obj Object) (*Geometry, error) { return decodeGeometry(obj, RootPath()) }

// EncodeGeometry is the inverse of DecodeGeometry.
func EncodeGeometry(g *Geometry) (Object, error) { return encodeGeometry(g, RootPath()) }

func decodeGeometry(obj Object, p PathRef) (*Geometry, error) {
	tag, err := expectType(obj, p)
	if err != nil {
		return nil, err
	}
	t, ok := ParseType(tag)
	if !ok || !t.IsGeometry() {
		return nil, failType(p, "geometry", tag)
	}
	value, err := decodeGeometryValue(t, obj, p)
	if err != nil {
		return nil, err
	}
	bbox, err := optionalBbox(obj, p)
	if err != nil {
		return nil, err
	}
	return &Geometry{
		BBox:           bbox,
		Value:          value,
		ForeignMembers: foreignMembers(obj),
	}, nil
}

func decodeGeometryValue(t Type, obj Object, p PathRef) (GeometryValue, error) {
	if t == TypeGeometryCollection {
		geoms, err := requiredGeometries(obj, p)
		if err != nil {
			return nil, err
		}
		return GeometryCollection(geoms), nil
	}
	coords, err := expectProperty(obj, "coordinates", p)
	if err != nil {
		return nil, err
	}
	cp := p.Field("coordinates")
	switch t {
	case TypePoint:
		pos, err := decodePosition(coords, cp)
		return Point(pos), err
	case TypeMultiPoint:
		ps, err := decodePositions1(coords, cp)
		return MultiPoint(ps), err
	case TypeLineString:
		ps, err := decodePositions1(coords, cp)
		return LineString(ps), err
	case TypeMultiLineString:
		ps, err := decodePositions2(coords, cp)
		return MultiLineString(ps), err
	case TypePolygon:
		ps, err := decodePositions2(coords, cp)
		return Polygon(ps), err
	default: // TypeMultiPolygon
		ps, err := decodePositions3(coords, cp)
		return MultiPolygon(ps), err
	}
}

func encodeGeometry(g *Geometry, p PathRef) (Object, error) {
	if g == nil || g.Value == nil {
		return nil, failType(p, "geometry", "")
	}
	obj := Object{"type": string(g.Value.GeometryType())}
	switch v := g.Value.(type) {
	case Point:
		obj["coordinates"] = encodePosition(Position(v))
	case MultiPoint:
		obj["coordinates"] = encodePositions1(v)
	case LineString:
		obj["coordinates"] = encodePositions1(v)
	case MultiLineString:
		obj["coordinates"] = encodePositions2(v)
	case Polygon:
		obj["coordinates"] = encodePositions2(v)
	case MultiPolygon:
		obj["coordinates"] = encodePositions3(v)
	case GeometryCollection:
		gp := p.Field("geometries")
		geoms := make([]any, len(v))
		for i := range v {
			o, err := encodeGeometry(&v[i], gp.Index(i))
			if err != nil {
				return nil, err
			}
			geoms[i] = o
		}
		obj["geometries"] = geoms
	}
	if g.BBox != nil {
		obj["bbox"] = encodeNumbers(g.BBox)
	}
	if err := spliceForeignMembers(obj, g.ForeignMembers, geometryMembers, p); err != nil {
		return nil, err
	}
	return obj, nil
}
