package geojson

import "sort"

var memberRank = map[string]int{
	"type":        0,
	"id":          1,
	"geometry":    2,
	"coordinates": 2,
	"geometries":  2,
	"features":    2,
	"properties":  3,
	"bbox":        4,
}

// OrderedKeys returns the keys of obj with the GeoJSON members first, in the
// order they are conventionally written, followed by every other key sorted.
// Encoders that keep insertion order (YAML nodes, bson.D) use it for stable
// output.
func OrderedKeys(obj Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, oki := memberRank[keys[i]]
		rj, okj := memberRank[keys[j]]
		switch {
		case oki && okj:
			return ri < rj
		case oki != okj:
			return oki
		}
		return keys[i] < keys[j]
	})
	return keys
}
