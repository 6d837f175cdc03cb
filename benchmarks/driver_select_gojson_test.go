//go:build gojson

package benchmarks_test

import (
	geojson "github.com/andyprasetya/geojson"
	drv "github.com/andyprasetya/geojson/source/gojson"
)

func init() {
	geojson.SetJSONDriver(drv.Driver())
}
