// Package source installs the go-json driver as the default JSON driver when
// imported for its side effect:
//
//	import _ "github.com/andyprasetya/geojson/source"
package source

import (
	geojson "github.com/andyprasetya/geojson"
	drvgojson "github.com/andyprasetya/geojson/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { geojson.SetJSONDriver(drvgojson.Driver()) }
