package source

import (
	"testing"

	geojson "github.com/andyprasetya/geojson"
)

func TestInitInstallsGoJSON(t *testing.T) {
	if name := geojson.CurrentJSONDriver().Name(); name != "go-json" {
		t.Fatalf("expected go-json driver after import, got %s", name)
	}
}
