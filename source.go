package geojson

import (
	"io"
	"sync"

	eng "github.com/andyprasetya/geojson/internal/engine"
	jsonsrc "github.com/andyprasetya/geojson/source/json"
)

// Token is one classified JSON token. Offset is the byte position after the
// token, or -1.
type Token = eng.Token

// Source is a JSON token stream plus the number representation the tree
// builder should produce for it.
type Source interface {
	NextToken() (Token, error)
	NumberMode() NumberMode
	Location() int64
}

// JSONDriver turns raw JSON into a Source. The package starts out with an
// encoding/json driver; importing github.com/andyprasetya/geojson/source
// switches to go-json.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	driverMu sync.RWMutex
	driver   JSONDriver = stdDriver{}
)

// SetJSONDriver installs d for JSONBytes and JSONReader. nil is ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	driver = d
	driverMu.Unlock()
}

// UseDefaultJSONDriver goes back to the encoding/json driver.
func UseDefaultJSONDriver() {
	driverMu.Lock()
	driver = stdDriver{}
	driverMu.Unlock()
}

// CurrentJSONDriver returns the installed driver.
func CurrentJSONDriver() JSONDriver {
	driverMu.RLock()
	defer driverMu.RUnlock()
	return driver
}

type stdDriver struct{}

func (stdDriver) NewReader(r io.Reader) Source { return SourceFromEngine(jsonsrc.NewReader(r), NumberJSONNumber) }
func (stdDriver) NewBytes(b []byte) Source     { return SourceFromEngine(jsonsrc.NewBytes(b), NumberJSONNumber) }
func (stdDriver) Name() string                 { return "encoding/json" }

// JSONReader reads JSON from r with the current driver.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes reads JSON from b with the current driver.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// SourceFromEngine attaches a number mode to a tokenizer.
func SourceFromEngine(ts eng.TokenSource, mode NumberMode) Source {
	return numberModeSource{TokenSource: ts, mode: mode}
}

// WithNumberMode returns s reporting m as its number mode.
func WithNumberMode(s Source, m NumberMode) Source {
	return numberModeSource{TokenSource: s, mode: m}
}

type numberModeSource struct {
	eng.TokenSource
	mode NumberMode
}

func (s numberModeSource) NumberMode() NumberMode { return s.mode }
