package main

import (
	"context"
	"os"
	"sort"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	geojson "github.com/andyprasetya/geojson"
	"github.com/andyprasetya/geojson/bsongeo"
	"github.com/andyprasetya/geojson/yamlgeo"
)

// Limits bounds the input accepted by every command.
type Limits struct {
	MaxDepth int   `long:"max-depth" env:"GEOJSON_MAX_DEPTH" description:"Maximum nesting depth of the input (0 = unlimited)" default:"0"`
	MaxBytes int64 `long:"max-bytes" env:"GEOJSON_MAX_BYTES" description:"Maximum input size in bytes (0 = unlimited)" default:"0"`
}

type validateCommand struct {
	app *app
	Limits

	Strict bool `long:"strict" description:"Fail on duplicate object keys instead of warning"`

	Args struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

type convertCommand struct {
	app *app
	Limits

	To     string `short:"t" long:"to" description:"Output format" choice:"json" choice:"yaml" choice:"bson" default:"json"`
	Indent bool   `long:"indent" description:"Indent JSON output"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`

	Args struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

type infoCommand struct {
	app *app
	Limits

	Args struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func (c *validateCommand) Execute([]string) error {
	files := c.Args.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	dup := geojson.Warn
	if c.Strict {
		dup = geojson.Error
	}
	failed := 0
	for _, name := range files {
		opt := c.parseOpt(dup)
		opt.OnIssue = func(it geojson.Issue) {
			log.Warn().Str("file", name).Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
		}
		v, err := c.app.parse(name, opt)
		if err != nil {
			logFailure(name, err)
			failed++
			continue
		}
		ev := log.Info().Str("file", name).Str("type", string(v.Type()))
		if fc, ok := v.(*geojson.FeatureCollection); ok {
			ev = ev.Int("features", len(fc.Features))
		}
		ev.Msg("valid")
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Int("files", len(files)).Msg("validation failed")
		return errFailed
	}
	return nil
}

func (c *convertCommand) Execute([]string) error {
	c.Args.File = stdinDash(c.Args.File)
	v, err := c.app.parse(c.Args.File, c.parseOpt(geojson.Ignore))
	if err != nil {
		logFailure(c.Args.File, err)
		return errFailed
	}

	var out []byte
	switch c.To {
	case "yaml":
		out, err = yamlgeo.Encode(v)
	case "bson":
		out, err = bsongeo.Marshal(v)
	default:
		out, err = encodeJSON(v, c.Indent)
	}
	if err != nil {
		logFailure(c.Args.File, err)
		return errFailed
	}

	if c.Output == "" {
		_, err = c.app.stdout.Write(out)
		return err
	}
	if err := os.WriteFile(c.Output, out, 0o644); err != nil {
		log.Error().Err(err).Str("out", c.Output).Msg("write failed")
		return errFailed
	}
	log.Info().Str("file", c.Args.File).Str("out", c.Output).Str("format", c.To).Msg("converted")
	return nil
}

type report struct {
	Type           string         `yaml:"type"`
	Features       *int           `yaml:"features,omitempty"`
	Geometries     map[string]int `yaml:"geometries,omitempty"`
	BBox           []float64      `yaml:"bbox,omitempty,flow"`
	ForeignMembers []string       `yaml:"foreign_members,omitempty,flow"`
}

func (c *infoCommand) Execute([]string) error {
	c.Args.File = stdinDash(c.Args.File)
	v, err := c.app.parse(c.Args.File, c.parseOpt(geojson.Ignore))
	if err != nil {
		logFailure(c.Args.File, err)
		return errFailed
	}
	r := summarize(v)
	out, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = c.app.stdout.Write(out)
	return err
}

func summarize(v geojson.GeoJSON) report {
	r := report{Type: string(v.Type()), Geometries: map[string]int{}}
	var fm geojson.Object
	switch t := v.(type) {
	case *geojson.Geometry:
		countGeometry(r.Geometries, t)
		r.BBox, fm = t.BBox, t.ForeignMembers
	case *geojson.Feature:
		countGeometry(r.Geometries, t.Geometry)
		r.BBox, fm = t.BBox, t.ForeignMembers
	case *geojson.FeatureCollection:
		n := len(t.Features)
		r.Features = &n
		for i := range t.Features {
			countGeometry(r.Geometries, t.Features[i].Geometry)
		}
		r.BBox, fm = t.BBox, t.ForeignMembers
	}
	for k := range fm {
		r.ForeignMembers = append(r.ForeignMembers, k)
	}
	sort.Strings(r.ForeignMembers)
	return r
}

// countGeometry counts g and, for collections, every member geometry.
func countGeometry(hist map[string]int, g *geojson.Geometry) {
	if g == nil {
		hist["null"]++
		return
	}
	hist[string(g.Type())]++
	if gc, ok := g.Value.(geojson.GeometryCollection); ok {
		for i := range gc {
			countGeometry(hist, &gc[i])
		}
	}
}

func (l Limits) parseOpt(dup geojson.Severity) geojson.ParseOpt {
	return geojson.ParseOpt{
		Strictness: geojson.Strictness{OnDuplicateKey: dup},
		MaxDepth:   l.MaxDepth,
		MaxBytes:   l.MaxBytes,
	}
}

func (a *app) parse(name string, opt geojson.ParseOpt) (geojson.GeoJSON, error) {
	f, err := a.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return geojson.StreamParse(context.Background(), f, opt)
}

func encodeJSON(v geojson.GeoJSON, indent bool) ([]byte, error) {
	obj, err := v.JSONObject()
	if err != nil {
		return nil, err
	}
	var out []byte
	if indent {
		out, err = gojson.MarshalIndent(obj, "", "  ")
	} else {
		out, err = gojson.Marshal(obj)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func stdinDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func logFailure(name string, err error) {
	iss, ok := geojson.AsIssues(err)
	if !ok {
		log.Error().Err(err).Str("file", name).Msg("invalid")
		return
	}
	for _, it := range iss {
		ev := log.Error().Str("file", name).Str("path", it.Path).Str("code", it.Code)
		if it.Property != "" {
			ev = ev.Str("property", it.Property)
		}
		ev.Msg(it.Message)
	}
}
