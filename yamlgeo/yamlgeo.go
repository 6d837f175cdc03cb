// Package yamlgeo reads and writes GeoJSON objects written as YAML.
//
// YAML mappings become objects, sequences become arrays and scalars are
// resolved by their YAML tag, so the GeoJSON decoders see the same value tree
// they would see for the equivalent JSON document.
package yamlgeo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	geojson "github.com/andyprasetya/geojson"
	"github.com/andyprasetya/geojson/i18n"
	"gopkg.in/yaml.v3"
)

// Decode parses a single YAML document and dispatches it on its "type".
func Decode(data []byte) (geojson.GeoJSON, error) {
	return DecodeAs(geojson.AnyCodec(), data)
}

// DecodeAs parses a single YAML document into the model of c.
func DecodeAs[T geojson.GeoJSON](c geojson.Codec[T], data []byte) (T, error) {
	var zero T
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, parseError(err)
	}
	v, err := toTree(&doc, geojson.RootPath())
	if err != nil {
		return zero, err
	}
	return geojson.DecodeTree(c, v)
}

// DecodeAll parses every document of a multi-document YAML stream.
func DecodeAll(r io.Reader) ([]geojson.GeoJSON, error) {
	dec := yaml.NewDecoder(r)
	var out []geojson.GeoJSON
	for i := 0; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("document %d: %w", i, parseError(err))
		}
		v, err := toTree(&doc, geojson.RootPath())
		if err == nil {
			var g geojson.GeoJSON
			if g, err = geojson.DecodeValue(v); err == nil {
				out = append(out, g)
				continue
			}
		}
		return nil, fmt.Errorf("document %d: %w", i, err)
	}
}

// Encode renders v as a YAML document with the GeoJSON members first.
func Encode(v geojson.GeoJSON) ([]byte, error) {
	obj, err := v.JSONObject()
	if err != nil {
		return nil, err
	}
	node, err := toNode(geojson.PlainNumbers(obj))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseError(err error) error {
	return geojson.Issues{{Path: "/", Code: geojson.CodeParseError, Message: err.Error(), Cause: err}}
}

func issue(p geojson.PathRef, code string) error {
	return geojson.Issues{p.Issue(code, i18n.T(code, nil))}
}

// toTree converts a YAML node into the generic value tree. Numbers become
// json.Number so integer ids keep their literal form.
func toTree(n *yaml.Node, p geojson.PathRef) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return toTree(n.Content[0], p)
	case yaml.AliasNode:
		return toTree(n.Alias, p)
	case yaml.MappingNode:
		obj := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
				return nil, issue(p, geojson.CodeExpectedObjectValue)
			}
			x, err := toTree(v, p.Field(k.Value))
			if err != nil {
				return nil, err
			}
			obj[k.Value] = x
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, len(n.Content))
		for i, c := range n.Content {
			x, err := toTree(c, p.Index(i))
			if err != nil {
				return nil, err
			}
			arr[i] = x
		}
		return arr, nil
	}
	return scalar(n)
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, parseError(err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return json.Number(strconv.FormatInt(i, 10)), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, parseError(err)
		}
		return json.Number(strconv.FormatUint(u, 10)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, parseError(err)
		}
		// .inf and .nan stay float64 and are rejected by the coordinate decoders.
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return f, nil
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	}
	return n.Value, nil
}

// toNode builds a YAML node from a plain value tree. Arrays of scalars, such
// as positions and bounding boxes, are written in flow style.
func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case map[string]any:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range geojson.OrderedKeys(t) {
			c, err := toNode(t[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, c)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, x := range t {
			c, err := toNode(x)
			if err != nil {
				return nil, err
			}
			if c.Kind != yaml.ScalarNode {
				n.Style = 0
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
