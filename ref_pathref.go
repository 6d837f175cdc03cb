package geojson

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// Segments are linked to their parent and only rendered by Pointer, so
// decoders can track every array index without paying for string building
// on the success path.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// RootPath returns the PathRef of the document root ("/").
func RootPath() PathRef { return (*pathRef)(nil) }

type pathRef struct {
	parent *pathRef
	token  string
	index  int
	// isIndex selects index over token.
	isIndex bool
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return &pathRef{parent: p, token: name}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parent: p, index: i, isIndex: true}
}

func (p *pathRef) Pointer() string {
	if p == nil {
		return "/"
	}
	var parts []string
	for cur := p; cur != nil; cur = cur.parent {
		if cur.isIndex {
			parts = append(parts, strconv.Itoa(cur.index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		parts = append(parts, pointerEscaper.Replace(cur.token))
	}
	b := &strings.Builder{}
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
