package opentrackio

import (
	"strconv"
	"strings"

	"github.com/reoring/opentrackio/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	// Name renders the path the way messages refer to fields: the unescaped
	// segments joined with '/', without a leading slash.
	Name() string
	Issue(code string, data map[string]string, kv ...any) Issue
}

// Root returns the PathRef for the document root.
func Root() PathRef { return &pathRef{} }

// At parses a JSON Pointer into a PathRef.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	// naive split on '/', ignoring first empty due to leading '/'
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, unescape(p))
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string // unescaped segments
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return &pathRef{parts: append(append([]string{}, p.parts...), name)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	esc := make([]string, len(p.parts))
	for i, s := range p.parts {
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		esc[i] = strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(esc, "/")
}

func (p *pathRef) Name() string { return strings.Join(p.parts, "/") }

// Issue renders the message for code through i18n. The "field" entry of data
// defaults to Name(); kv pairs become Params.
func (p *pathRef) Issue(code string, data map[string]string, kv ...any) Issue {
	msgData := map[string]string{"field": p.Name()}
	for k, v := range data {
		msgData[k] = v
	}
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				params[k] = kv[i+1]
			}
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, msgData), Params: params}
}

func unescape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}
