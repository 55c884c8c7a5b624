package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a decoder diagnostic located by JSON Pointer.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError aborts decoding with the issue that caused it.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.Message }

// EnforceOptions limits what a token stream may contain. Zero MaxDepth and
// MaxBytes disable those limits.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives every issue as it is found, fatal ones included.
	IssueSink func(SimpleIssue)
}

// WrapWithEnforcement returns a TokenSource that applies opt while tokens are
// pulled, so a document breaking a limit fails before its tree is built.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &guard{inner: inner, opt: opt}
}

// container is one open object or array.
type container struct {
	path  string
	array bool
	next  int
	key   string
	seen  map[string]struct{}
}

type guard struct {
	inner TokenSource
	opt   EnforceOptions
	open  []container
}

func (g *guard) Location() int64 { return g.inner.Location() }

func (g *guard) NextToken() (Token, error) {
	tok, err := g.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindKey:
		if err := g.key(tok.String); err != nil {
			return Token{}, err
		}
	case KindBeginObject, KindBeginArray:
		f := container{path: g.claim(), array: tok.Kind == KindBeginArray}
		if !f.array {
			f.seen = make(map[string]struct{})
		}
		g.open = append(g.open, f)
		if g.opt.MaxDepth > 0 && len(g.open) > g.opt.MaxDepth {
			return Token{}, g.fail("parse_error", f.path, "max depth exceeded")
		}
	case KindEndObject, KindEndArray:
		if n := len(g.open); n > 0 {
			g.open = g.open[:n-1]
		}
	default:
		g.claim()
	}

	if g.opt.MaxBytes > 0 && g.Location() > g.opt.MaxBytes {
		return Token{}, g.fail("truncated", g.here(), "max bytes exceeded")
	}
	return tok, nil
}

// key records an object key and reports it when already seen in the same
// object.
func (g *guard) key(name string) error {
	n := len(g.open)
	if n == 0 || g.open[n-1].array {
		return nil
	}
	top := &g.open[n-1]
	top.key = name
	if _, dup := top.seen[name]; dup && g.opt.OnDuplicate != DupIgnore {
		si := SimpleIssue{Code: "duplicate_key", Path: pointer(top.path, name), Message: "key '" + name + "' duplicated"}
		g.report(si)
		if g.opt.OnDuplicate == DupError {
			return IssueError{si}
		}
	}
	top.seen[name] = struct{}{}
	return nil
}

// claim returns the path of the value starting at the current token and
// advances the enclosing container past it.
func (g *guard) claim() string {
	n := len(g.open)
	if n == 0 {
		return ""
	}
	top := &g.open[n-1]
	if top.array {
		p := pointer(top.path, strconv.Itoa(top.next))
		top.next++
		return p
	}
	p := pointer(top.path, top.key)
	top.key = ""
	return p
}

func (g *guard) here() string {
	if n := len(g.open); n > 0 {
		return g.open[n-1].path
	}
	return ""
}

func (g *guard) report(si SimpleIssue) {
	if g.opt.IssueSink != nil {
		g.opt.IssueSink(si)
	}
}

func (g *guard) fail(code, path, msg string) error {
	if path == "" {
		path = "/"
	}
	si := SimpleIssue{Code: code, Path: path, Message: msg}
	g.report(si)
	return IssueError{si}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
