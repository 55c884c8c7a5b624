// Package codec converts between encoded sample documents and the generic
// document tree (map[string]any, []any, string, bool, nil and numbers) that the
// protocol parsers consume.
//
// Three wire formats are registered by default: JSON text, CBOR binary and
// YAML text. Decoders never interpret the protocol; they only build trees.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Duplicates selects how repeated object keys are handled by decoders that can
// detect them.
type Duplicates int

const (
	DupIgnore Duplicates = iota
	DupWarn
	DupError
)

// Options bounds a single decode. Zero values disable a limit.
type Options struct {
	OnDuplicate Duplicates
	MaxDepth    int
	MaxBytes    int64
}

// Notice is a non-fatal decoder observation such as a duplicate key in warn mode.
type Notice struct {
	Code    string
	Path    string
	Message string
}

// Error is a decode failure with the location the decoder reported.
type Error struct {
	Format string
	Code   string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("codec %s: %s at %s: %v", e.Format, e.Code, path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Codec decodes bytes into a document tree and encodes a tree back into bytes.
type Codec interface {
	Name() string
	ContentType() string
	Decode(data []byte, opt Options) (any, []Notice, error)
	Encode(doc any) ([]byte, error)
}

// Registry maps format names and file extensions to codecs.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byExt  map[string]Codec
}

// NewRegistry constructs a registry preloaded with JSON, CBOR and YAML.
func NewRegistry() *Registry {
	r := &Registry{byName: map[string]Codec{}, byExt: map[string]Codec{}}
	r.Register(JSON(), ".json")
	r.Register(CBOR(), ".cbor")
	r.Register(YAML(), ".yaml", ".yml")
	return r
}

// Register adds a codec under its name and the given file extensions.
func (r *Registry) Register(c Codec, exts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[c.Name()] = c
	for _, e := range exts {
		r.byExt[strings.ToLower(e)] = c
	}
}

// Get returns a codec by name, or nil.
func (r *Registry) Get(name string) Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[strings.ToLower(name)]
}

// ForPath picks a codec from the file extension of path, or nil.
func (r *Registry) ForPath(path string) Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byExt[strings.ToLower(filepath.Ext(path))]
}

func tooLarge(format string, data []byte, opt Options) error {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return &Error{Format: format, Code: "truncated", Path: "/", Err: fmt.Errorf("input of %d bytes exceeds limit %d", len(data), opt.MaxBytes)}
	}
	return nil
}
