package opentrackio

import (
	"errors"
	"slices"

	"github.com/reoring/opentrackio/codec"
	"github.com/reoring/opentrackio/i18n"
)

// StaticKey groups the version-invariant fields of a sample. It is never
// reported as a leftover itself; only its contents are.
const StaticKey = "static"

// ParseFunc consumes the keys it recognises from root, appending errors to errs.
type ParseFunc func(root map[string]any, errs *Issues)

// Sampler is implemented by the typed sample of every supported protocol
// version.
type Sampler interface {
	Initialise(doc any) error
	InitialiseJSON(data []byte, opts ...ParseOpt) error
	InitialiseCBOR(data []byte, opts ...ParseOpt) error
	InitialiseYAML(data []byte, opts ...ParseOpt) error
	InitialiseWith(c codec.Codec, data []byte, opts ...ParseOpt) error
	Document() map[string]any
	Errors() Issues
	Warnings() Issues
	ProtocolVersion() Version
}

// Envelope holds the state every typed sample shares: the original input,
// the error and warning lists and the cached output document. Version
// packages embed it and supply their parse and generate functions.
//
// The output document is generated on the first call to Document and cached;
// mutating typed fields afterwards does not change it. Initialising again
// resets everything.
type Envelope struct {
	original any
	document map[string]any
	errors   Issues
	warnings Issues
}

// Errors returns the errors recorded by the last initialise.
func (e *Envelope) Errors() Issues { return e.errors }

// Warnings returns the warnings recorded by the last initialise.
func (e *Envelope) Warnings() Issues { return e.warnings }

// Original returns the normalized copy of the input document.
func (e *Envelope) Original() any { return e.original }

// Run resets e, keeps a copy of doc and parses a second, mutable copy. Keys
// left in the working copy afterwards become unknown_key warnings. Run only
// fails when doc is not a document tree.
func (e *Envelope) Run(doc any, version Version, parse ParseFunc) error {
	original, err := Normalize(doc)
	if err != nil {
		*e = Envelope{}
		return err
	}
	work, _ := Normalize(original)
	*e = Envelope{original: original}

	switch root := work.(type) {
	case nil:
	case map[string]any:
		if s, ok := root[StaticKey]; ok {
			if _, isObj := s.(map[string]any); !isObj {
				e.errors = append(e.errors, Root().Field(StaticKey).Issue(CodeInvalidType, map[string]string{"type": "object"}))
				delete(root, StaticKey)
			}
		}
		parse(root, &e.errors)
		warnRemaining(root, Root(), &e.warnings)
	default:
		e.errors = append(e.errors, Root().Issue(CodeInvalidType, map[string]string{"field": "document", "type": "object"}))
	}

	l := Logger()
	l.Debug().
		Str("protocol", version.String()).
		Int("errors", len(e.errors)).
		Int("warnings", len(e.warnings)).
		Msg("sample initialised")
	return nil
}

// RunBytes decodes data with c and then behaves like Run. Decode failures are
// returned as Issues and leave e reset. Duplicate-key notices from the decoder
// precede the parser's warnings.
func (e *Envelope) RunBytes(c codec.Codec, data []byte, version Version, parse ParseFunc, opts ...ParseOpt) error {
	doc, notices, err := c.Decode(data, codecOptions(lastOpt(opts)))
	if err != nil {
		*e = Envelope{}
		l := Logger()
		l.Debug().Err(err).Str("codec", c.Name()).Msg("sample decode failed")
		return decodeIssues(err)
	}
	if err := e.Run(doc, version, parse); err != nil {
		return err
	}
	if len(notices) > 0 {
		pre := make(Issues, 0, len(notices)+len(e.warnings))
		for _, n := range notices {
			pre = append(pre, noticeIssue(n))
		}
		e.warnings = append(pre, e.warnings...)
	}
	return nil
}

// Document returns the cached output document, generating it on first use.
func (e *Envelope) Document(generate func() map[string]any) map[string]any {
	if e.document == nil {
		e.document = generate()
	}
	return e.document
}

// Encode encodes the output document with c.
func (e *Envelope) Encode(c codec.Codec, generate func() map[string]any) ([]byte, error) {
	return c.Encode(e.Document(generate))
}

// warnRemaining records one warning per leaf key left in m. Non-empty objects
// are descended into instead of being reported. Only the top-level static key
// is exempt; a nested key of that name is an ordinary leftover.
func warnRemaining(m map[string]any, p PathRef, out *Issues) {
	top := p.Name() == ""
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if child, ok := m[k].(map[string]any); ok && len(child) > 0 {
			warnRemaining(child, p.Field(k), out)
			continue
		}
		if top && k == StaticKey {
			continue
		}
		iss := p.Field(k).Issue(CodeUnknownKey, map[string]string{"field": k})
		*out = append(*out, iss)
	}
}

func codecOptions(opt ParseOpt) codec.Options {
	o := codec.Options{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes}
	switch opt.Strictness.OnDuplicateKey {
	case Warn:
		o.OnDuplicate = codec.DupWarn
	case Error:
		o.OnDuplicate = codec.DupError
	}
	return o
}

func noticeIssue(n codec.Notice) Issue { return At(n.Path).Issue(n.Code, nil) }

func decodeIssues(err error) error {
	var ce *codec.Error
	if errors.As(err, &ce) {
		p := At(ce.Path)
		msg := i18n.T(ce.Code, map[string]string{"field": p.Name()}) + ": " + ce.Err.Error()
		return Issues{{Path: p.Pointer(), Code: ce.Code, Message: msg, Cause: err}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}
