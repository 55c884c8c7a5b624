package codec

import (
	"encoding/json"
	"errors"

	gojson "github.com/goccy/go-json"

	eng "github.com/reoring/opentrackio/internal/engine"
	gojsonsrc "github.com/reoring/opentrackio/source/gojson"
	jsonsrc "github.com/reoring/opentrackio/source/json"
)

// JSON returns the default JSON codec, tokenizing with goccy/go-json.
// Numbers decode to json.Number.
func JSON() Codec {
	return jsonCodec{name: "json", source: gojsonsrc.NewBytes, valid: gojson.Valid, marshal: gojson.Marshal}
}

// StdJSON is the same codec backed by encoding/json. It reports byte offsets
// through the engine and is useful when comparing decoders.
func StdJSON() Codec {
	return jsonCodec{name: "json-std", source: jsonsrc.NewBytes, valid: json.Valid, marshal: json.Marshal}
}

type jsonCodec struct {
	name    string
	source  func([]byte) eng.TokenSource
	valid   func([]byte) bool
	marshal func(any) ([]byte, error)
}

func (c jsonCodec) Name() string        { return c.name }
func (c jsonCodec) ContentType() string { return "application/json" }

func (c jsonCodec) Decode(data []byte, opt Options) (any, []Notice, error) {
	if err := tooLarge(c.name, data, opt); err != nil {
		return nil, nil, err
	}
	// token readers do not check separators; the framer would guess keys by position
	if !c.valid(data) {
		return nil, nil, &Error{Format: c.name, Code: "parse_error", Path: "/", Err: errMalformed}
	}
	var notices []Notice
	src := eng.WrapWithEnforcement(c.source(data), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.OnDuplicate),
		MaxDepth:    opt.MaxDepth,
		IssueSink: func(si eng.SimpleIssue) {
			notices = append(notices, Notice{Code: si.Code, Path: si.Path, Message: si.Message})
		},
	})
	doc, err := eng.DecodeDocument(src)
	if err != nil {
		var ie eng.IssueError
		if errors.As(err, &ie) {
			return nil, nil, &Error{Format: c.name, Code: ie.Code, Path: ie.Path, Err: err}
		}
		return nil, nil, &Error{Format: c.name, Code: "parse_error", Path: "/", Err: err}
	}
	return doc, notices, nil
}

var errMalformed = errors.New("malformed JSON text")

func (c jsonCodec) Encode(doc any) ([]byte, error) { return c.marshal(doc) }

func toEngineDup(d Duplicates) eng.DuplicateStrictness {
	switch d {
	case DupError:
		return eng.DupError
	case DupWarn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
