// Package gojson provides a JSON token source backed by goccy/go-json. It is
// the default text decoder used by the codec package.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/opentrackio/internal/engine"
)

type source struct {
	dec    *j.Decoder
	framer eng.Framer
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	if d, ok := tok.(j.Delim); ok {
		switch d {
		case '{':
			s.framer.Open(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '[':
			s.framer.Open(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		case '}':
			s.framer.Close()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		default:
			s.framer.Close()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	}
	return s.framer.Scalar(tok, -1, number), nil
}

// Location is unknown for the go-json decoder; byte limits are checked by the
// caller against the input length.
func (s *source) Location() int64 { return -1 }

func number(v any) (string, bool) {
	switch n := v.(type) {
	case j.Number:
		return string(n), true
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), true
	}
	return "", false
}
