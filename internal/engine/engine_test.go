package engine_test

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"testing"

	eng "github.com/reoring/opentrackio/internal/engine"
	gojsonsrc "github.com/reoring/opentrackio/source/gojson"
	jsonsrc "github.com/reoring/opentrackio/source/json"
)

var sources = map[string]func([]byte) eng.TokenSource{
	"encoding/json": jsonsrc.NewBytes,
	"go-json":       gojsonsrc.NewBytes,
}

func TestDecodeDocument_Tree(t *testing.T) {
	for name, newSrc := range sources {
		t.Run(name, func(t *testing.T) {
			v, err := eng.DecodeDocument(newSrc([]byte(`{"timing": {"sampleRate": {"num": 24000, "denom": 1001}}, "custom": [1.5, "x", true, null], "empty": []}`)))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			root, ok := v.(map[string]any)
			if !ok {
				t.Fatalf("expected object, got %T", v)
			}
			rate := root["timing"].(map[string]any)["sampleRate"].(map[string]any)
			if rate["num"] != json.Number("24000") {
				t.Fatalf("expected json.Number 24000, got %#v", rate["num"])
			}
			custom := root["custom"].([]any)
			if len(custom) != 4 || custom[0] != json.Number("1.5") || custom[1] != "x" || custom[2] != true || custom[3] != nil {
				t.Fatalf("unexpected array: %#v", custom)
			}
			if empty, ok := root["empty"].([]any); !ok || empty == nil || len(empty) != 0 {
				t.Fatalf("expected non-nil empty array, got %#v", root["empty"])
			}
		})
	}
}

func TestDecodeDocument_EmptyInput(t *testing.T) {
	for name, newSrc := range sources {
		t.Run(name, func(t *testing.T) {
			if _, err := eng.DecodeDocument(newSrc(nil)); !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
			}
		})
	}
}

func TestDecodeDocument_TrailingData(t *testing.T) {
	for name, newSrc := range sources {
		t.Run(name, func(t *testing.T) {
			if _, err := eng.DecodeDocument(newSrc([]byte(`{"a": 1} 2`))); !errors.Is(err, eng.ErrTrailingData) {
				t.Fatalf("expected ErrTrailingData, got %v", err)
			}
		})
	}
}

func TestDecodeDocument_Truncated(t *testing.T) {
	for name, newSrc := range sources {
		t.Run(name, func(t *testing.T) {
			if _, err := eng.DecodeDocument(newSrc([]byte(`{"a": [1, 2`))); err == nil {
				t.Fatalf("expected error for truncated input")
			}
		})
	}
}

func TestEnforcement_DuplicateKey_Error(t *testing.T) {
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`[{"a":1,"a":2}]`)), eng.EnforceOptions{OnDuplicate: eng.DupError})
	_, err := eng.DecodeDocument(src)
	var ie eng.IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != "duplicate_key" {
		t.Fatalf("expected duplicate_key, got %s", ie.Code)
	}
	if ie.Path != "/0/a" {
		t.Fatalf("expected path=/0/a, got: %s", ie.Path)
	}
}

func TestEnforcement_DuplicateKey_Warn(t *testing.T) {
	var got []eng.SimpleIssue
	src := eng.WrapWithEnforcement(gojsonsrc.NewBytes([]byte(`{"lens": {"fStop": 1, "fStop": 2}, "lens2": {"fStop": 3}}`)), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink:   func(si eng.SimpleIssue) { got = append(got, si) },
	})
	v, err := eng.DecodeDocument(src)
	if err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if len(got) != 1 || got[0].Path != "/lens/fStop" {
		t.Fatalf("unexpected issues: %+v", got)
	}
	lens := v.(map[string]any)["lens"].(map[string]any)
	if lens["fStop"] != json.Number("2") {
		t.Fatalf("expected last value to win, got %#v", lens["fStop"])
	}
}

func TestEnforcement_MaxDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	data := []byte(`{"a":{"b":{"c":1}}}`)
	src := eng.WrapWithEnforcement(gojsonsrc.NewBytes(data), eng.EnforceOptions{MaxDepth: 2})
	if _, err := eng.DecodeDocument(src); err == nil {
		t.Fatalf("expected max depth error")
	}
	src = eng.WrapWithEnforcement(gojsonsrc.NewBytes(data), eng.EnforceOptions{MaxDepth: 3})
	if _, err := eng.DecodeDocument(src); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
}

func TestEnforcement_MaxBytes(t *testing.T) {
	data := []byte(`{"notes": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}`)
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes(data), eng.EnforceOptions{MaxBytes: 8})
	_, err := eng.DecodeDocument(src)
	var ie eng.IssueError
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestFramer_KeysAndValues(t *testing.T) {
	var f eng.Framer
	number := func(v any) (string, bool) {
		n, ok := v.(float64)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}

	f.Open(true)
	if tok := f.Scalar("name", 1, number); tok.Kind != eng.KindKey {
		t.Fatalf("first string in object should be a key, got %v", tok.Kind)
	}
	if tok := f.Scalar("OpenTrackIO", 2, number); tok.Kind != eng.KindString {
		t.Fatalf("second string should be a value, got %v", tok.Kind)
	}
	if tok := f.Scalar("version", 3, number); tok.Kind != eng.KindKey {
		t.Fatalf("expected key after value, got %v", tok.Kind)
	}
	f.Open(false)
	if tok := f.Scalar("x", 4, number); tok.Kind != eng.KindString {
		t.Fatalf("strings inside arrays are values, got %v", tok.Kind)
	}
	if tok := f.Scalar(float64(1), 5, number); tok.Kind != eng.KindNumber || tok.Number != "1" {
		t.Fatalf("expected number 1, got %+v", tok)
	}
	f.Close()
	if tok := f.Scalar("next", 6, number); tok.Kind != eng.KindKey {
		t.Fatalf("closed array should count as a value, got %v", tok.Kind)
	}
	if tok := f.Scalar(nil, 7, number); tok.Kind != eng.KindNull {
		t.Fatalf("expected null, got %v", tok.Kind)
	}
}
