package codec

import (
	"errors"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBOR returns the binary codec. Maps decode to map[string]any; unsigned
// integers decode to uint64, negative integers to int64 and floats to float64.
//
// CBOR has no warn mode for duplicate keys: DupWarn behaves like DupIgnore
// (the last value wins) and DupError rejects the document.
func CBOR() Codec { return cborCodec{} }

type cborCodec struct{}

var encMode, _ = cbor.CanonicalEncOptions().EncMode()

func (cborCodec) Name() string        { return "cbor" }
func (cborCodec) ContentType() string { return "application/cbor" }

func (c cborCodec) Decode(data []byte, opt Options) (any, []Notice, error) {
	if err := tooLarge(c.Name(), data, opt); err != nil {
		return nil, nil, err
	}
	dopt := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		DupMapKey:      cbor.DupMapKeyQuiet,
	}
	if opt.OnDuplicate == DupError {
		dopt.DupMapKey = cbor.DupMapKeyEnforcedAPF
	}
	if opt.MaxDepth > 0 {
		// the decoder accepts limits between 4 and 65535
		dopt.MaxNestedLevels = max(4, min(opt.MaxDepth, 65535))
	}
	dm, err := dopt.DecMode()
	if err != nil {
		return nil, nil, &Error{Format: c.Name(), Code: "parse_error", Err: err}
	}
	var doc any
	if err := dm.Unmarshal(data, &doc); err != nil {
		code := "parse_error"
		var dup *cbor.DupMapKeyError
		if errors.As(err, &dup) {
			code = "duplicate_key"
		}
		return nil, nil, &Error{Format: c.Name(), Code: code, Path: "/", Err: err}
	}
	return doc, nil, nil
}

func (cborCodec) Encode(doc any) ([]byte, error) { return encMode.Marshal(doc) }
