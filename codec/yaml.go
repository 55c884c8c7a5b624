package codec

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML returns a text codec for documents authored as YAML. Only the first
// document of a stream is read. Integers decode to int, floats to float64.
// yaml.v3 always rejects duplicate mapping keys.
func YAML() Codec { return yamlCodec{} }

type yamlCodec struct{}

func (yamlCodec) Name() string        { return "yaml" }
func (yamlCodec) ContentType() string { return "application/yaml" }

func (c yamlCodec) Decode(data []byte, opt Options) (any, []Notice, error) {
	if err := tooLarge(c.Name(), data, opt); err != nil {
		return nil, nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, &Error{Format: c.Name(), Code: "parse_error", Path: "/", Err: io.ErrUnexpectedEOF}
	}
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, nil, &Error{Format: c.Name(), Code: "parse_error", Path: "/", Err: err}
	}
	if opt.MaxDepth > 0 && depth(node) > opt.MaxDepth {
		return nil, nil, &Error{Format: c.Name(), Code: "parse_error", Path: "/", Err: fmt.Errorf("max depth %d exceeded", opt.MaxDepth)}
	}
	return yamlNormalizeValue(node), nil, nil
}

func (yamlCodec) Encode(doc any) ([]byte, error) { return yaml.Marshal(doc) }

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-string keys are rendered with
// fmt.Sprint.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

func depth(v any) int {
	d := 0
	switch t := v.(type) {
	case map[string]any:
		for _, vv := range t {
			d = max(d, depth(vv))
		}
		return d + 1
	case map[any]any:
		for _, vv := range t {
			d = max(d, depth(vv))
		}
		return d + 1
	case []any:
		for _, vv := range t {
			d = max(d, depth(vv))
		}
		return d + 1
	}
	return 0
}
