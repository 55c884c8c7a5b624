package field

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	opentrackio "github.com/reoring/opentrackio"
)

// Kind is the closed set of scalar types a field can hold.
type Kind interface {
	float64 | uint8 | uint16 | uint32 | uint64 | string | bool
}

// Label is the type name used in invalid_type messages.
func Label[T Kind]() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "double"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case string:
		return "string"
	default:
		return "bool"
	}
}

// Convert turns a document node into T. Integer kinds accept integral numbers
// within their range only.
func Convert[T Kind](v any) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		f, ok := opentrackio.Float64(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return out, false
		}
		*p = f
	case *uint8:
		u, ok := uintOf(v, math.MaxUint8)
		if !ok {
			return out, false
		}
		*p = uint8(u)
	case *uint16:
		u, ok := uintOf(v, math.MaxUint16)
		if !ok {
			return out, false
		}
		*p = uint16(u)
	case *uint32:
		u, ok := uintOf(v, math.MaxUint32)
		if !ok {
			return out, false
		}
		*p = uint32(u)
	case *uint64:
		u, ok := opentrackio.Uint64(v)
		if !ok {
			return out, false
		}
		*p = u
	case *string:
		s, ok := v.(string)
		if !ok {
			return out, false
		}
		*p = s
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return out, false
		}
		*p = b
	}
	return out, true
}

func uintOf(v any, limit uint64) (uint64, bool) {
	u, ok := opentrackio.Uint64(v)
	if !ok || u > limit {
		return 0, false
	}
	return u, true
}

// Opt extracts an optional scalar. The key is removed whenever it was present.
func Opt[T Kind](o *Object, name string) *T {
	v, ok := o.m[name]
	if !ok {
		return nil
	}
	o.Remove(name)
	out, ok := Convert[T](v)
	if !ok {
		o.Fail(name, opentrackio.CodeInvalidType, map[string]string{"type": Label[T]()})
		return nil
	}
	return &out
}

// Regex extracts an optional string that must match re.
func Regex(o *Object, name string, re *regexp.Regexp) *string {
	s := Opt[string](o, name)
	if s == nil || re.MatchString(*s) {
		return s
	}
	o.Fail(name, opentrackio.CodePattern, nil, "pattern", re.String())
	return nil
}

// Enum extracts an optional string restricted to allowed.
func Enum(o *Object, name string, allowed ...string) *string {
	s := Opt[string](o, name)
	if s == nil || slices.Contains(allowed, *s) {
		return s
	}
	o.Fail(name, opentrackio.CodeInvalidEnum, nil, "allowed", strings.Join(allowed, "|"))
	return nil
}

// Bounds is an inclusive numeric range, optionally open at the bottom.
type Bounds[T float64 | uint8 | uint16 | uint32 | uint64] struct {
	Min, Max     T
	ExclusiveMin bool
}

// Check returns v when it lies within b; otherwise it records a range issue
// against name and returns nil.
func (b Bounds[T]) Check(o *Object, name string, v *T) *T {
	if v == nil {
		return nil
	}
	data := map[string]string{"min": fmt.Sprint(b.Min), "max": fmt.Sprint(b.Max)}
	if *v < b.Min || (b.ExclusiveMin && *v == b.Min) {
		o.Fail(name, opentrackio.CodeTooSmall, data, "min", b.Min, "got", *v)
		return nil
	}
	if *v > b.Max {
		o.Fail(name, opentrackio.CodeTooBig, data, "max", b.Max, "got", *v)
		return nil
	}
	return v
}
