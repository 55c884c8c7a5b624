package field

import (
	opentrackio "github.com/reoring/opentrackio"
)

// Slice extracts an optional array of scalars. A single bad element discards
// the whole array with one issue naming that element. A present empty array
// yields a non-nil empty slice.
func Slice[T Kind](o *Object, name string) []T {
	arr, ok := o.Array(name)
	if !ok {
		return nil
	}
	o.Remove(name)
	out := make([]T, 0, len(arr))
	for i, v := range arr {
		x, ok := Convert[T](v)
		if !ok {
			o.FailAt(o.At(name).Index(i), opentrackio.CodeInvalidType, map[string]string{"type": Label[T]()})
			return nil
		}
		out = append(out, x)
	}
	return out
}

// Each visits every element of an array of objects. Elements for which fn
// returns false are dropped; the others are kept in order. The array member
// is removed afterwards. A present empty array yields a non-nil empty slice.
func Each[T any](o *Object, name string, fn func(el *Object) (T, bool)) []T {
	arr, ok := o.Array(name)
	if !ok {
		return nil
	}
	o.Remove(name)
	out := make([]T, 0, len(arr))
	for i, v := range arr {
		el, ok := o.Elem(name, i, v)
		if !ok {
			continue
		}
		if x, ok := fn(el); ok {
			out = append(out, x)
		}
	}
	return out
}

// EachRegex is the string counterpart of Each: elements that are not strings
// or do not match the pattern are dropped with an issue.
func EachRegex(o *Object, name string, match func(string) bool) []string {
	arr, ok := o.Array(name)
	if !ok {
		return nil
	}
	o.Remove(name)
	out := make([]string, 0, len(arr))
	for i, v := range arr {
		p := o.At(name).Index(i)
		s, ok := v.(string)
		if !ok {
			o.FailAt(p, opentrackio.CodeInvalidType, map[string]string{"type": "string"})
			continue
		}
		if !match(s) {
			o.FailAt(p, opentrackio.CodePattern, nil)
			continue
		}
		out = append(out, s)
	}
	return out
}
