package field

import (
	opentrackio "github.com/reoring/opentrackio"
)

// Policy decides when an encoder triplet counts as present.
type Policy int

const (
	// All requires focus, iris and zoom.
	All Policy = iota
	// Any requires at least one of them.
	Any
)

// Triplet is a focus/iris/zoom encoder composite.
type Triplet[T Kind] struct {
	Focus *T
	Iris  *T
	Zoom  *T
}

var tripletKeys = [3]string{"focus", "iris", "zoom"}

// ParseTriplet extracts an encoder composite under the given policy. Every
// sub-field that is present must convert; otherwise the composite is absent.
func ParseTriplet[T Kind](o *Object, name string, policy Policy) *Triplet[T] {
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	present := 0
	for _, k := range tripletKeys {
		if c.Has(k) {
			present++
		}
	}
	if policy == All && !c.Require(tripletKeys[:]...) {
		o.Remove(name)
		return nil
	}
	if present == 0 {
		o.Fail(name, opentrackio.CodeRequired, nil, "anyOf", tripletKeys[:])
		o.Remove(name)
		return nil
	}
	t := &Triplet[T]{
		Focus: Opt[T](c, "focus"),
		Iris:  Opt[T](c, "iris"),
		Zoom:  Opt[T](c, "zoom"),
	}
	got := 0
	for _, p := range []*T{t.Focus, t.Iris, t.Zoom} {
		if p != nil {
			got++
		}
	}
	ok = got == present
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return t
}

// Document renders the populated sub-fields.
func (t Triplet[T]) Document() map[string]any {
	m := map[string]any{}
	Put(m, "focus", t.Focus)
	Put(m, "iris", t.Iris)
	Put(m, "zoom", t.Zoom)
	return m
}
