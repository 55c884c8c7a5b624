package types

import "github.com/reoring/opentrackio/field"

// Dimensions is a width/height pair: millimetres as float64 for physical
// sensor size, pixels as uint32 for resolution.
type Dimensions[T float64 | uint32] struct {
	Width  T
	Height T
}

// ParseDimensions reads {width, height} of type T.
func ParseDimensions[T float64 | uint32](o *field.Object, name string) *Dimensions[T] {
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("width", "height") {
		o.Remove(name)
		return nil
	}
	w := field.Opt[T](c, "width")
	h := field.Opt[T](c, "height")
	ok = w != nil && h != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &Dimensions[T]{Width: *w, Height: *h}
}

func (d Dimensions[T]) Document() map[string]any {
	return map[string]any{"width": d.Width, "height": d.Height}
}
