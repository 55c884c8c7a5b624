package types

import "github.com/reoring/opentrackio/field"

// ExposureFalloff holds the vignetting polynomial coefficients. A1 is
// required.
type ExposureFalloff struct {
	A1 float64
	A2 *float64
	A3 *float64
}

// ParseExposureFalloff reads {a1, a2?, a3?}.
func ParseExposureFalloff(o *field.Object, name string) *ExposureFalloff {
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("a1") {
		o.Remove(name)
		return nil
	}
	a1 := field.Opt[float64](c, "a1")
	ef := &ExposureFalloff{A2: field.Opt[float64](c, "a2"), A3: field.Opt[float64](c, "a3")}
	o.Done(name, a1 != nil)
	if a1 == nil {
		return nil
	}
	ef.A1 = *a1
	return ef
}

func (e ExposureFalloff) Document() map[string]any {
	m := map[string]any{"a1": e.A1}
	field.Put(m, "a2", e.A2)
	field.Put(m, "a3", e.A3)
	return m
}
