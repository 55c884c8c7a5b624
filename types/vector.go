package types

import "github.com/reoring/opentrackio/field"

// Vector2 is a 2D offset, used for lens shifts and projection offsets.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a translation or scale in metres (or unitless for scale).
type Vector3 struct {
	X, Y, Z float64
}

// Rotation is an intrinsic ZXY Euler rotation in degrees.
type Rotation struct {
	Pan, Tilt, Roll float64
}

// ParseVector2 reads {x, y}.
func ParseVector2(o *field.Object, name string) *Vector2 {
	v, ok := floats(o, name, "x", "y")
	if !ok {
		return nil
	}
	return &Vector2{X: v[0], Y: v[1]}
}

// ParseVector3 reads {x, y, z}.
func ParseVector3(o *field.Object, name string) *Vector3 {
	v, ok := floats(o, name, "x", "y", "z")
	if !ok {
		return nil
	}
	return &Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// ParseRotation reads {pan, tilt, roll}.
func ParseRotation(o *field.Object, name string) *Rotation {
	v, ok := floats(o, name, "pan", "tilt", "roll")
	if !ok {
		return nil
	}
	return &Rotation{Pan: v[0], Tilt: v[1], Roll: v[2]}
}

func (v Vector2) Document() map[string]any { return map[string]any{"x": v.X, "y": v.Y} }

func (v Vector3) Document() map[string]any {
	return map[string]any{"x": v.X, "y": v.Y, "z": v.Z}
}

func (r Rotation) Document() map[string]any {
	return map[string]any{"pan": r.Pan, "tilt": r.Tilt, "roll": r.Roll}
}

// floats reads a composite whose members are all required doubles.
func floats(o *field.Object, name string, keys ...string) ([]float64, bool) {
	c, ok := o.Object(name)
	if !ok {
		return nil, false
	}
	if !c.Require(keys...) {
		o.Remove(name)
		return nil, false
	}
	out := make([]float64, len(keys))
	ok = true
	for i, k := range keys {
		f := field.Opt[float64](c, k)
		if f == nil {
			ok = false
			continue
		}
		out[i] = *f
	}
	o.Done(name, ok)
	return out, ok
}
