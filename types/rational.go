package types

import (
	"fmt"

	"github.com/reoring/opentrackio/field"
)

// Rational is an exact fraction such as a frame rate of 24000/1001.
type Rational struct {
	Num   uint32
	Denom uint32
}

// ParseRational reads {num, denom}; both are required unsigned integers.
func ParseRational(o *field.Object, name string) *Rational {
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("num", "denom") {
		o.Remove(name)
		return nil
	}
	num := field.Opt[uint32](c, "num")
	denom := field.Opt[uint32](c, "denom")
	ok = num != nil && denom != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &Rational{Num: *num, Denom: *denom}
}

// Float64 returns the value of the fraction. A zero denominator yields +Inf.
func (r Rational) Float64() float64 { return float64(r.Num) / float64(r.Denom) }

func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.Num, r.Denom) }

func (r Rational) Document() map[string]any {
	return map[string]any{"num": r.Num, "denom": r.Denom}
}
