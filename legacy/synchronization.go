package legacy

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Synchronization requires frequency, locked and source in this layout.
type Synchronization struct {
	Frequency types.Rational
	Locked    bool
	Source    string
	Offsets   *Offsets
	Present   *bool
	PTP       *PTP
}

type Offsets struct {
	Translation  *float64
	Rotation     *float64
	LensEncoders *float64
}

// PTP names the leader clock by MAC address. It is absent when none of its
// members parsed.
type PTP struct {
	Master *string
	Offset *float64
	Domain *uint8
}

func parseSynchronization(o *field.Object) *Synchronization {
	const name = "synchronization"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("frequency", "locked", "source") {
		o.Remove(name)
		return nil
	}
	freq := types.ParseRational(c, "frequency")
	locked := field.Opt[bool](c, "locked")
	source := field.Enum(c, "source", "genlock", "videoIn", "ptp", "ntp")
	if freq == nil || locked == nil || source == nil {
		o.Remove(name)
		return nil
	}
	s := &Synchronization{
		Frequency: *freq,
		Locked:    *locked,
		Source:    *source,
		Offsets:   parseOffsets(c),
		Present:   field.Opt[bool](c, "present"),
		PTP:       parsePTP(c),
	}
	o.Done(name, true)
	return s
}

func parseOffsets(o *field.Object) *Offsets {
	c, ok := o.Object("offsets")
	if !ok {
		return nil
	}
	off := &Offsets{
		Translation:  field.Opt[float64](c, "translation"),
		Rotation:     field.Opt[float64](c, "rotation"),
		LensEncoders: field.Opt[float64](c, "lensEncoders"),
	}
	o.Done("offsets", true)
	if off.Translation == nil && off.Rotation == nil && off.LensEncoders == nil {
		return nil
	}
	return off
}

func parsePTP(o *field.Object) *PTP {
	c, ok := o.Object("ptp")
	if !ok {
		return nil
	}
	p := &PTP{
		Master: field.Regex(c, "master", field.MACAddress),
		Offset: field.Opt[float64](c, "offset"),
		Domain: field.Opt[uint8](c, "domain"),
	}
	o.Done("ptp", true)
	if p.Master == nil && p.Offset == nil && p.Domain == nil {
		return nil
	}
	return p
}

func (s Synchronization) Document() map[string]any {
	m := map[string]any{"frequency": s.Frequency.Document(), "locked": s.Locked, "source": s.Source}
	field.PutDoc(m, "offsets", s.Offsets)
	field.Put(m, "present", s.Present)
	field.PutDoc(m, "ptp", s.PTP)
	return m
}

func (o Offsets) Document() map[string]any {
	m := map[string]any{}
	field.Put(m, "translation", o.Translation)
	field.Put(m, "rotation", o.Rotation)
	field.Put(m, "lensEncoders", o.LensEncoders)
	return m
}

func (p PTP) Document() map[string]any {
	m := map[string]any{}
	field.Put(m, "master", p.Master)
	field.Put(m, "offset", p.Offset)
	field.Put(m, "domain", p.Domain)
	return m
}
