package legacy

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

const maxTimestampSeconds = 1<<48 - 1

type Timing struct {
	FrameRate         *types.Rational
	Mode              *string
	RecordedTimestamp *Timestamp
	SampleTimestamp   *Timestamp
	SequenceNumber    *uint16
	Synchronization   *Synchronization
	Timecode          *Timecode
}

// Timestamp is a PTP instant with optional attoseconds, which default to zero.
type Timestamp struct {
	Seconds     uint64
	Nanoseconds uint32
	Attoseconds uint32
}

// Timecode nests its rate and drop-frame flag under Format.
type Timecode struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
	Frames  uint8
	Format  TimecodeFormat
}

type TimecodeFormat struct {
	FrameRate types.Rational
	DropFrame bool
	OddField  *bool
}

var secondsBounds = field.Bounds[uint64]{Max: maxTimestampSeconds}

func parseTiming(root *field.Object) *Timing {
	c, ok := root.Object("timing")
	if !ok {
		return nil
	}
	t := &Timing{
		FrameRate:         types.ParseRational(c, "frameRate"),
		Mode:              field.Enum(c, "mode", "internal", "external"),
		RecordedTimestamp: parseTimestamp(c, "recordedTimestamp"),
		SampleTimestamp:   parseTimestamp(c, "sampleTimestamp"),
		SequenceNumber:    field.Opt[uint16](c, "sequenceNumber"),
		Synchronization:   parseSynchronization(c),
		Timecode:          parseTimecode(c),
	}
	root.RemoveIfEmpty("timing")
	return t
}

func parseTimestamp(o *field.Object, name string) *Timestamp {
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("seconds", "nanoseconds") {
		o.Remove(name)
		return nil
	}
	s := secondsBounds.Check(c, "seconds", field.Opt[uint64](c, "seconds"))
	ns := field.Opt[uint32](c, "nanoseconds")
	as := field.Opt[uint32](c, "attoseconds")
	ok = s != nil && ns != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	ts := &Timestamp{Seconds: *s, Nanoseconds: *ns}
	if as != nil {
		ts.Attoseconds = *as
	}
	return ts
}

func parseTimecode(o *field.Object) *Timecode {
	const name = "timecode"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("hours", "minutes", "seconds", "frames", "format") {
		o.Remove(name)
		return nil
	}
	h := field.Opt[uint8](c, "hours")
	m := field.Opt[uint8](c, "minutes")
	s := field.Opt[uint8](c, "seconds")
	f := field.Opt[uint8](c, "frames")
	format := parseTimecodeFormat(c)
	ok = h != nil && m != nil && s != nil && f != nil && format != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &Timecode{Hours: *h, Minutes: *m, Seconds: *s, Frames: *f, Format: *format}
}

func parseTimecodeFormat(o *field.Object) *TimecodeFormat {
	const name = "format"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("frameRate", "dropFrame") {
		o.Remove(name)
		return nil
	}
	rate := types.ParseRational(c, "frameRate")
	drop := field.Opt[bool](c, "dropFrame")
	odd := field.Opt[bool](c, "oddField")
	ok = rate != nil && drop != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &TimecodeFormat{FrameRate: *rate, DropFrame: *drop, OddField: odd}
}

func (t Timestamp) Document() map[string]any {
	return map[string]any{"seconds": t.Seconds, "nanoseconds": t.Nanoseconds, "attoseconds": t.Attoseconds}
}

func (tc Timecode) Document() map[string]any {
	return map[string]any{
		"hours":   tc.Hours,
		"minutes": tc.Minutes,
		"seconds": tc.Seconds,
		"frames":  tc.Frames,
		"format":  tc.Format.Document(),
	}
}

func (f TimecodeFormat) Document() map[string]any {
	m := map[string]any{"frameRate": f.FrameRate.Document(), "dropFrame": f.DropFrame}
	field.Put(m, "oddField", f.OddField)
	return m
}

func (t Timing) Document() map[string]any {
	m := map[string]any{}
	field.PutDoc(m, "frameRate", t.FrameRate)
	field.Put(m, "mode", t.Mode)
	field.PutDoc(m, "recordedTimestamp", t.RecordedTimestamp)
	field.PutDoc(m, "sampleTimestamp", t.SampleTimestamp)
	field.Put(m, "sequenceNumber", t.SequenceNumber)
	field.PutDoc(m, "synchronization", t.Synchronization)
	field.PutDoc(m, "timecode", t.Timecode)
	return m
}
