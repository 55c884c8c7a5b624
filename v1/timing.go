package v1

import (
	"time"

	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Timing modes.
const (
	ModeInternal = "internal"
	ModeExternal = "external"
)

// MaxTimestampSeconds is the largest value a 48-bit PTP seconds field holds.
const MaxTimestampSeconds = 1<<48 - 1

// Timing describes when and how the sample was produced.
type Timing struct {
	Mode              *string
	RecordedTimestamp *Timestamp
	SampleRate        *types.Rational
	SampleTimestamp   *Timestamp
	SequenceNumber    *uint16
	Synchronization   *Synchronization
	Timecode          *Timecode
}

// Timestamp is a PTP-style instant: seconds since the epoch plus nanoseconds.
type Timestamp struct {
	Seconds     uint64
	Nanoseconds uint32
}

// Timecode is a SMPTE timecode with its frame rate.
type Timecode struct {
	Hours     uint8
	Minutes   uint8
	Seconds   uint8
	Frames    uint8
	FrameRate types.Rational
	DropFrame bool
	SubFrame  *uint32
}

var (
	secondsBounds = field.Bounds[uint64]{Max: MaxTimestampSeconds}
	hoursBounds   = field.Bounds[uint8]{Max: 23}
	sixtyBounds   = field.Bounds[uint8]{Max: 59}
	framesBounds  = field.Bounds[uint8]{Max: 119}
)

func parseTiming(root *field.Object) *Timing {
	c, ok := root.Object("timing")
	if !ok {
		return nil
	}
	t := &Timing{
		Mode:              field.Enum(c, "mode", ModeInternal, ModeExternal),
		RecordedTimestamp: parseTimestamp(c, "recordedTimestamp"),
		SampleRate:        types.ParseRational(c, "sampleRate"),
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
	ok = s != nil && ns != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &Timestamp{Seconds: *s, Nanoseconds: *ns}
}

func parseTimecode(o *field.Object) *Timecode {
	const name = "timecode"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("hours", "minutes", "seconds", "frames", "frameRate", "dropFrame") {
		o.Remove(name)
		return nil
	}
	h := hoursBounds.Check(c, "hours", field.Opt[uint8](c, "hours"))
	m := sixtyBounds.Check(c, "minutes", field.Opt[uint8](c, "minutes"))
	s := sixtyBounds.Check(c, "seconds", field.Opt[uint8](c, "seconds"))
	f := framesBounds.Check(c, "frames", field.Opt[uint8](c, "frames"))
	rate := types.ParseRational(c, "frameRate")
	drop := field.Opt[bool](c, "dropFrame")
	sub := field.Opt[uint32](c, "subFrame")
	ok = h != nil && m != nil && s != nil && f != nil && rate != nil && drop != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &Timecode{Hours: *h, Minutes: *m, Seconds: *s, Frames: *f, FrameRate: *rate, DropFrame: *drop, SubFrame: sub}
}

// Time converts the timestamp to a time.Time, reading Seconds as Unix seconds.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t.Seconds), int64(t.Nanoseconds)).UTC()
}

func (t Timestamp) Document() map[string]any {
	return map[string]any{"seconds": t.Seconds, "nanoseconds": t.Nanoseconds}
}

func (tc Timecode) Document() map[string]any {
	m := map[string]any{
		"hours":     tc.Hours,
		"minutes":   tc.Minutes,
		"seconds":   tc.Seconds,
		"frames":    tc.Frames,
		"frameRate": tc.FrameRate.Document(),
		"dropFrame": tc.DropFrame,
	}
	field.Put(m, "subFrame", tc.SubFrame)
	return m
}

func (t Timing) Document() map[string]any {
	m := map[string]any{}
	field.Put(m, "mode", t.Mode)
	field.PutDoc(m, "recordedTimestamp", t.RecordedTimestamp)
	field.PutDoc(m, "sampleRate", t.SampleRate)
	field.PutDoc(m, "sampleTimestamp", t.SampleTimestamp)
	field.Put(m, "sequenceNumber", t.SequenceNumber)
	field.PutDoc(m, "synchronization", t.Synchronization)
	field.PutDoc(m, "timecode", t.Timecode)
	return m
}
