package v1

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Synchronization sources.
const (
	SourceGenlock = "genlock"
	SourceVideoIn = "videoIn"
	SourcePTP     = "ptp"
	SourceNTP     = "ntp"
)

// PTP profiles.
const (
	ProfileIEEE1588   = "IEEE Std 1588-2019"
	ProfileIEEE8021AS = "IEEE Std 802.1AS-2020"
	ProfileST2059     = "SMPTE ST2059-2:2021"
)

// PTP leader time sources.
const (
	TimeSourceGNSS   = "GNSS"
	TimeSourceAtomic = "Atomic clock"
	TimeSourceNTP    = "NTP"
)

// Synchronization describes how the producing device was locked to a
// reference. Locked and Source are mandatory.
type Synchronization struct {
	Locked    bool
	Source    string
	Frequency *types.Rational
	Offsets   *Offsets
	Present   *bool
	PTP       *PTP
}

// Offsets are latencies, in seconds, between the reference and the data.
type Offsets struct {
	Translation  *float64
	Rotation     *float64
	LensEncoders *float64
}

// PTP describes the Precision Time Protocol leader the device followed. All
// fields except VLAN and LeaderTimeSource are required once ptp is present.
type PTP struct {
	Profile          string
	Domain           uint8
	LeaderIdentity   string
	LeaderPriorities LeaderPriorities
	LeaderAccuracy   float64 // seconds
	MeanPathDelay    float64 // seconds
	VLAN             *uint16
	LeaderTimeSource *string
}

// LeaderPriorities are the PTP priority1/priority2 attributes of the leader.
type LeaderPriorities struct {
	Priority1 uint8
	Priority2 uint8
}

var domainBounds = field.Bounds[uint8]{Max: 127}

func parseSynchronization(o *field.Object) *Synchronization {
	const name = "synchronization"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("locked", "source") {
		o.Remove(name)
		return nil
	}
	locked := field.Opt[bool](c, "locked")
	source := field.Enum(c, "source", SourceGenlock, SourceVideoIn, SourcePTP, SourceNTP)
	if locked == nil || source == nil {
		o.Remove(name)
		return nil
	}
	s := &Synchronization{
		Locked:    *locked,
		Source:    *source,
		Frequency: types.ParseRational(c, "frequency"),
		Offsets:   parseOffsets(c),
		Present:   field.Opt[bool](c, "present"),
		PTP:       parsePTP(c),
	}
	o.Done(name, true)
	return s
}

func parseOffsets(o *field.Object) *Offsets {
	const name = "offsets"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	off := &Offsets{
		Translation:  field.Opt[float64](c, "translation"),
		Rotation:     field.Opt[float64](c, "rotation"),
		LensEncoders: field.Opt[float64](c, "lensEncoders"),
	}
	o.Done(name, true)
	if off.Translation == nil && off.Rotation == nil && off.LensEncoders == nil {
		return nil
	}
	return off
}

func parsePTP(o *field.Object) *PTP {
	const name = "ptp"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("profile", "domain", "leaderIdentity", "leaderPriorities", "leaderAccuracy", "meanPathDelay") {
		o.Remove(name)
		return nil
	}
	profile := field.Enum(c, "profile", ProfileIEEE1588, ProfileIEEE8021AS, ProfileST2059)
	domain := domainBounds.Check(c, "domain", field.Opt[uint8](c, "domain"))
	leader := field.Regex(c, "leaderIdentity", field.MACAddress)
	prio := parseLeaderPriorities(c)
	accuracy := field.Opt[float64](c, "leaderAccuracy")
	delay := field.Opt[float64](c, "meanPathDelay")
	p := &PTP{
		VLAN:             field.Opt[uint16](c, "vlan"),
		LeaderTimeSource: field.Enum(c, "leaderTimeSource", TimeSourceGNSS, TimeSourceAtomic, TimeSourceNTP),
	}
	ok = profile != nil && domain != nil && leader != nil && prio != nil && accuracy != nil && delay != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	p.Profile, p.Domain, p.LeaderIdentity = *profile, *domain, *leader
	p.LeaderPriorities, p.LeaderAccuracy, p.MeanPathDelay = *prio, *accuracy, *delay
	return p
}

func parseLeaderPriorities(o *field.Object) *LeaderPriorities {
	const name = "leaderPriorities"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("priority1", "priority2") {
		o.Remove(name)
		return nil
	}
	p1 := field.Opt[uint8](c, "priority1")
	p2 := field.Opt[uint8](c, "priority2")
	ok = p1 != nil && p2 != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &LeaderPriorities{Priority1: *p1, Priority2: *p2}
}

func (s Synchronization) Document() map[string]any {
	m := map[string]any{"locked": s.Locked, "source": s.Source}
	field.PutDoc(m, "frequency", s.Frequency)
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
	m := map[string]any{
		"profile":          p.Profile,
		"domain":           p.Domain,
		"leaderIdentity":   p.LeaderIdentity,
		"leaderPriorities": p.LeaderPriorities.Document(),
		"leaderAccuracy":   p.LeaderAccuracy,
		"meanPathDelay":    p.MeanPathDelay,
	}
	field.Put(m, "vlan", p.VLAN)
	field.Put(m, "leaderTimeSource", p.LeaderTimeSource)
	return m
}

func (lp LeaderPriorities) Document() map[string]any {
	return map[string]any{"priority1": lp.Priority1, "priority2": lp.Priority2}
}
