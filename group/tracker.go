package group

import "github.com/reoring/opentrackio/field"

// Tracker describes the tracking device. Identity fields live under
// static.tracker, per-sample state under tracker.
type Tracker struct {
	// static
	FirmwareVersion *string
	Make            *string
	Model           *string
	SerialNumber    *string

	// dynamic
	Notes     *string
	Recording *bool
	Slate     *string
	Status    *string
}

// ParseTracker reads static.tracker and tracker. It returns nil when neither
// container is present.
func ParseTracker(root *field.Object) *Tracker {
	st, hasStatic := root.Static("tracker")
	dyn, hasDynamic := root.Object("tracker")
	if !hasStatic && !hasDynamic {
		return nil
	}
	t := &Tracker{}
	if hasStatic {
		t.FirmwareVersion = field.Opt[string](st, "firmwareVersion")
		t.Make = field.Opt[string](st, "make")
		t.Model = field.Opt[string](st, "model")
		t.SerialNumber = field.Opt[string](st, "serialNumber")
		root.DoneStatic("tracker")
	}
	if hasDynamic {
		t.Notes = field.Opt[string](dyn, "notes")
		t.Recording = field.Opt[bool](dyn, "recording")
		t.Slate = field.Opt[string](dyn, "slate")
		t.Status = field.Opt[string](dyn, "status")
		root.RemoveIfEmpty("tracker")
	}
	return t
}

// StaticDocument renders the static.tracker members.
func (t Tracker) StaticDocument() map[string]any {
	m := map[string]any{}
	field.Put(m, "firmwareVersion", t.FirmwareVersion)
	field.Put(m, "make", t.Make)
	field.Put(m, "model", t.Model)
	field.Put(m, "serialNumber", t.SerialNumber)
	return m
}

// Document renders the dynamic tracker members.
func (t Tracker) Document() map[string]any {
	m := map[string]any{}
	field.Put(m, "notes", t.Notes)
	field.Put(m, "recording", t.Recording)
	field.Put(m, "slate", t.Slate)
	field.Put(m, "status", t.Status)
	return m
}
