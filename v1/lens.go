package v1

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Lens combines the static lens identity with per-sample optics.
type Lens struct {
	// static
	CalibrationHistory      []string
	DistortionOverscanMax   *float64
	UndistortionOverscanMax *float64
	FirmwareVersion         *string
	Make                    *string
	Model                   *string
	NominalFocalLength      *float64 // millimetres
	SerialNumber            *string

	// dynamic
	Custom               []float64
	Distortion           []Distortion
	Undistortion         []Distortion
	DistortionOffset     *types.Vector2 // millimetres
	DistortionOverscan   *float64
	UndistortionOverscan *float64
	Encoders             *field.Triplet[float64] // normalized 0..1
	EntrancePupilOffset  *float64                // metres
	ExposureFalloff      *types.ExposureFalloff
	FStop                *float64
	TStop                *float64
	PinholeFocalLength   *float64 // millimetres
	FocusDistance        *float64 // metres
	ProjectionOffset     *types.Vector2
	RawEncoders          *field.Triplet[uint32]
}

// Distortion is one distortion model with its coefficients. Radial is
// required; the others are optional.
type Distortion struct {
	Model      *string
	Radial     []float64
	Tangential []float64
	Overscan   *float64
}

func parseLens(root *field.Object) *Lens {
	st, hasStatic := root.Static("lens")
	dyn, hasDynamic := root.Object("lens")
	if !hasStatic && !hasDynamic {
		return nil
	}
	l := &Lens{}
	if hasStatic {
		l.CalibrationHistory = field.Slice[string](st, "calibrationHistory")
		l.DistortionOverscanMax = field.Opt[float64](st, "distortionOverscanMax")
		l.UndistortionOverscanMax = field.Opt[float64](st, "undistortionOverscanMax")
		l.FirmwareVersion = field.Opt[string](st, "firmwareVersion")
		l.Make = field.Opt[string](st, "make")
		l.Model = field.Opt[string](st, "model")
		l.NominalFocalLength = field.Opt[float64](st, "nominalFocalLength")
		l.SerialNumber = field.Opt[string](st, "serialNumber")
		root.DoneStatic("lens")
	}
	if hasDynamic {
		l.Custom = field.Slice[float64](dyn, "custom")
		l.Distortion = field.Each(dyn, "distortion", parseDistortion)
		l.Undistortion = field.Each(dyn, "undistortion", parseDistortion)
		l.DistortionOffset = types.ParseVector2(dyn, "distortionOffset")
		l.DistortionOverscan = field.Opt[float64](dyn, "distortionOverscan")
		l.UndistortionOverscan = field.Opt[float64](dyn, "undistortionOverscan")
		l.Encoders = field.ParseTriplet[float64](dyn, "encoders", field.Any)
		l.EntrancePupilOffset = field.Opt[float64](dyn, "entrancePupilOffset")
		l.ExposureFalloff = types.ParseExposureFalloff(dyn, "exposureFalloff")
		l.FStop = field.Opt[float64](dyn, "fStop")
		l.TStop = field.Opt[float64](dyn, "tStop")
		l.PinholeFocalLength = field.Opt[float64](dyn, "pinholeFocalLength")
		l.FocusDistance = field.Opt[float64](dyn, "focusDistance")
		l.ProjectionOffset = types.ParseVector2(dyn, "projectionOffset")
		l.RawEncoders = field.ParseTriplet[uint32](dyn, "rawEncoders", field.Any)
		root.RemoveIfEmpty("lens")
	}
	return l
}

func parseDistortion(el *field.Object) (Distortion, bool) {
	if !el.Require("radial") {
		return Distortion{}, false
	}
	d := Distortion{
		Model:      field.Opt[string](el, "model"),
		Radial:     field.Slice[float64](el, "radial"),
		Tangential: field.Slice[float64](el, "tangential"),
		Overscan:   field.Opt[float64](el, "overscan"),
	}
	return d, d.Radial != nil
}

func (d Distortion) Document() map[string]any {
	m := map[string]any{}
	field.Put(m, "model", d.Model)
	field.PutSlice(m, "radial", d.Radial)
	field.PutSlice(m, "tangential", d.Tangential)
	field.Put(m, "overscan", d.Overscan)
	return m
}

// StaticDocument renders the static.lens members.
func (l Lens) StaticDocument() map[string]any {
	m := map[string]any{}
	field.PutSlice(m, "calibrationHistory", l.CalibrationHistory)
	field.Put(m, "distortionOverscanMax", l.DistortionOverscanMax)
	field.Put(m, "undistortionOverscanMax", l.UndistortionOverscanMax)
	field.Put(m, "firmwareVersion", l.FirmwareVersion)
	field.Put(m, "make", l.Make)
	field.Put(m, "model", l.Model)
	field.Put(m, "nominalFocalLength", l.NominalFocalLength)
	field.Put(m, "serialNumber", l.SerialNumber)
	return m
}

// Document renders the dynamic lens members.
func (l Lens) Document() map[string]any {
	m := map[string]any{}
	field.PutSlice(m, "custom", l.Custom)
	field.PutDocs(m, "distortion", l.Distortion)
	field.PutDocs(m, "undistortion", l.Undistortion)
	field.PutDoc(m, "distortionOffset", l.DistortionOffset)
	field.Put(m, "distortionOverscan", l.DistortionOverscan)
	field.Put(m, "undistortionOverscan", l.UndistortionOverscan)
	field.PutDoc(m, "encoders", l.Encoders)
	field.Put(m, "entrancePupilOffset", l.EntrancePupilOffset)
	field.PutDoc(m, "exposureFalloff", l.ExposureFalloff)
	field.Put(m, "fStop", l.FStop)
	field.Put(m, "tStop", l.TStop)
	field.Put(m, "pinholeFocalLength", l.PinholeFocalLength)
	field.Put(m, "focusDistance", l.FocusDistance)
	field.PutDoc(m, "projectionOffset", l.ProjectionOffset)
	field.PutDoc(m, "rawEncoders", l.RawEncoders)
	return m
}
