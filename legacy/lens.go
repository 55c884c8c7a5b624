package legacy

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

type Lens struct {
	// static
	DistortionOverscanMax   *float64
	UndistortionOverscanMax *float64
	FirmwareVersion         *string
	Make                    *string
	Model                   *string
	NominalFocalLength      *float64
	SerialNumber            *string

	// dynamic
	Custom              []float64
	Distortion          *Distortion
	Undistortion        *Distortion
	DistortionOverscan  *float64
	DistortionShift     *types.Vector2
	Encoders            *field.Triplet[float64]
	EntrancePupilOffset *float64
	ExposureFalloff     *types.ExposureFalloff
	FStop               *float64
	FocalLength         *float64
	FocusDistance       *float64
	PerspectiveShift    *types.Vector2
	RawEncoders         *field.Triplet[uint16]
	TStop               *float64
}

// Distortion holds radial and optional tangential coefficients of one model.
type Distortion struct {
	Model      *string
	Radial     []float64
	Tangential []float64
}

func parseLens(root *field.Object) *Lens {
	st, hasStatic := root.Static("lens")
	dyn, hasDynamic := root.Object("lens")
	if !hasStatic && !hasDynamic {
		return nil
	}
	l := &Lens{}
	if hasStatic {
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
		l.Distortion = parseDistortion(dyn, "distortion")
		l.Undistortion = parseDistortion(dyn, "undistortion")
		l.DistortionOverscan = field.Opt[float64](dyn, "distortionOverscan")
		l.DistortionShift = types.ParseVector2(dyn, "distortionShift")
		l.Encoders = field.ParseTriplet[float64](dyn, "encoders", field.All)
		l.EntrancePupilOffset = field.Opt[float64](dyn, "entrancePupilOffset")
		l.ExposureFalloff = types.ParseExposureFalloff(dyn, "exposureFalloff")
		l.FStop = field.Opt[float64](dyn, "fStop")
		l.FocalLength = field.Opt[float64](dyn, "focalLength")
		l.FocusDistance = field.Opt[float64](dyn, "focusDistance")
		l.PerspectiveShift = types.ParseVector2(dyn, "perspectiveShift")
		l.RawEncoders = field.ParseTriplet[uint16](dyn, "rawEncoders", field.All)
		l.TStop = field.Opt[float64](dyn, "tStop")
		root.RemoveIfEmpty("lens")
	}
	return l
}

func parseDistortion(o *field.Object, name string) *Distortion {
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("radial") {
		o.Remove(name)
		return nil
	}
	d := &Distortion{
		Model:      field.Opt[string](c, "model"),
		Radial:     field.Slice[float64](c, "radial"),
		Tangential: field.Slice[float64](c, "tangential"),
	}
	ok = d.Radial != nil
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return d
}

func (d Distortion) Document() map[string]any {
	m := map[string]any{}
	field.Put(m, "model", d.Model)
	field.PutSlice(m, "radial", d.Radial)
	field.PutSlice(m, "tangential", d.Tangential)
	return m
}

func (l Lens) StaticDocument() map[string]any {
	m := map[string]any{}
	field.Put(m, "distortionOverscanMax", l.DistortionOverscanMax)
	field.Put(m, "undistortionOverscanMax", l.UndistortionOverscanMax)
	field.Put(m, "firmwareVersion", l.FirmwareVersion)
	field.Put(m, "make", l.Make)
	field.Put(m, "model", l.Model)
	field.Put(m, "nominalFocalLength", l.NominalFocalLength)
	field.Put(m, "serialNumber", l.SerialNumber)
	return m
}

func (l Lens) Document() map[string]any {
	m := map[string]any{}
	field.PutSlice(m, "custom", l.Custom)
	field.PutDoc(m, "distortion", l.Distortion)
	field.PutDoc(m, "undistortion", l.Undistortion)
	field.Put(m, "distortionOverscan", l.DistortionOverscan)
	field.PutDoc(m, "distortionShift", l.DistortionShift)
	field.PutDoc(m, "encoders", l.Encoders)
	field.Put(m, "entrancePupilOffset", l.EntrancePupilOffset)
	field.PutDoc(m, "exposureFalloff", l.ExposureFalloff)
	field.Put(m, "fStop", l.FStop)
	field.Put(m, "focalLength", l.FocalLength)
	field.Put(m, "focusDistance", l.FocusDistance)
	field.PutDoc(m, "perspectiveShift", l.PerspectiveShift)
	field.PutDoc(m, "rawEncoders", l.RawEncoders)
	field.Put(m, "tStop", l.TStop)
	return m
}
