package legacy

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Camera holds the static description of the camera body.
type Camera struct {
	ActiveSensorPhysicalDimensions *types.Dimensions[float64]
	ActiveSensorResolution         *types.Dimensions[uint32]
	AnamorphicSqueeze              *types.Rational
	CaptureFrameRate               *types.Rational
	FDLLink                        *string
	FirmwareVersion                *string
	ISOSpeed                       *uint32
	Label                          *string
	Make                           *string
	Model                          *string
	SerialNumber                   *string
	ShutterAngle                   *uint32 // thousandths of a degree
}

var shutterAngleBounds = field.Bounds[uint32]{Min: 1, Max: 360000}

func parseCamera(root *field.Object) *Camera {
	c, ok := root.Static("camera")
	if !ok {
		return nil
	}
	cam := &Camera{
		ActiveSensorPhysicalDimensions: types.ParseDimensions[float64](c, "activeSensorPhysicalDimensions"),
		ActiveSensorResolution:         types.ParseDimensions[uint32](c, "activeSensorResolution"),
		AnamorphicSqueeze:              types.ParseRational(c, "anamorphicSqueeze"),
		CaptureFrameRate:               types.ParseRational(c, "captureFrameRate"),
		FDLLink:                        field.Regex(c, "fdlLink", field.URN),
		FirmwareVersion:                field.Opt[string](c, "firmwareVersion"),
		ISOSpeed:                       field.Opt[uint32](c, "isoSpeed"),
		Label:                          field.Opt[string](c, "label"),
		Make:                           field.Opt[string](c, "make"),
		Model:                          field.Opt[string](c, "model"),
		SerialNumber:                   field.Opt[string](c, "serialNumber"),
	}
	cam.ShutterAngle = shutterAngleBounds.Check(c, "shutterAngle", field.Opt[uint32](c, "shutterAngle"))
	root.DoneStatic("camera")
	return cam
}

// ShutterDegrees converts ShutterAngle to degrees.
func (c Camera) ShutterDegrees() (float64, bool) {
	if c.ShutterAngle == nil {
		return 0, false
	}
	return float64(*c.ShutterAngle) / 1000, true
}

func (c Camera) Document() map[string]any {
	m := map[string]any{}
	field.PutDoc(m, "activeSensorPhysicalDimensions", c.ActiveSensorPhysicalDimensions)
	field.PutDoc(m, "activeSensorResolution", c.ActiveSensorResolution)
	field.PutDoc(m, "anamorphicSqueeze", c.AnamorphicSqueeze)
	field.PutDoc(m, "captureFrameRate", c.CaptureFrameRate)
	field.Put(m, "fdlLink", c.FDLLink)
	field.Put(m, "firmwareVersion", c.FirmwareVersion)
	field.Put(m, "isoSpeed", c.ISOSpeed)
	field.Put(m, "label", c.Label)
	field.Put(m, "make", c.Make)
	field.Put(m, "model", c.Model)
	field.Put(m, "serialNumber", c.SerialNumber)
	field.Put(m, "shutterAngle", c.ShutterAngle)
	return m
}
