package group

import "github.com/reoring/opentrackio/field"

// GlobalStage locates the stage origin on Earth: ENU offsets in metres from a
// geodetic reference point.
type GlobalStage struct {
	E, N, U        float64
	Lat0, Lon0, H0 float64
}

var globalStageKeys = []string{"E", "N", "U", "lat0", "lon0", "h0"}

// ParseGlobalStage reads globalStage; all six members are required.
func ParseGlobalStage(o *field.Object) *GlobalStage {
	const name = "globalStage"
	c, ok := o.Object(name)
	if !ok {
		return nil
	}
	if !c.Require(globalStageKeys...) {
		o.Remove(name)
		return nil
	}
	var v [6]float64
	ok = true
	for i, k := range globalStageKeys {
		f := field.Opt[float64](c, k)
		if f == nil {
			ok = false
			continue
		}
		v[i] = *f
	}
	o.Done(name, ok)
	if !ok {
		return nil
	}
	return &GlobalStage{E: v[0], N: v[1], U: v[2], Lat0: v[3], Lon0: v[4], H0: v[5]}
}

func (g GlobalStage) Document() map[string]any {
	return map[string]any{"E": g.E, "N": g.N, "U": g.U, "lat0": g.Lat0, "lon0": g.Lon0, "h0": g.H0}
}
