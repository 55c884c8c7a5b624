package v1

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Transform places one node of the tracking chain relative to its parent in
// the array.
type Transform struct {
	Translation types.Vector3
	Rotation    types.Rotation
	Scale       *types.Vector3
	ID          *string
}

func parseTransform(el *field.Object) (Transform, bool) {
	if !el.Require("translation", "rotation") {
		return Transform{}, false
	}
	tr := types.ParseVector3(el, "translation")
	rot := types.ParseRotation(el, "rotation")
	t := Transform{
		Scale: types.ParseVector3(el, "scale"),
		ID:    field.Opt[string](el, "id"),
	}
	if tr == nil || rot == nil {
		return Transform{}, false
	}
	t.Translation, t.Rotation = *tr, *rot
	return t, true
}

func (t Transform) Document() map[string]any {
	m := map[string]any{
		"translation": t.Translation.Document(),
		"rotation":    t.Rotation.Document(),
	}
	field.PutDoc(m, "scale", t.Scale)
	field.Put(m, "id", t.ID)
	return m
}
