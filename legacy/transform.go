package legacy

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// Transform links to its parent by identifier. The link is not resolved.
type Transform struct {
	Translation       types.Vector3
	Rotation          types.Rotation
	Scale             *types.Vector3
	TransformID       *string
	ParentTransformID *string
}

func parseTransform(el *field.Object) (Transform, bool) {
	if !el.Require("translation", "rotation") {
		return Transform{}, false
	}
	tr := types.ParseVector3(el, "translation")
	rot := types.ParseRotation(el, "rotation")
	t := Transform{
		Scale:             types.ParseVector3(el, "scale"),
		TransformID:       field.Opt[string](el, "transformId"),
		ParentTransformID: field.Opt[string](el, "parentTransformId"),
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
	field.Put(m, "transformId", t.TransformID)
	field.Put(m, "parentTransformId", t.ParentTransformID)
	return m
}
