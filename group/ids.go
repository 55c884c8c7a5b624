package group

import (
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/types"
)

// ParseID reads a top-level urn:uuid identifier such as sampleId, sourceId or
// streamId.
func ParseID(root *field.Object, name string) *string {
	return field.Regex(root, name, field.URN)
}

// ParseRelatedSampleIDs reads relatedSampleIds. Elements that are not valid
// identifiers are dropped with an issue; the rest are kept in order.
func ParseRelatedSampleIDs(root *field.Object) []string {
	return field.EachRegex(root, "relatedSampleIds", field.URN.MatchString)
}

// ParseDuration reads static.duration, the length of the clip in seconds as a
// rational.
func ParseDuration(root *field.Object) *types.Rational {
	st, ok := root.Object("static")
	if !ok {
		return nil
	}
	d := types.ParseRational(st, "duration")
	root.RemoveIfEmpty("static")
	return d
}
