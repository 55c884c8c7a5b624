package opentrackio

import "github.com/google/uuid"

// NewURN returns a random identifier in the urn:uuid form required for
// sampleId, sourceId and relatedSampleIds.
func NewURN() string { return "urn:uuid:" + uuid.NewString() }
