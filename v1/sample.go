package v1

import (
	opentrackio "github.com/reoring/opentrackio"
	"github.com/reoring/opentrackio/codec"
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/group"
	"github.com/reoring/opentrackio/types"
)

// Sample is one OpenTrackIO 1.0.0 sample. Nil fields were absent from the
// input or failed validation; see Errors for the latter.
type Sample struct {
	opentrackio.Envelope

	Protocol         *Protocol
	SampleID         *string
	SourceID         *string
	SourceNumber     *uint32
	RelatedSampleIDs []string
	GlobalStage      *group.GlobalStage
	Duration         *types.Rational
	Camera           *Camera
	Lens             *Lens
	Timing           *Timing
	Tracker          *group.Tracker
	Transforms       []Transform
}

var _ opentrackio.Sampler = (*Sample)(nil)

// Initialise parses a document tree. It only fails when doc is not a
// document tree; validation problems are reported through Errors and
// Warnings. Any previous content of s is discarded.
func (s *Sample) Initialise(doc any) error {
	*s = Sample{}
	return s.Envelope.Run(doc, version, s.parse)
}

// InitialiseJSON decodes JSON text and parses it. Undecodable input is
// returned as an error.
func (s *Sample) InitialiseJSON(data []byte, opts ...opentrackio.ParseOpt) error {
	return s.InitialiseWith(codec.JSON(), data, opts...)
}

// InitialiseCBOR decodes CBOR and parses it.
func (s *Sample) InitialiseCBOR(data []byte, opts ...opentrackio.ParseOpt) error {
	return s.InitialiseWith(codec.CBOR(), data, opts...)
}

// InitialiseYAML decodes YAML text and parses it.
func (s *Sample) InitialiseYAML(data []byte, opts ...opentrackio.ParseOpt) error {
	return s.InitialiseWith(codec.YAML(), data, opts...)
}

// InitialiseWith decodes data with c and parses the result.
func (s *Sample) InitialiseWith(c codec.Codec, data []byte, opts ...opentrackio.ParseOpt) error {
	*s = Sample{}
	return s.Envelope.RunBytes(c, data, version, s.parse, opts...)
}

// ProtocolVersion returns the version this sample type implements.
func (s *Sample) ProtocolVersion() opentrackio.Version { return version }

// Document returns the canonical document for the sample. It is built on the
// first call and cached; later changes to the typed fields are not reflected
// until the sample is initialised again.
func (s *Sample) Document() map[string]any { return s.Envelope.Document(s.generate) }

// JSON encodes Document as JSON text.
func (s *Sample) JSON() ([]byte, error) { return s.Envelope.Encode(codec.JSON(), s.generate) }

// CBOR encodes Document as canonical CBOR.
func (s *Sample) CBOR() ([]byte, error) { return s.Envelope.Encode(codec.CBOR(), s.generate) }

// YAML encodes Document as YAML text.
func (s *Sample) YAML() ([]byte, error) { return s.Envelope.Encode(codec.YAML(), s.generate) }

func (s *Sample) parse(doc map[string]any, errs *opentrackio.Issues) {
	root := field.New(doc, errs)
	s.Protocol = parseProtocol(root)
	s.SampleID = group.ParseID(root, "sampleId")
	s.SourceID = group.ParseID(root, "sourceId")
	s.SourceNumber = field.Opt[uint32](root, "sourceNumber")
	s.RelatedSampleIDs = group.ParseRelatedSampleIDs(root)
	s.GlobalStage = group.ParseGlobalStage(root)
	s.Duration = group.ParseDuration(root)
	s.Camera = parseCamera(root)
	s.Lens = parseLens(root)
	s.Timing = parseTiming(root)
	s.Tracker = group.ParseTracker(root)
	s.Transforms = field.Each(root, "transforms", parseTransform)
}

func (s *Sample) generate() map[string]any {
	m := map[string]any{}
	static := map[string]any{}

	field.PutDoc(m, "protocol", s.Protocol)
	field.Put(m, "sampleId", s.SampleID)
	field.Put(m, "sourceId", s.SourceID)
	field.Put(m, "sourceNumber", s.SourceNumber)
	field.PutSlice(m, "relatedSampleIds", s.RelatedSampleIDs)
	field.PutDoc(m, "globalStage", s.GlobalStage)
	field.PutDoc(static, "duration", s.Duration)
	if s.Camera != nil {
		field.PutObject(static, "camera", s.Camera.Document())
	}
	if s.Lens != nil {
		field.PutObject(static, "lens", s.Lens.StaticDocument())
		field.PutObject(m, "lens", s.Lens.Document())
	}
	if s.Timing != nil {
		field.PutObject(m, "timing", s.Timing.Document())
	}
	if s.Tracker != nil {
		field.PutObject(static, "tracker", s.Tracker.StaticDocument())
		field.PutObject(m, "tracker", s.Tracker.Document())
	}
	field.PutDocs(m, "transforms", s.Transforms)
	field.PutObject(m, opentrackio.StaticKey, static)
	return m
}
