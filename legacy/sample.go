package legacy

import (
	opentrackio "github.com/reoring/opentrackio"
	"github.com/reoring/opentrackio/codec"
	"github.com/reoring/opentrackio/field"
	"github.com/reoring/opentrackio/group"
	"github.com/reoring/opentrackio/types"
)

// Sample is one protocol 0.9.x sample.
type Sample struct {
	opentrackio.Envelope

	Protocol         *Protocol
	SampleID         *string
	StreamID         *string
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

// Initialise parses a document tree, discarding any previous content.
func (s *Sample) Initialise(doc any) error {
	*s = Sample{}
	return s.Envelope.Run(doc, version, s.parse)
}

func (s *Sample) InitialiseJSON(data []byte, opts ...opentrackio.ParseOpt) error {
	return s.InitialiseWith(codec.JSON(), data, opts...)
}

func (s *Sample) InitialiseCBOR(data []byte, opts ...opentrackio.ParseOpt) error {
	return s.InitialiseWith(codec.CBOR(), data, opts...)
}

func (s *Sample) InitialiseYAML(data []byte, opts ...opentrackio.ParseOpt) error {
	return s.InitialiseWith(codec.YAML(), data, opts...)
}

func (s *Sample) InitialiseWith(c codec.Codec, data []byte, opts ...opentrackio.ParseOpt) error {
	*s = Sample{}
	return s.Envelope.RunBytes(c, data, version, s.parse, opts...)
}

func (s *Sample) ProtocolVersion() opentrackio.Version { return version }

// Document returns the cached canonical document, building it on first use.
func (s *Sample) Document() map[string]any { return s.Envelope.Document(s.generate) }

func (s *Sample) JSON() ([]byte, error) { return s.Envelope.Encode(codec.JSON(), s.generate) }

func (s *Sample) CBOR() ([]byte, error) { return s.Envelope.Encode(codec.CBOR(), s.generate) }

func (s *Sample) YAML() ([]byte, error) { return s.Envelope.Encode(codec.YAML(), s.generate) }

func (s *Sample) parse(doc map[string]any, errs *opentrackio.Issues) {
	root := field.New(doc, errs)
	s.Protocol = parseProtocol(root)
	s.SampleID = group.ParseID(root, "sampleId")
	s.StreamID = group.ParseID(root, "streamId")
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
	field.Put(m, "streamId", s.StreamID)
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
