package v1_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opentrackio "github.com/reoring/opentrackio"
	v1 "github.com/reoring/opentrackio/v1"
)

func readFixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// fixtureDoc decodes a fixture with encoding/json so tests can edit it before
// handing it to Initialise.
func fixtureDoc(t testing.TB, name string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(readFixture(t, name), &doc))
	return doc
}

func initJSON(t *testing.T, text string) *v1.Sample {
	t.Helper()
	var s v1.Sample
	require.NoError(t, s.InitialiseJSON([]byte(text)))
	return &s
}

func TestSample_RoundTripCompleteFixtures(t *testing.T) {
	for _, name := range []string{"complete_static.json", "complete_dynamic.json"} {
		t.Run(name, func(t *testing.T) {
			var s v1.Sample
			require.NoError(t, s.InitialiseJSON(readFixture(t, name)))
			require.Empty(t, s.Errors(), "errors: %v", s.Errors().Messages())
			require.Empty(t, s.Warnings(), "warnings: %v", s.Warnings().Messages())

			want := fixtureDoc(t, name)
			got := s.Document()
			assert.True(t, opentrackio.Equal(want, got), "regenerated document differs:\n%s", spew.Sdump(got))
			assert.True(t, opentrackio.Equal(want, s.Original()))
		})
	}
}

func TestSample_CompleteDynamicValues(t *testing.T) {
	var s v1.Sample
	require.NoError(t, s.InitialiseJSON(readFixture(t, "complete_dynamic.json")))

	require.NotNil(t, s.Protocol)
	assert.Equal(t, v1.Version(), s.Protocol.Version)
	assert.Equal(t, "OpenTrackIO", s.Protocol.Name)
	require.NotNil(t, s.SourceNumber)
	assert.Equal(t, uint32(1), *s.SourceNumber)
	assert.Len(t, s.RelatedSampleIDs, 2)

	require.NotNil(t, s.Timing)
	require.NotNil(t, s.Timing.SampleRate)
	assert.Equal(t, uint32(24000), s.Timing.SampleRate.Num)
	assert.Equal(t, uint32(1001), s.Timing.SampleRate.Denom)
	assert.InDelta(t, 23.976, s.Timing.SampleRate.Float64(), 0.001)

	tc := s.Timing.Timecode
	require.NotNil(t, tc)
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{tc.Hours, tc.Minutes, tc.Seconds, tc.Frames})
	assert.False(t, tc.DropFrame)

	sync := s.Timing.Synchronization
	require.NotNil(t, sync)
	assert.True(t, sync.Locked)
	assert.Equal(t, v1.SourcePTP, sync.Source)
	require.NotNil(t, sync.PTP)
	assert.Equal(t, "00:11:22:33:44:55", sync.PTP.LeaderIdentity)
	assert.Equal(t, uint8(128), sync.PTP.LeaderPriorities.Priority1)
	require.NotNil(t, sync.PTP.LeaderTimeSource)
	assert.Equal(t, v1.TimeSourceGNSS, *sync.PTP.LeaderTimeSource)

	require.NotNil(t, s.Timing.RecordedTimestamp)
	assert.Equal(t, int64(1718806000), s.Timing.RecordedTimestamp.Time().Unix())

	require.NotNil(t, s.Lens)
	assert.Len(t, s.Lens.Distortion, 1)
	assert.Equal(t, []float64{1, 2, 3}, s.Lens.Distortion[0].Radial)
	require.NotNil(t, s.Lens.RawEncoders)
	assert.Equal(t, uint32(3000), *s.Lens.RawEncoders.Zoom)

	require.Len(t, s.Transforms, 3)
	assert.Equal(t, "Crane Arm", *s.Transforms[1].ID)
	require.NotNil(t, s.Transforms[1].Scale)
	assert.Nil(t, s.Transforms[0].Scale)
	assert.Equal(t, 180.0, s.Transforms[2].Rotation.Pan)
}

func TestSample_EmptyDocument(t *testing.T) {
	s := initJSON(t, `{}`)
	assert.Empty(t, s.Errors())
	assert.Empty(t, s.Warnings())
	assert.Nil(t, s.Protocol)
	assert.Nil(t, s.Camera)
	assert.Empty(t, s.Document())
}

func TestSample_ShutterAngle(t *testing.T) {
	t.Run("wrong type", func(t *testing.T) {
		s := initJSON(t, `{"static": {"camera": {"shutterAngle": "45"}}}`)
		require.Len(t, s.Errors(), 1)
		iss := s.Errors()[0]
		assert.Equal(t, opentrackio.CodeInvalidType, iss.Code)
		assert.Equal(t, "/static/camera/shutterAngle", iss.Path)
		assert.Equal(t, "field: static/camera/shutterAngle isn't of type: double", iss.Message)
		require.NotNil(t, s.Camera)
		assert.Nil(t, s.Camera.ShutterAngle)
		assert.Empty(t, s.Warnings())
	})

	t.Run("above range", func(t *testing.T) {
		s := initJSON(t, `{"static": {"camera": {"shutterAngle": 361}}}`)
		require.Len(t, s.Errors(), 1)
		assert.Equal(t, opentrackio.CodeTooBig, s.Errors()[0].Code)
		assert.Equal(t, "field: static/camera/shutterAngle is outside the expected range 0 - 360", s.Errors()[0].Message)
		assert.Nil(t, s.Camera.ShutterAngle)
	})

	t.Run("zero is excluded", func(t *testing.T) {
		s := initJSON(t, `{"static": {"camera": {"shutterAngle": 0}}}`)
		require.Len(t, s.Errors(), 1)
		assert.Equal(t, opentrackio.CodeTooSmall, s.Errors()[0].Code)
	})

	t.Run("in range", func(t *testing.T) {
		s := initJSON(t, `{"static": {"camera": {"shutterAngle": 45.0}}}`)
		require.Empty(t, s.Errors())
		require.NotNil(t, s.Camera.ShutterAngle)
		assert.Equal(t, 45.0, *s.Camera.ShutterAngle)
	})
}

func TestSample_SampleIDPattern(t *testing.T) {
	s := initJSON(t, `{"sampleId": "urn:uuid:not-a-uuid", "sourceId": "urn:uuid:5ca3f0c4-0c2f-4fa9-9f2c-2a4cbd1b2e7b"}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodePattern, s.Errors()[0].Code)
	assert.Equal(t, "/sampleId", s.Errors()[0].Path)
	assert.Nil(t, s.SampleID)
	require.NotNil(t, s.SourceID)
	assert.Empty(t, s.Warnings())
}

func TestSample_VersionMismatchKeepsOtherGroups(t *testing.T) {
	doc := fixtureDoc(t, "complete_dynamic.json")
	doc["protocol"] = map[string]any{"name": "OpenTrackIO", "version": []any{0, 0, 0}}

	var s v1.Sample
	require.NoError(t, s.Initialise(doc))
	require.Len(t, s.Errors(), 1, spew.Sdump(s.Errors()))
	assert.Equal(t, opentrackio.CodeVersionMismatch, s.Errors()[0].Code)
	assert.Equal(t, "/protocol/version", s.Errors()[0].Path)
	assert.Nil(t, s.Protocol)
	assert.NotNil(t, s.Lens)
	assert.NotNil(t, s.Timing)
	assert.NotNil(t, s.Tracker)
	assert.Len(t, s.Transforms, 3)
	assert.Empty(t, s.Warnings())
	assert.NotContains(t, s.Document(), "protocol")
}

func TestSample_ProtocolName(t *testing.T) {
	s := initJSON(t, `{"protocol": {"name": "OpenTrack", "version": [1, 0, 0]}}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeInvalidValue, s.Errors()[0].Code)
	assert.Nil(t, s.Protocol)

	s = initJSON(t, `{"protocol": {"name": "OpenTrackIO"}}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeRequired, s.Errors()[0].Code)
	assert.Equal(t, "/protocol", s.Errors()[0].Path)
	assert.Equal(t, []string{"version"}, s.Errors()[0].Params["missing"])
}

func TestSample_UnknownKeysWarn(t *testing.T) {
	doc := fixtureDoc(t, "complete_static.json")
	doc["bogusField"] = 1
	doc["static"].(map[string]any)["camera"].(map[string]any)["colour"] = "red"

	var s v1.Sample
	require.NoError(t, s.Initialise(doc))
	assert.Empty(t, s.Errors())
	require.Len(t, s.Warnings(), 2)
	assert.Equal(t, "/bogusField", s.Warnings()[0].Path)
	assert.Equal(t, "key: bogusField was still remaining after parsing", s.Warnings()[0].Message)
	assert.Equal(t, "/static/camera/colour", s.Warnings()[1].Path)
	assert.Equal(t, opentrackio.CodeUnknownKey, s.Warnings()[1].Code)

	// unknown keys are not carried into the output
	assert.NotContains(t, s.Document(), "bogusField")
}

func TestSample_NestedStaticKeyWarns(t *testing.T) {
	doc := fixtureDoc(t, "complete_static.json")
	doc["tracker"] = map[string]any{"static": "x", "status": "ok"}
	doc["bogus"] = map[string]any{"static": 1}

	var s v1.Sample
	require.NoError(t, s.Initialise(doc))
	assert.Empty(t, s.Errors())
	require.Len(t, s.Warnings(), 2)
	assert.Equal(t, "/bogus/static", s.Warnings()[0].Path)
	assert.Equal(t, "/tracker/static", s.Warnings()[1].Path)
	assert.Equal(t, opentrackio.CodeUnknownKey, s.Warnings()[1].Code)
}

func TestSample_StaticMustBeObject(t *testing.T) {
	s := initJSON(t, `{"static": 5, "sampleId": "urn:uuid:5ca3f0c4-0c2f-4fa9-9f2c-2a4cbd1b2e7a"}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, "/static", s.Errors()[0].Path)
	assert.Equal(t, opentrackio.CodeInvalidType, s.Errors()[0].Code)
	assert.NotNil(t, s.SampleID)
	assert.Empty(t, s.Warnings())
}

func TestSample_TransformsSkipInvalidElements(t *testing.T) {
	s := initJSON(t, `{"transforms": [
		{"translation": {"x": 1, "y": 2, "z": 3}, "rotation": {"pan": 0, "tilt": 0, "roll": 0}, "id": "a"},
		{"translation": {"x": 1, "y": 2, "z": 3}, "id": "b"},
		{"translation": {"x": 4, "y": 5, "z": 6}, "rotation": {"pan": 1, "tilt": 2, "roll": 3}, "id": "c"}
	]}`)
	require.Len(t, s.Transforms, 2)
	assert.Equal(t, "a", *s.Transforms[0].ID)
	assert.Equal(t, "c", *s.Transforms[1].ID)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeRequired, s.Errors()[0].Code)
	assert.Equal(t, "/transforms/1", s.Errors()[0].Path)
	assert.Empty(t, s.Warnings())
}

func TestSample_EmptyArraysArePresent(t *testing.T) {
	s := initJSON(t, `{"transforms": [], "relatedSampleIds": []}`)
	require.NotNil(t, s.Transforms)
	assert.Empty(t, s.Transforms)
	require.NotNil(t, s.RelatedSampleIDs)
	assert.Equal(t, []any{}, s.Document()["transforms"])
}

func TestSample_ScalarArrayAbortsOnBadElement(t *testing.T) {
	s := initJSON(t, `{"lens": {"custom": [1.0, "two", 3.0], "fStop": 2.8}}`)
	require.NotNil(t, s.Lens)
	assert.Nil(t, s.Lens.Custom)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, "/lens/custom/1", s.Errors()[0].Path)
	assert.Equal(t, opentrackio.CodeInvalidType, s.Errors()[0].Code)
	require.NotNil(t, s.Lens.FStop)
	assert.Empty(t, s.Warnings())
}

func TestSample_DistortionSkipsInvalidElements(t *testing.T) {
	s := initJSON(t, `{"lens": {"distortion": [
		{"model": "Brown-Conrady U-D", "radial": [1.0, 2.0]},
		{"model": "broken", "tangential": [1.0]}
	]}}`)
	require.Len(t, s.Lens.Distortion, 1)
	assert.Equal(t, "Brown-Conrady U-D", *s.Lens.Distortion[0].Model)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, "/lens/distortion/1", s.Errors()[0].Path)
}

func TestSample_EncodersAcceptAnySubset(t *testing.T) {
	s := initJSON(t, `{"lens": {"encoders": {"focus": 0.5}}}`)
	require.Empty(t, s.Errors())
	require.NotNil(t, s.Lens.Encoders)
	assert.Equal(t, 0.5, *s.Lens.Encoders.Focus)
	assert.Nil(t, s.Lens.Encoders.Iris)
	assert.Equal(t, map[string]any{"focus": 0.5}, s.Document()["lens"].(map[string]any)["encoders"])

	s = initJSON(t, `{"lens": {"encoders": {}}}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeRequired, s.Errors()[0].Code)
	assert.Nil(t, s.Lens.Encoders)

	s = initJSON(t, `{"lens": {"rawEncoders": {"focus": 10, "iris": -1}}}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, "/lens/rawEncoders/iris", s.Errors()[0].Path)
	assert.Nil(t, s.Lens.RawEncoders)
}

func TestSample_TimingRanges(t *testing.T) {
	s := initJSON(t, `{"timing": {
		"sampleTimestamp": {"seconds": 281474976710656, "nanoseconds": 0},
		"recordedTimestamp": {"seconds": 281474976710655, "nanoseconds": 1},
		"timecode": {"hours": 24, "minutes": 0, "seconds": 0, "frames": 0, "frameRate": {"num": 25, "denom": 1}, "dropFrame": false}
	}}`)
	require.NotNil(t, s.Timing)
	assert.Nil(t, s.Timing.SampleTimestamp)
	require.NotNil(t, s.Timing.RecordedTimestamp)
	assert.Equal(t, uint64(v1.MaxTimestampSeconds), s.Timing.RecordedTimestamp.Seconds)
	assert.Nil(t, s.Timing.Timecode)

	codes := map[string]string{}
	for _, iss := range s.Errors() {
		codes[iss.Path] = iss.Code
	}
	assert.Equal(t, map[string]string{
		"/timing/sampleTimestamp/seconds": opentrackio.CodeTooBig,
		"/timing/timecode/hours":          opentrackio.CodeTooBig,
	}, codes)
	assert.Empty(t, s.Warnings())
}

func TestSample_SynchronizationRequiresLockedAndSource(t *testing.T) {
	s := initJSON(t, `{"timing": {"synchronization": {"locked": true, "source": "carrier pigeon"}, "mode": "internal"}}`)
	require.NotNil(t, s.Timing)
	assert.Nil(t, s.Timing.Synchronization)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeInvalidEnum, s.Errors()[0].Code)

	s = initJSON(t, `{"timing": {"synchronization": {"locked": true}}}`)
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeRequired, s.Errors()[0].Code)
	assert.Equal(t, "/timing/synchronization", s.Errors()[0].Path)
}

func TestSample_PTPLeaderIdentity(t *testing.T) {
	doc := fixtureDoc(t, "complete_dynamic.json")
	ptp := doc["timing"].(map[string]any)["synchronization"].(map[string]any)["ptp"].(map[string]any)
	ptp["leaderIdentity"] = "00:11-22:33:44:55"

	var s v1.Sample
	require.NoError(t, s.Initialise(doc))
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, "/timing/synchronization/ptp/leaderIdentity", s.Errors()[0].Path)
	assert.Equal(t, opentrackio.CodePattern, s.Errors()[0].Code)
	require.NotNil(t, s.Timing.Synchronization)
	assert.Nil(t, s.Timing.Synchronization.PTP)
}

func TestSample_DocumentIsCached(t *testing.T) {
	s := initJSON(t, `{"static": {"camera": {"make": "SpaceCam"}}}`)
	first := s.Document()

	other := "OtherCam"
	s.Camera.Make = &other
	second := s.Document()
	cam := second["static"].(map[string]any)["camera"].(map[string]any)
	assert.Equal(t, "SpaceCam", cam["make"])
	assert.Equal(t, first, second)

	require.NoError(t, s.InitialiseJSON([]byte(`{"static": {"camera": {"make": "OtherCam"}}}`)))
	cam = s.Document()["static"].(map[string]any)["camera"].(map[string]any)
	assert.Equal(t, "OtherCam", cam["make"])
}

func TestSample_ReinitialiseResets(t *testing.T) {
	s := initJSON(t, `{"static": {"camera": {"make": 7}}, "bogus": true}`)
	require.Len(t, s.Errors(), 1)
	require.Len(t, s.Warnings(), 1)
	require.NotNil(t, s.Camera)

	require.NoError(t, s.InitialiseJSON([]byte(`{"sampleId": "urn:uuid:5ca3f0c4-0c2f-4fa9-9f2c-2a4cbd1b2e7a"}`)))
	assert.Empty(t, s.Errors())
	assert.Empty(t, s.Warnings())
	assert.Nil(t, s.Camera)
	assert.NotNil(t, s.SampleID)
}

func TestSample_InitialiseTreeInputs(t *testing.T) {
	var s v1.Sample
	require.NoError(t, s.Initialise(nil))
	assert.Empty(t, s.Errors())

	require.NoError(t, s.Initialise([]any{1, 2}))
	require.Len(t, s.Errors(), 1)
	assert.Equal(t, opentrackio.CodeInvalidType, s.Errors()[0].Code)

	require.NoError(t, s.Initialise(map[any]any{
		"static": map[any]any{"camera": map[string]any{"isoSpeed": 800, "make": "SpaceCam"}},
	}))
	assert.Empty(t, s.Errors())
	require.NotNil(t, s.Camera)
	assert.Equal(t, uint32(800), *s.Camera.ISOSpeed)

	err := s.Initialise(map[string]any{"sampleId": make(chan int)})
	assert.ErrorIs(t, err, opentrackio.ErrUnsupportedDocument)
}

func TestSample_InputIsNotMutated(t *testing.T) {
	doc := fixtureDoc(t, "complete_static.json")
	before := fixtureDoc(t, "complete_static.json")

	var s v1.Sample
	require.NoError(t, s.Initialise(doc))
	assert.True(t, opentrackio.Equal(before, doc))
}

func TestSample_ImplementsSampler(t *testing.T) {
	var s opentrackio.Sampler = &v1.Sample{}
	assert.Equal(t, "1.0.0", s.ProtocolVersion().String())
}

func TestVersion_ReturnsCopy(t *testing.T) {
	v := v1.Version()
	assert.Equal(t, opentrackio.Version{Major: 1, Minor: 0, Patch: 0}, v)
	v.Major = 9
	assert.Equal(t, "1.0.0", v1.Version().String())
	assert.Equal(t, "1.0.0", (&v1.Sample{}).ProtocolVersion().String())
}
