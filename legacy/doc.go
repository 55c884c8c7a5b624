// Package legacy implements the pre-1.0 OpenTrackIO layout (protocol 0.9.x).
//
// It differs from protocol 1.0.0 in units and nesting: the protocol version
// is a dotted string, the stream is identified by streamId, shutter angle is
// an integer in thousandths of a degree, timecode rate and drop-frame live
// under timecode.format, timestamps carry attoseconds, synchronization
// requires a frequency, distortion is a single object and transforms are
// linked by transformId/parentTransformId.
package legacy
