// Package opentrackio parses, validates and regenerates OpenTrackIO samples:
// camera, lens and tracker metadata exchanged between virtual-production
// devices.
//
// The root package holds what every protocol version shares:
//
//   - Issues, the error model used for errors, warnings and decode failures
//     (JSON Pointer path, code, message)
//   - Envelope, the original/working document handling, leftover-key warnings
//     and the cached output document embedded by each version's Sample
//   - Normalize and Equal for document trees
//   - ParseOpt limits applied by the decoders in codec
//
// Version-specific samples live in v1 (protocol 1.0.0) and legacy (0.9.x).
// Field helpers are in field, shared value types in types and shared groups in
// group. The CLI is under cmd/otio.
//
// Typical usage:
//
//	var s v1.Sample
//	if err := s.InitialiseJSON(data); err != nil {
//		return err // not a readable document
//	}
//	for _, iss := range s.Errors() {
//		log.Println(iss.Message)
//	}
//	out, err := s.CBOR()
package opentrackio
