// Package v1 implements OpenTrackIO protocol 1.0.0 samples.
//
// A Sample is filled from a document tree, JSON text, CBOR or YAML. Every
// group is optional; a group that fails validation is left nil and the reason
// is recorded in Errors. Keys no parser recognised are reported in Warnings.
//
//	var s v1.Sample
//	if err := s.InitialiseJSON(data); err != nil {
//		return err // not decodable at all
//	}
//	for _, iss := range s.Errors() {
//		log.Println(iss.Path, iss.Message)
//	}
//	if s.Camera != nil && s.Camera.ShutterAngle != nil {
//		...
//	}
//
// Version-invariant fields (camera, lens identity, tracker identity,
// duration) are read from and written to the "static" object.
package v1
