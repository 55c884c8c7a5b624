// Package field extracts typed values from a mutable working copy of a sample
// document.
//
// Every helper removes the key it examines, whether or not the value was
// usable, so whatever is left in the document after all parsers ran is
// genuinely unrecognised. Helpers never fail the caller: a bad value yields
// nil plus one issue appended to the shared error list, and the property
// group decides whether that makes the whole group absent.
package field
