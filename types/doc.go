// Package types holds the value types shared by every protocol version:
// rationals, vectors, rotations and dimensions. Each has a ParseX function
// following the field helper contract (nil plus an issue on failure) and a
// Document method producing its wire form.
package types
