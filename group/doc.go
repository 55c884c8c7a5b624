// Package group parses the property groups whose shape is the same in every
// supported protocol version: global stage, tracker, duration and the sample
// identifiers.
package group
