package v1

import (
	opentrackio "github.com/reoring/opentrackio"
	"github.com/reoring/opentrackio/field"
)

var version = opentrackio.Version{Major: 1, Minor: 0, Patch: 0}

// Version returns the protocol version this package parses. Documents
// declaring any other version have their protocol group rejected.
func Version() opentrackio.Version { return version }

// Protocol identifies the protocol and version a sample was written for.
type Protocol struct {
	Name    string
	Version opentrackio.Version
}

func parseProtocol(root *field.Object) *Protocol {
	const name = "protocol"
	c, ok := root.Object(name)
	if !ok {
		return nil
	}
	if !c.Require("name", "version") {
		root.Remove(name)
		return nil
	}
	pname := field.Opt[string](c, "name")
	if pname != nil && *pname != opentrackio.ProtocolName {
		c.Fail("name", opentrackio.CodeInvalidValue, map[string]string{"expected": opentrackio.ProtocolName}, "got", *pname)
		pname = nil
	}
	ver := parseVersion(c, "version")
	ok = pname != nil && ver != nil
	root.Done(name, ok)
	if !ok {
		return nil
	}
	return &Protocol{Name: *pname, Version: *ver}
}

// parseVersion reads a [major, minor, patch] array and requires it to equal
// Version.
func parseVersion(c *field.Object, name string) *opentrackio.Version {
	arr, ok := c.Array(name)
	if !ok {
		return nil
	}
	c.Remove(name)
	const label = "array of 3 unsigned integers"
	if len(arr) != 3 {
		c.Fail(name, opentrackio.CodeInvalidType, map[string]string{"type": label})
		return nil
	}
	var n [3]uint64
	for i, v := range arr {
		u, ok := field.Convert[uint64](v)
		if !ok {
			c.Fail(name, opentrackio.CodeInvalidType, map[string]string{"type": label})
			return nil
		}
		n[i] = u
	}
	got := opentrackio.Version{Major: n[0], Minor: n[1], Patch: n[2]}
	if got != version {
		c.Fail(name, opentrackio.CodeVersionMismatch, map[string]string{"expected": version.String()}, "got", got.String())
		return nil
	}
	return &got
}

func (p Protocol) Document() map[string]any {
	return map[string]any{"name": p.Name, "version": p.Version.Slice()}
}
