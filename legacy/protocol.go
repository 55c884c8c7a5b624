package legacy

import (
	opentrackio "github.com/reoring/opentrackio"
	"github.com/reoring/opentrackio/field"
)

var version = opentrackio.Version{Major: 0, Minor: 9, Patch: 0}

// Version returns the nominal protocol version of this layout. Any
// well-formed dotted version is accepted in protocol.version.
func Version() opentrackio.Version { return version }

// Protocol identifies the protocol and the version the document declared.
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
	var ver *opentrackio.Version
	if s := field.Regex(c, "version", field.SemVer); s != nil {
		if v, err := opentrackio.ParseVersion(*s); err == nil {
			ver = &v
		} else {
			c.Fail("version", opentrackio.CodeInvalidType, map[string]string{"type": "version string"})
		}
	}
	ok = pname != nil && ver != nil
	root.Done(name, ok)
	if !ok {
		return nil
	}
	return &Protocol{Name: *pname, Version: *ver}
}

func (p Protocol) Document() map[string]any {
	return map[string]any{"name": p.Name, "version": p.Version.String()}
}
