package opentrackio

import (
	"fmt"
	"strconv"
	"strings"
)

// ProtocolName is the fixed identifier carried in protocol.name.
const ProtocolName = "OpenTrackIO"

// Version is a protocol version triple.
type Version struct {
	Major, Minor, Patch uint64
}

func (v Version) String() string { return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch) }

// Slice renders the version as the three-element array used on the wire.
func (v Version) Slice() []any { return []any{v.Major, v.Minor, v.Patch} }

// ParseVersion reads "major.minor.patch". Missing trailing parts are zero, so
// "0.9" reads as 0.9.0.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return Version{}, fmt.Errorf("opentrackio: invalid version %q", s)
	}
	var n [3]uint64
	for i, p := range parts {
		u, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("opentrackio: invalid version %q: %w", s, err)
		}
		n[i] = u
	}
	return Version{Major: n[0], Minor: n[1], Patch: n[2]}, nil
}
