package opentrackio

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType     = "invalid_type"
	CodeRequired        = "required"
	CodePattern         = "pattern"
	CodeTooSmall        = "too_small"
	CodeTooBig          = "too_big"
	CodeInvalidEnum     = "invalid_enum"
	CodeInvalidValue    = "invalid_value"
	CodeVersionMismatch = "version_mismatch"
	// Warnings
	CodeUnknownKey   = "unknown_key"
	CodeDuplicateKey = "duplicate_key"
	// Decoder failures
	CodeParseError = "parse_error"
	CodeTruncated  = "truncated"
)

// ErrUnsupportedDocument is returned when a value handed to Initialise is not a
// document tree node (object, array, string, number, bool or null).
var ErrUnsupportedDocument = errors.New("opentrackio: unsupported document value")

// Issue represents a single error or warning recorded while parsing a sample.
type Issue struct {
	Path    string // JSON Pointer (for example: /static/camera/shutterAngle).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":0, "max":360})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages returns the human readable message of every issue, in order.
func (iss Issues) Messages() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

// WithCode returns the subset of issues carrying the given code.
func (iss Issues) WithCode(code string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Code == code {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
