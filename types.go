package opentrackio

// Strictness configures enforcement for duplicate keys in text inputs.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles decoding options for text and binary inputs. Zero values
// disable the corresponding limit.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
}

func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
