package field

import "regexp"

var (
	// URN matches lowercase urn:uuid identifiers.
	URN = regexp.MustCompile(`^urn:uuid:[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	// MACAddress matches six hex octets delimited consistently by ':' or '-'.
	MACAddress = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$|^(?:[0-9A-Fa-f]{2}-){5}[0-9A-Fa-f]{2}$`)
	// SemVer matches the dotted version strings of pre-1.0 protocol documents.
	SemVer = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)
)
