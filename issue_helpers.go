package opentrackio

// IssueAt creates an Issue at the given path with provided code, message data and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code string, data map[string]string, params map[string]any) Issue {
	iss := p.Issue(code, data)
	iss.Params = params
	return iss
}
