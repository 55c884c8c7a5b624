package field

// Documenter is implemented by value types and groups that render themselves
// back into document form.
type Documenter interface {
	Document() map[string]any
}

// Put sets m[name] when v is populated.
func Put[T any](m map[string]any, name string, v *T) {
	if v != nil {
		m[name] = *v
	}
}

// PutSlice sets m[name] when s is non-nil. Empty but present slices are kept.
func PutSlice[T any](m map[string]any, name string, s []T) {
	if s == nil {
		return
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	m[name] = out
}

// PutDoc sets m[name] to the rendered value when v is populated.
func PutDoc[T Documenter](m map[string]any, name string, v *T) {
	if v != nil {
		m[name] = (*v).Document()
	}
}

// PutDocs renders a slice of composites. Nil slices are skipped.
func PutDocs[T Documenter](m map[string]any, name string, s []T) {
	if s == nil {
		return
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v.Document()
	}
	m[name] = out
}

// PutObject sets m[name] to child when it has at least one key.
func PutObject(m map[string]any, name string, child map[string]any) {
	if len(child) > 0 {
		m[name] = child
	}
}
