package field

import (
	opentrackio "github.com/reoring/opentrackio"
)

// Object is a view over one JSON object of the working document. Child views
// share the parent's error list.
type Object struct {
	m    map[string]any
	path opentrackio.PathRef
	errs *opentrackio.Issues
}

// New wraps the document root.
func New(root map[string]any, errs *opentrackio.Issues) *Object {
	return &Object{m: root, path: opentrackio.Root(), errs: errs}
}

// Path returns the JSON Pointer of this object.
func (o *Object) Path() opentrackio.PathRef { return o.path }

// At returns the path of a member.
func (o *Object) At(name string) opentrackio.PathRef { return o.path.Field(name) }

func (o *Object) Has(name string) bool {
	_, ok := o.m[name]
	return ok
}

// Len reports how many keys are still unclaimed.
func (o *Object) Len() int { return len(o.m) }

func (o *Object) Remove(name string) { delete(o.m, name) }

// RemoveIfEmpty removes name when it holds an object with no keys left.
func (o *Object) RemoveIfEmpty(name string) {
	if c, ok := o.m[name].(map[string]any); ok && len(c) == 0 {
		delete(o.m, name)
	}
}

// Done finishes a composite member: a failed composite is removed with
// everything inside it, a successful one only once its contents are consumed
// so that unknown nested keys still surface as warnings.
func (o *Object) Done(name string, ok bool) {
	if ok {
		o.RemoveIfEmpty(name)
		return
	}
	o.Remove(name)
}

// Fail appends an issue for member name. data feeds the message template;
// kv pairs become Params.
func (o *Object) Fail(name, code string, data map[string]string, kv ...any) {
	*o.errs = append(*o.errs, o.At(name).Issue(code, data, kv...))
}

// FailAt appends an issue at an arbitrary path.
func (o *Object) FailAt(p opentrackio.PathRef, code string, data map[string]string, kv ...any) {
	*o.errs = append(*o.errs, p.Issue(code, data, kv...))
}

// Object returns a view over member name. A member that exists but is not an
// object is reported, removed and treated as absent.
func (o *Object) Object(name string) (*Object, bool) {
	v, ok := o.m[name]
	if !ok {
		return nil, false
	}
	c, ok := v.(map[string]any)
	if !ok {
		o.Fail(name, opentrackio.CodeInvalidType, map[string]string{"type": "object"})
		o.Remove(name)
		return nil, false
	}
	return &Object{m: c, path: o.At(name), errs: o.errs}, true
}

// Array returns member name as a slice with the same absent/structural rules
// as Object. The member is left in place.
func (o *Object) Array(name string) ([]any, bool) {
	v, ok := o.m[name]
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	if !ok {
		o.Fail(name, opentrackio.CodeInvalidType, map[string]string{"type": "array"})
		o.Remove(name)
		return nil, false
	}
	return a, true
}

// Elem returns element i of array member name as an object view.
func (o *Object) Elem(name string, i int, v any) (*Object, bool) {
	p := o.At(name).Index(i)
	c, ok := v.(map[string]any)
	if !ok {
		o.FailAt(p, opentrackio.CodeInvalidType, map[string]string{"type": "object"})
		return nil, false
	}
	return &Object{m: c, path: p, errs: o.errs}, true
}

// Static returns the view over static.<name>, the home of version-invariant
// fields.
func (o *Object) Static(name string) (*Object, bool) {
	st, ok := o.Object(opentrackio.StaticKey)
	if !ok {
		return nil, false
	}
	return st.Object(name)
}

// DoneStatic releases static.<name> and then static itself once both are empty.
func (o *Object) DoneStatic(name string) {
	if st, ok := o.m[opentrackio.StaticKey].(map[string]any); ok {
		if c, ok := st[name].(map[string]any); ok && len(c) == 0 {
			delete(st, name)
		}
	}
	o.RemoveIfEmpty(opentrackio.StaticKey)
}

// Require reports whether every name is present. When some are missing it
// records one required issue against o itself, listing them in Params.
func (o *Object) Require(names ...string) bool {
	var missing []string
	for _, n := range names {
		if !o.Has(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return true
	}
	o.FailAt(o.path, opentrackio.CodeRequired, nil, "missing", missing)
	return false
}
