package engine

// Framer tracks object/array nesting for decoders whose token stream does not
// distinguish object keys from string values.
type Framer struct {
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

// Open records the start of an object or array.
func (f *Framer) Open(object bool) {
	f.stack = append(f.stack, frame{object: object, expectingKey: object})
}

// Close records the end of the innermost container, which counts as a value
// of the enclosing one.
func (f *Framer) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.Value()
}

// Key reports whether the next string token is an object key and, if so,
// moves the innermost object to its value position.
func (f *Framer) Key() bool {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

// Value records that a complete value was read.
func (f *Framer) Value() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// Scalar classifies a decoded scalar token and updates the frame state.
// Unknown token types map to null.
func (f *Framer) Scalar(v any, offset int64, number func(any) (string, bool)) Token {
	switch t := v.(type) {
	case string:
		if f.Key() {
			return Token{Kind: KindKey, String: t, Offset: offset}
		}
		f.Value()
		return Token{Kind: KindString, String: t, Offset: offset}
	case bool:
		f.Value()
		return Token{Kind: KindBool, Bool: t, Offset: offset}
	}
	f.Value()
	if s, ok := number(v); ok {
		return Token{Kind: KindNumber, Number: s, Offset: offset}
	}
	return Token{Kind: KindNull, Offset: offset}
}
