package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Task and resource names repeat heavily across tasks and timelines, so
// interning keeps comparisons cheap and map keys small.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns a slice of strings.
func NewInternedStrings(strs []string) []InternedString {
	if len(strs) == 0 {
		return nil
	}
	out := make([]InternedString, len(strs))
	for i, s := range strs {
		out[i] = NewInternedString(s)
	}
	return out
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
