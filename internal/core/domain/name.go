package domain

import "unique"

// Name is an interned object name. Equal names share one canonical copy.
type Name struct {
	h unique.Handle[string]
}

// NoName is the zero Name. It stands for an unnamed object.
var NoName Name

// NewName interns s.
func NewName(s string) Name {
	if s == "" {
		return NoName
	}
	return Name{h: unique.Make(s)}
}

// String returns the underlying string value.
func (n Name) String() string {
	if n.IsNone() {
		return ""
	}
	return n.h.Value()
}

// IsNone reports whether n is the zero Name.
func (n Name) IsNone() bool {
	return n == NoName
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	*n = NewName(string(text))
	return nil
}
