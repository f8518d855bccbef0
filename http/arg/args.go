package arg

import (
	"fmt"
	"mime/multipart"
)

// Args are the resolved values of a handler's declared parameters.
type Args struct {
	names  []string
	values map[string]any
}

// NewArgs constructs Args from names and their values, in order.
// Missing values are nil.
func NewArgs(names []string, values map[string]any) Args {
	a := Args{
		names:  append([]string(nil), names...),
		values: make(map[string]any, len(names)),
	}
	for _, name := range names {
		a.values[name] = values[name]
	}

	return a
}

// Names returns the declared parameter names, in declaration order.
func (a Args) Names() []string { return append([]string(nil), a.names...) }

// Values returns the resolved values, in declaration order.
func (a Args) Values() []any {
	out := make([]any, len(a.names))
	for i, name := range a.names {
		out[i] = a.values[name]
	}

	return out
}

// Map returns the resolved values keyed by parameter name.
func (a Args) Map() map[string]any {
	out := make(map[string]any, len(a.values))
	for name, v := range a.values {
		out[name] = v
	}

	return out
}

// Value returns the resolved value for name, or nil.
func (a Args) Value(name string) any { return a.values[name] }

// Has reports whether name resolved to a non-nil value.
func (a Args) Has(name string) bool { return a.values[name] != nil }

// String returns the value for name as a string.
// A nil value returns the empty string; other non-string values are formatted with fmt.
func (a Args) String(name string) string {
	switch v := a.values[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value for name if it resolved to an int, or 0.
func (a Args) Int(name string) int {
	n, _ := a.values[name].(int)
	return n
}

// Bool returns the value for name if it resolved to a bool, or false.
func (a Args) Bool(name string) bool {
	b, _ := a.values[name].(bool)
	return b
}

// Strings returns the value for name if it resolved to a []string, or nil.
func (a Args) Strings(name string) []string {
	s, _ := a.values[name].([]string)
	return s
}

// File returns the value for name if it resolved to an uploaded file, or nil.
func (a Args) File(name string) *multipart.FileHeader {
	fh, _ := a.values[name].(*multipart.FileHeader)
	return fh
}

// Files returns the value for name if it resolved to uploaded files, or nil.
func (a Args) Files(name string) []*multipart.FileHeader {
	fhs, _ := a.values[name].([]*multipart.FileHeader)
	return fhs
}
