package reqarg

import "fmt"

// A Source is one of the logical locations in an HTTP request a value can come from.
type Source string

const (
	SourceQuery   Source = "get"
	SourceForm    Source = "post"
	SourceArgs    Source = "args"
	SourceCookies Source = "cookies"
	SourceFiles   Source = "files"
)

// Sources lists every valid Source.
var Sources = []Source{SourceQuery, SourceForm, SourceArgs, SourceCookies, SourceFiles}

func (s Source) String() string { return string(s) }

// Valid asserts s is one of the enumerated Sources.
func (s Source) Valid() error {
	switch s {
	case SourceQuery, SourceForm, SourceArgs, SourceCookies, SourceFiles:
		return nil
	default:
		return fmt.Errorf("%w: source %q", ErrNotValid, string(s))
	}
}

// NormalizeSource returns s when valid and SourceArgs otherwise.
// An unrecognized Source is never an error.
func NormalizeSource(s Source) Source {
	if s.Valid() != nil {
		return SourceArgs
	}

	return s
}
