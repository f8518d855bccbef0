package req

import (
	"mime/multipart"
	"net/url"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/logger"
)

// Reserved parameter names resolve to a whole source,
// or the framework request itself, rather than a single value.
const (
	ReservedRequest = "_request"
	ReservedQuery   = "_get"
	ReservedForm    = "_post"
	ReservedArgs    = "_args"
	ReservedCookies = "_cookies"
	ReservedFiles   = "_files"
)

// An Accessor answers lookups against the sources of one request.
//
// Sources are read from the Carrier on first use and memoized,
// so an Accessor must not outlive the call it was built for.
type Accessor struct {
	c   Carrier
	log logger.Logger

	query   url.Values
	form    url.Values
	args    url.Values
	cookies url.Values
	files   map[string][]*multipart.FileHeader
}

// An AccessorOption configures an Accessor when constructing a new one.
type AccessorOption func(*Accessor)

// WithLogger sets the logger debug messages on coercion failures are written to.
func WithLogger(l logger.Logger) AccessorOption {
	return func(a *Accessor) {
		a.log = l
	}
}

// NewAccessor constructs an Accessor over c.
func NewAccessor(c Carrier, opts ...AccessorOption) *Accessor {
	a := &Accessor{c: c}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Carrier returns the Carrier a reads from.
func (a *Accessor) Carrier() Carrier { return a.c }

// Values returns every value in the named source, keyed by name.
// An invalid Source reads the combined query and form values.
//
// SourceFiles has no string values; Values returns the filenames of uploads instead.
func (a *Accessor) Values(src reqarg.Source) url.Values {
	switch reqarg.NormalizeSource(src) {
	case reqarg.SourceQuery:
		if a.query == nil {
			a.query = orEmpty(a.c.Query())
		}
		return a.query

	case reqarg.SourceForm:
		if a.form == nil {
			a.form = orEmpty(a.c.Form())
		}
		return a.form

	case reqarg.SourceCookies:
		if a.cookies == nil {
			a.cookies = orEmpty(a.c.Cookies())
		}
		return a.cookies

	case reqarg.SourceFiles:
		names := make(url.Values)
		for key, fhs := range a.Files() {
			for _, fh := range fhs {
				names.Add(key, fh.Filename)
			}
		}
		return names

	default:
		if a.args == nil {
			a.args = merge(a.Values(reqarg.SourceQuery), a.Values(reqarg.SourceForm))
		}
		return a.args
	}
}

// Files returns every uploaded file, keyed by form field name.
func (a *Accessor) Files() map[string][]*multipart.FileHeader {
	if a.files == nil {
		a.files = a.c.Files()
		if a.files == nil {
			a.files = make(map[string][]*multipart.FileHeader)
		}
	}

	return a.files
}

// One returns the first value for key in src, or def if there is none.
//
// If coerce is not nil, it converts the raw value;
// when that fails, One returns def.
//
// For SourceFiles, One returns the first [*multipart.FileHeader] and ignores coerce.
func (a *Accessor) One(src reqarg.Source, key string, def any, coerce Coercer) any {
	if reqarg.NormalizeSource(src) == reqarg.SourceFiles {
		fhs := a.Files()[key]
		if len(fhs) == 0 {
			return def
		}

		return fhs[0]
	}

	vals := a.Values(src)[key]
	if len(vals) == 0 {
		return def
	}

	if coerce == nil {
		return vals[0]
	}

	v, err := coerce(vals[0])
	if err != nil {
		a.debug("coercion failed, using default", src, key, err)
		return def
	}

	return v
}

// All returns every value for key in src, in the order received.
// All never returns nil.
func (a *Accessor) All(src reqarg.Source, key string) []string {
	vals := a.Values(src)[key]
	out := make([]string, len(vals))
	copy(out, vals)

	return out
}

// AllFiles returns every file uploaded under key, in the order received.
// AllFiles never returns nil.
func (a *Accessor) AllFiles(key string) []*multipart.FileHeader {
	fhs := a.Files()[key]
	out := make([]*multipart.FileHeader, len(fhs))
	copy(out, fhs)

	return out
}

// Lookup resolves key by its name alone in the named source,
// as if calling One without a default or coercion.
// An invalid Source falls back to the combined query and form values.
func (a *Accessor) Lookup(src reqarg.Source, key string) any {
	return a.One(src, key, nil, nil)
}

// Reserved resolves the reserved parameter names
// to the whole source, or the framework request, they stand for.
// For any other name, Reserved reports false.
func (a *Accessor) Reserved(name string) (any, bool) {
	switch name {
	case ReservedRequest:
		return a.c.Request(), true
	case ReservedQuery:
		return a.Values(reqarg.SourceQuery), true
	case ReservedForm:
		return a.Values(reqarg.SourceForm), true
	case ReservedArgs:
		return a.Values(reqarg.SourceArgs), true
	case ReservedCookies:
		return a.Values(reqarg.SourceCookies), true
	case ReservedFiles:
		return a.Files(), true
	default:
		return nil, false
	}
}

func (a *Accessor) debug(msg string, src reqarg.Source, key string, err error) {
	if a.log == nil {
		return
	}

	a.log.Debug(msg, &logger.LogContext{Error: err, Source: src, Key: key})
}

// merge combines sets of values, appending values for repeated keys in argument order.
func merge(sets ...url.Values) url.Values {
	out := make(url.Values)
	for _, set := range sets {
		for key, vals := range set {
			out[key] = append(out[key], vals...)
		}
	}

	return out
}

func orEmpty(vals url.Values) url.Values {
	if vals == nil {
		return make(url.Values)
	}

	return vals
}
