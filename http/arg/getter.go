package arg

import (
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/req"
)

// A Getter resolves the value of one declared parameter from a request.
// param is the declared parameter's name, used as the lookup key unless a Getter renames it.
//
// A Getter returns an error only for misconfiguration;
// missing or malformed request data resolves to a default.
type Getter func(a *req.Accessor, param string) (any, error)

// getterConfig captures the options a Getter closes over.
type getterConfig struct {
	name   string
	def    any
	coerce req.Coercer
	multi  bool
}

// An Option configures a Getter when constructing a new one.
type Option func(*getterConfig)

// Name looks up key instead of the declared parameter's name.
func Name(key string) Option {
	return func(cfg *getterConfig) {
		cfg.name = key
	}
}

// Default resolves to v when the key is missing or its value cannot be coerced.
func Default(v any) Option {
	return func(cfg *getterConfig) {
		cfg.def = v
	}
}

// As converts the raw value with coerce.
func As(coerce req.Coercer) Option {
	return func(cfg *getterConfig) {
		cfg.coerce = coerce
	}
}

// Multi resolves every value for the key instead of the first.
func Multi() Option {
	return func(cfg *getterConfig) {
		cfg.multi = true
	}
}

func newGetterConfig(opts []Option) getterConfig {
	var cfg getterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (cfg getterConfig) key(param string) string {
	if cfg.name != "" {
		return cfg.name
	}

	return param
}

// Query resolves a parameter from the query string.
func Query(opts ...Option) Getter { return sourceGetter(reqarg.SourceQuery, newGetterConfig(opts)) }

// Form resolves a parameter from the form body.
func Form(opts ...Option) Getter { return sourceGetter(reqarg.SourceForm, newGetterConfig(opts)) }

// Either resolves a parameter from the query string or the form body,
// preferring the query string.
func Either(opts ...Option) Getter { return sourceGetter(reqarg.SourceArgs, newGetterConfig(opts)) }

// Cookie resolves a parameter from the request's cookies.
// Multi has no effect.
func Cookie(opts ...Option) Getter {
	cfg := newGetterConfig(opts)
	cfg.multi = false

	return sourceGetter(reqarg.SourceCookies, cfg)
}

// File resolves a parameter to an uploaded [*mime/multipart.FileHeader],
// or to a []*multipart.FileHeader with Multi.
// A missing upload resolves to nil; Default and As have no effect.
func File(opts ...Option) Getter {
	cfg := newGetterConfig(opts)

	return func(a *req.Accessor, param string) (any, error) {
		key := cfg.key(param)
		if cfg.multi {
			return a.AllFiles(key), nil
		}

		return a.One(reqarg.SourceFiles, key, nil, nil), nil
	}
}

// sourceGetter resolves a parameter from src.
//
// With Multi, the values resolve to a []string,
// or, with As, to a []any of the values that coerce.
func sourceGetter(src reqarg.Source, cfg getterConfig) Getter {
	return func(a *req.Accessor, param string) (any, error) {
		key := cfg.key(param)
		if !cfg.multi {
			return a.One(src, key, cfg.def, cfg.coerce), nil
		}

		vals := a.All(src, key)
		if cfg.coerce == nil {
			return vals, nil
		}

		coerced := make([]any, 0, len(vals))
		for _, raw := range vals {
			if v, err := cfg.coerce(raw); err == nil {
				coerced = append(coerced, v)
			}
		}

		return coerced, nil
	}
}
