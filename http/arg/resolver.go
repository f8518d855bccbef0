package arg

import (
	"fmt"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/req"
	"github.com/xy-planning-network/reqarg/logger"
)

// A Resolver binds a handler's declared parameters to the Getters that resolve them.
//
// A Resolver is immutable once constructed and safe for concurrent use.
type Resolver struct {
	params  []string
	getters map[string]Getter
	source  reqarg.Source
	log     logger.Logger
}

type resolverConfig struct {
	positional []Getter
	named      []namedGetter
	source     reqarg.Source
	log        logger.Logger
}

// A ResolverOption configures a Resolver when constructing a new one.
type ResolverOption func(*resolverConfig)

// Positional binds getters to the declared parameters in order:
// the first Getter to the first parameter, and so on.
// Getters beyond the last parameter are ignored.
func Positional(getters ...Getter) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.positional = append(cfg.positional, getters...)
	}
}

// With binds g to the declared parameter param.
// With takes precedence over Positional for the same parameter.
func With(param string, g Getter) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.named = append(cfg.named, namedGetter{param, g})
	}
}

// FromSource sets the source parameters without a Getter are looked up in.
// An invalid Source falls back to reqarg.SourceArgs.
func FromSource(src reqarg.Source) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.source = reqarg.NormalizeSource(src)
	}
}

// WithLogger sets the logger coercion fallbacks are reported to at debug level.
func WithLogger(l logger.Logger) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.log = l
	}
}

// New constructs a Resolver for a handler declaring params.
//
// Without options, each parameter is looked up by its name
// in the combined query and form values.
func New(params []string, opts ...ResolverOption) *Resolver {
	cfg := resolverConfig{source: reqarg.SourceArgs}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Resolver{
		params:  append([]string(nil), params...),
		getters: make(map[string]Getter, len(params)),
		source:  cfg.source,
		log:     cfg.log,
	}

	for i, g := range cfg.positional {
		if i >= len(r.params) {
			break
		}

		if g != nil {
			r.getters[r.params[i]] = g
		}
	}

	for _, ng := range cfg.named {
		if ng.getter != nil {
			r.getters[ng.name] = ng.getter
		}
	}

	return r
}

// Params returns the declared parameter names, in declaration order.
func (r *Resolver) Params() []string { return append([]string(nil), r.params...) }

// Source returns the source parameters without a Getter are looked up in.
func (r *Resolver) Source() reqarg.Source { return r.source }

// Accessor constructs the Accessor r resolves against for one call on c.
func (r *Resolver) Accessor(c req.Carrier) *req.Accessor {
	var opts []req.AccessorOption
	if r.log != nil {
		opts = append(opts, req.WithLogger(r.log))
	}

	return req.NewAccessor(c, opts...)
}

// paramError is a Getter failure for a declared parameter.
type paramError struct {
	param string
	err   error
}

func (e *paramError) Error() string { return fmt.Sprintf("resolving %q: %s", e.param, e.err) }

func (e *paramError) Unwrap() error { return e.err }

// An Override supplies a parameter's value directly at call time.
type Override struct {
	name  string
	value any
}

// Set overrides the value of the declared parameter name with v.
func Set(name string, v any) Override { return Override{name, v} }

// Resolve resolves every declared parameter, in declaration order.
//
// For each parameter, the first of these wins:
//  1. an Override for it, used verbatim
//  2. its Getter
//  3. a reserved name, such as "_request" or "_get", resolving to the whole object
//  4. a lookup of the parameter's name in the default source
func (r *Resolver) Resolve(a *req.Accessor, overrides ...Override) (Args, error) {
	set := make(map[string]any, len(overrides))
	for _, o := range overrides {
		set[o.name] = o.value
	}

	vals := make(map[string]any, len(r.params))
	for _, param := range r.params {
		if v, ok := set[param]; ok {
			vals[param] = v
			continue
		}

		if g, ok := r.getters[param]; ok {
			v, err := g(a, param)
			if err != nil {
				return Args{}, &paramError{param, err}
			}
			vals[param] = v
			continue
		}

		if v, ok := a.Reserved(param); ok {
			vals[param] = v
			continue
		}

		vals[param] = a.Lookup(r.source, param)
	}

	return Args{names: r.params, values: vals}, nil
}
