package arg

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"dario.cat/mergo"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/req"
)

// A Storage constructs the value a Collection resolves to from its resolved fields.
type Storage func(fields map[string]any) (any, error)

// MapStorage resolves a Collection to its fields as a map[string]any.
func MapStorage(fields map[string]any) (any, error) { return fields, nil }

// StructStorage resolves a Collection to a T whose exported fields are set from fields.
// A field named "title" sets the struct field Title.
// Fields resolving to nil leave the struct field at its zero value.
//
// A field naming no exported struct field, or holding a value of the wrong kind, is an error.
func StructStorage[T any]() Storage {
	return func(fields map[string]any) (any, error) {
		set := make(map[string]any, len(fields))
		for name, v := range fields {
			if v != nil {
				set[name] = v
			}
		}

		if err := checkFields(reflect.TypeOf((*T)(nil)).Elem(), set); err != nil {
			return nil, err
		}

		dst := new(T)
		if err := mergo.Map(dst, set, mergo.WithOverride); err != nil {
			return nil, err
		}

		return *dst, nil
	}
}

// checkFields reports the first name in set that does not map onto an exported field of typ,
// matching names to fields by upper-casing their initial.
func checkFields(typ reflect.Type, set map[string]any) error {
	if typ.Kind() != reflect.Struct {
		return nil
	}

	for name := range set {
		sf, ok := typ.FieldByName(fieldName(name))
		if !ok || !sf.IsExported() {
			return fmt.Errorf("no exported field on %s for %q", typ, name)
		}
	}

	return nil
}

func fieldName(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[n:]
}

type namedGetter struct {
	name   string
	getter Getter
}

type collectionConfig struct {
	named   []namedGetter
	source  reqarg.Source
	storage Storage
}

// A CollectionOption configures a Collection when constructing a new one.
type CollectionOption func(*collectionConfig)

// Field resolves the named field with g rather than by its name alone.
func Field(name string, g Getter) CollectionOption {
	return func(cfg *collectionConfig) {
		cfg.named = append(cfg.named, namedGetter{name, g})
	}
}

// From sets the source bare fields are looked up in.
// An invalid Source falls back to reqarg.SourceArgs.
func From(src reqarg.Source) CollectionOption {
	return func(cfg *collectionConfig) {
		cfg.source = reqarg.NormalizeSource(src)
	}
}

// Into sets the Storage the resolved fields are handed to.
func Into(s Storage) CollectionOption {
	return func(cfg *collectionConfig) {
		if s != nil {
			cfg.storage = s
		}
	}
}

// Collection resolves a parameter to one value aggregating several request fields.
//
// Each bare field is looked up by its name in the configured source, the combined query and form values by default.
// Each field added with Field resolves through its own Getter, with the field's name as the declared name.
// The fields are then handed to the configured Storage, MapStorage by default.
//
// A Storage failure is returned wrapping reqarg.ErrBadConfig.
func Collection(fields []string, opts ...CollectionOption) Getter {
	cfg := collectionConfig{source: reqarg.SourceArgs, storage: MapStorage}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(a *req.Accessor, param string) (any, error) {
		vals := make(map[string]any, len(fields)+len(cfg.named))
		for _, field := range fields {
			vals[field] = a.Lookup(cfg.source, field)
		}

		for _, ng := range cfg.named {
			v, err := ng.getter(a, ng.name)
			if err != nil {
				return nil, err
			}
			vals[ng.name] = v
		}

		v, err := cfg.storage(vals)
		if err != nil {
			return nil, fmt.Errorf("%w: collection %q: %s", reqarg.ErrBadConfig, param, err)
		}

		return v, nil
	}
}
