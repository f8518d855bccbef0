package arg

import (
	"errors"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/req"
)

// Decode resolves a parameter to a T decoded from every value in src
// using the `schema` struct tags on T.
//
// Decode is best-effort: fields whose values do not convert keep their zero value.
// A T that cannot be decoded into at all, such as a non-struct,
// returns an error wrapping reqarg.ErrBadConfig.
// SourceFiles, having no string values, decodes uploaded filenames.
func Decode[T any](src reqarg.Source) Getter {
	p := req.NewParser()

	return func(a *req.Accessor, param string) (any, error) {
		dst := new(T)
		err := p.DecodeValues(a.Values(src), dst)
		if err != nil && !errors.Is(err, reqarg.ErrNotValid) {
			return nil, err
		}

		return *dst, nil
	}
}
