package req

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/reqarg"
)

func newValuesDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// the rest are mismatches between a request's values and the expected shape,
// returned as FieldErrors.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE: outside of misuse, schema wraps every error up in a MultiError.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", reqarg.ErrBadConfig, err)
	}

	var fieldErrs FieldErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			fieldErrs = append(fieldErrs, FieldError{
				Field: err.Key,
				// NOTE: for non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			fieldErrs = append(fieldErrs, FieldError{
				Field: err.Key,
				Rule:  "required",
			})

		default:
			// NOTE: a field whose type has no registered schema.Converter
			// only errors once the values set a key for it.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type: %s", reqarg.ErrBadConfig, err)
			}

			return fmt.Errorf("%w: %s", reqarg.ErrBadConfig, err)
		}
	}

	if len(fieldErrs) == 0 {
		return nil
	}

	return fieldErrs
}
