package req

import (
	"net/url"

	"github.com/gorilla/schema"
)

// A Parser decodes request values into structs tagged with `schema:"name"`.
type Parser struct {
	dec *schema.Decoder
}

// NewParser constructs a Parser that ignores keys no field asks for.
func NewParser() *Parser {
	return &Parser{dec: newValuesDecoder()}
}

// DecodeValues decodes vals into structPtr on a best-effort basis.
//
// Every field that converts is set, whether or not others fail.
// Fields that fail are reported as FieldErrors, which wrap reqarg.ErrNotValid.
// Calling DecodeValues with anything but a pointer to a struct,
// or with fields schema cannot convert into, returns reqarg.ErrBadConfig.
func (p *Parser) DecodeValues(vals url.Values, structPtr any) error {
	if err := p.dec.Decode(structPtr, vals); err != nil {
		return translateDecoderError(err)
	}

	return nil
}
