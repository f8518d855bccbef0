package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/reqarg"
)

// A FieldError is an issue with a concrete value not converting into the type of its field.
type FieldError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// FieldErrors is a set of FieldError.
type FieldErrors []FieldError

func (v FieldErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (v FieldErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []FieldError `json:"fieldErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (FieldErrors) Unwrap() error { return reqarg.ErrNotValid }
