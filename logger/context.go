package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/reqarg"
)

var (
	_ encoding.TextMarshaler = LogContext{}
	_ fmt.Stringer           = LogContext{}
)

// A LogContext describes the request, and the part of it being resolved,
// a [Logger] method was called about.
type LogContext struct {
	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Param is the declared handler parameter being resolved.
	Param string

	// Source and Key locate the request value being read.
	Source reqarg.Source
	Key    string

	// RequestID is the ID the request was tagged with.
	RequestID string

	// Request is the *http.Request being served.
	Request *http.Request
}

type requestText struct {
	Method string     `json:"method"`
	URL    string     `json:"url"`
	Form   url.Values `json:"form,omitempty"`
}

type logContextText struct {
	Error     string       `json:"error,omitempty"`
	Param     string       `json:"param,omitempty"`
	Source    string       `json:"source,omitempty"`
	Key       string       `json:"key,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
	Request   *requestText `json:"request,omitempty"`
}

// MarshalText encodes the non-zero fields of lc as a JSON object.
// Form values of the Request are included once parsed.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	out := logContextText{
		Param:     lc.Param,
		Source:    lc.Source.String(),
		Key:       lc.Key,
		RequestID: lc.RequestID,
	}

	if lc.Error != nil {
		out.Error = lc.Error.Error()
	}

	if lc.Request != nil {
		out.Request = &requestText{Method: lc.Request.Method, URL: lc.Request.URL.String(), Form: lc.Request.Form}
	}

	return json.Marshal(out)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}

	return string(b)
}
