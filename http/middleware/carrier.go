package middleware

import (
	"net/http"

	"github.com/xy-planning-network/reqarg/http/req"
)

// A CarrierFn adapts an *http.Request into a req.Carrier,
// e.g., req.FromRequest or req.FromMuxRequest.
type CarrierFn func(*http.Request) req.Carrier

// InjectCarrier adapts each request with fn and stashes the resulting req.Carrier
// in the request's context, where arg.WrapContext and arg.Resolver.Handler find it.
//
// The Carrier reads the request as InjectCarrier received it:
// the body is consumed through the Carrier, not through the handler's *http.Request.
//
// If fn is nil, NoopAdapter returns and this middleware does nothing.
func InjectCarrier(fn CarrierFn) Adapter {
	if fn == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(req.NewContext(r.Context(), fn(r))))
		})
	}
}
