package arg

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/req"
	"github.com/xy-planning-network/reqarg/logger"
)

// A Func is a target whose arguments are resolved from a request.
type Func[T any] func(c req.Carrier, overrides ...Override) (T, error)

// A ContextFunc is a target whose arguments are resolved from the request stashed in a context.Context.
type ContextFunc[T any] func(ctx context.Context, overrides ...Override) (T, error)

// Wrap binds target to r.
// Each call of the returned Func builds a fresh Accessor over c,
// resolves the declared parameters and calls target with them.
//
// Errors returned by target are returned unchanged.
func Wrap[T any](r *Resolver, target func(Args) (T, error)) Func[T] {
	return func(c req.Carrier, overrides ...Override) (T, error) {
		args, err := r.Resolve(r.Accessor(c), overrides...)
		if err != nil {
			var zero T
			return zero, err
		}

		return target(args)
	}
}

// WrapContext binds target to r, reading the Carrier from the context
// the returned ContextFunc is called with.
// If the context carries none, it returns an error wrapping reqarg.ErrNoRequest.
//
// Errors returned by target are returned unchanged.
func WrapContext[T any](r *Resolver, target func(context.Context, Args) (T, error)) ContextFunc[T] {
	return func(ctx context.Context, overrides ...Override) (T, error) {
		var zero T
		c, ok := req.FromContext(ctx)
		if !ok {
			return zero, fmt.Errorf("%w: no carrier in context", reqarg.ErrNoRequest)
		}

		args, err := r.Resolve(r.Accessor(c), overrides...)
		if err != nil {
			return zero, err
		}

		return target(ctx, args)
	}
}

// Handler binds handler to r as an [http.Handler].
//
// The Carrier stashed in the request's context is used when present,
// as it is for routes registered on a router.Router;
// otherwise the request is adapted with req.FromRequest.
//
// If resolving fails, Handler responds with 500 Internal Server Error.
func (r *Resolver) Handler(handler func(w http.ResponseWriter, r *http.Request, args Args)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		c, ok := req.FromContext(hr.Context())
		if !ok {
			c = req.FromRequest(hr)
		}

		args, err := r.Resolve(r.Accessor(c))
		if err != nil {
			if r.log != nil {
				lc := &logger.LogContext{Error: err, Request: hr}
				var pe *paramError
				if errors.As(err, &pe) {
					lc.Param = pe.param
				}
				r.log.Error("failed resolving handler arguments", lc)
			}

			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		handler(w, hr, args)
	})
}
