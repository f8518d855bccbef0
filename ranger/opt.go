package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/middleware"
	"github.com/xy-planning-network/reqarg/http/router"
	"github.com/xy-planning-network/reqarg/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRoutes is an example of the second.
// Routes can only be registered once the *Ranger's router.Router exists,
// which is after every RangerOption has been called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext sets the context.Context whose cancellation stops [*Ranger.Guide].
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", reqarg.ErrMissingData)
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid reqarg.Environment,
// or, reads from the ENVIRONMENT environment variable a valid reqarg.Environment.
//
// If both fail, the default reqarg.Environment is set to reqarg.Development.
func WithEnv(env string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := reqarg.Environment(env)
		if err := e.Valid(); err != nil {
			e = reqarg.EnvVarOrEnv(environmentEnvVar, reqarg.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithLogger sets the logger.Logger the *Ranger and its requests log with.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", reqarg.ErrMissingData)
		}

		rng.l = l
		return nil, nil
	}
}

// WithMiddlewares replaces the middleware.Adapters every route is served behind.
//
// HTTPS redirection, IP address and request ID middlewares are always applied before mws,
// and request logging after.
func WithMiddlewares(mws ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.mws = mws
		return nil, nil
	}
}

// WithRoutes registers routes on the *Ranger's router.Router once it is constructed.
func WithRoutes(routes ...router.Route) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		for _, route := range routes {
			if route.Handler == nil {
				return nil, fmt.Errorf("%w: no handler for %s %s", reqarg.ErrMissingData, route.Method, route.Path)
			}
		}

		return func() error {
			rng.HandleRoutes(routes)
			return nil
		}, nil
	}
}

// WithServer sets the *http.Server [*Ranger.Guide] runs.
// Its Handler is replaced with the *Ranger's router.Router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", reqarg.ErrMissingData)
		}

		rng.srv = s
		return nil, nil
	}
}
