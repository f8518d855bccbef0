package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/arg"
	"github.com/xy-planning-network/reqarg/http/middleware"
	"github.com/xy-planning-network/reqarg/http/req"
)

// A Route maps a path and HTTP method to an [http.Handler].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// ArgsRoute constructs a Route whose handler receives its arguments resolved by res.
func ArgsRoute(method, path string, res *arg.Resolver, handler func(http.ResponseWriter, *http.Request, arg.Args)) Route {
	return Route{Path: path, Method: method, Handler: res.Handler(handler)}
}

// Router routes requests to handlers whose arguments are resolved from them.
//
// Every route is served with a req.Carrier over the request in its context,
// built with req.FromMuxRequest, so route variables resolve like query params.
type Router struct {
	env           reqarg.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
// logReq is applied to every request, including those matching no Route;
// on routes, it follows the middlewares added with OnEveryRequest.
func New(env reqarg.Environment, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	return &Router{env: env, logReq: logReq, r: mux.NewRouter()}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets handler as the one called when no registered Route is matched.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.r.NotFoundHandler = r.chain(handler, []middleware.Adapter{r.logReq})
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set and request logging.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares)+1)
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, r.logReq)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		r.r.Handle(route.Path, r.chain(route.Handler, mws)).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request matching a Route.
// Routes registered earlier are unaffected.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, hr *http.Request) {
	r.r.ServeHTTP(w, hr)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		env:           r.env,
		everyReqStack: append([]middleware.Adapter(nil), r.everyReqStack...),
		logReq:        r.logReq,
		r:             r.r.PathPrefix(prefix).Subrouter(),
	}
}

// chain wraps handler in mws, then the panic reporting and req.Carrier injection every route gets.
func (r *Router) chain(handler http.Handler, mws []middleware.Adapter) http.Handler {
	mws = append(mws,
		middleware.ReportPanic(r.env),
		middleware.InjectCarrier(req.FromMuxRequest),
	)

	return middleware.Chain(handler, mws...)
}
