/*
Package router routes HTTP requests to handlers whose arguments reqarg resolves.

A [Router] is a thin wrapper around [mux.Router].
It leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

Every Route is served with a req.Carrier in the request's context,
so handlers built with arg.Resolver.Handler or arg.WrapContext
resolve their arguments from the request, route variables included:

	res := arg.New([]string{"name", "greeting"}, arg.With("greeting", arg.Query(arg.Default("hello"))))
	r.Handle(router.ArgsRoute(http.MethodGet, "/hello/{name}", res, func(w http.ResponseWriter, _ *http.Request, args arg.Args) {
		fmt.Fprintf(w, "%s %s", args.String("greeting"), args.String("name"))
	}))
*/
package router
