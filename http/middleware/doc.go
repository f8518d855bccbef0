/*
Package middleware defines what a middleware is in reqarg and a set of basic middlewares.

The available middlewares are:
  - CORS
  - ForceHTTPS
  - InjectCarrier
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

InjectCarrier is what lets arg.WrapContext and arg.Resolver.Handler
resolve arguments from the request a handler is serving.
router.New always includes it, innermost.
A chain for a public-facing server might look like:

	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.ForceHTTPS(env),
		middleware.RateLimit(middleware.NewVisitors(0, 0)),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.CORS("https://example.com"),
	}
*/
package middleware
