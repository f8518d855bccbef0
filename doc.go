/*
Package reqarg maps the parameters of an incoming HTTP request onto the named arguments of a handler.

The root package holds the vocabulary shared by the rest of the module:
the [Source] enumeration naming where a value lives in a request,
sentinel errors, context keys and environment configuration helpers.

Resolution itself happens in two packages.
Package http/req wraps a host framework's request in an Accessor.
Package http/arg declares getters and binds them to handler parameters through a Resolver.
*/
package reqarg
