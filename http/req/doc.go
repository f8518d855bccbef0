/*
Package req provides uniform access to the values carried by an HTTP request.

A host framework's request is adapted into a [Carrier],
which exposes the query string, form body, cookies and uploaded files as multi-valued maps.
[FromRequest] adapts a plain [*net/http.Request],
[FromMuxRequest] additionally folds in gorilla/mux route variables,
and [FromFastHTTP] adapts a [*github.com/valyala/fasthttp.RequestCtx].

An [Accessor] wraps one Carrier for the lifetime of one call
and answers lookups against a [github.com/xy-planning-network/reqarg.Source]:
the first value for a key, every value for a key, or a lookup by a source's name.
Lookups are lenient:
a missing key yields the caller's default,
and so does a present value a [Coercer] cannot convert.

[Parser] decodes a whole source into a struct with gorilla/schema,
keeping whatever fields convert and reporting the rest as [FieldErrors].
*/
package req
