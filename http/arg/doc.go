/*
Package arg resolves the declared parameters of a handler from an HTTP request.

A [Resolver] is the configuration of one handler:
the names of the parameters it declares, in order,
the [Getter] bound to each, and the source every other parameter is looked up in.

	r := arg.New([]string{"x", "y", "z"},
		arg.With("x", arg.Query()),
		arg.With("y", arg.Form()),
		arg.With("z", arg.Either(arg.As(req.Int), arg.Default(999))),
	)

Getters bound with [Positional] pair with the declared parameters in order.
A parameter without a Getter is looked up by its name,
in the combined query and form values unless [FromSource] says otherwise.

Each call resolves parameters in a fixed order:
a call-time [Override] wins over a Getter, which wins over looking the name up.
Missing values resolve to nil or the Getter's [Default],
and so do values its coercer cannot convert.

[Wrap], [WrapContext] and [Resolver.Handler] bind a target to a Resolver.
The target receives the resolved values as [Args].

[Collection] aggregates several request fields into one value,
a map by default or a struct with [StructStorage].
*/
package arg
