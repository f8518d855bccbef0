/*
Package main provides a toy server resolving handler arguments with reqarg.

Run it with a .env file or environment variables; cf. package ranger.
Setting REQARG_ENGINE=fasthttp serves the greeting route over valyala/fasthttp instead.

	curl 'localhost:3000/hello/John?greeting=howdy'
	curl 'localhost:3000/sum?a=1&b=2&b=3'
	curl -d 'title=Hi&content=Body' 'localhost:3000/posts?author=ann'
	curl -F 'docs=@go.mod' -F 'docs=@go.sum' localhost:3000/upload
	curl 'localhost:3000/search?q=boots&page=2'
*/
package main

import (
	"os"

	"github.com/valyala/fasthttp"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/logger"
	"github.com/xy-planning-network/reqarg/ranger"
)

const (
	engineEnvVar    = "REQARG_ENGINE"
	fastHTTPEngine  = "fasthttp"
	fastAddrEnvVar  = "REQARG_FASTHTTP_ADDR"
	defaultFastAddr = "localhost:3001"
)

func main() {
	rng, err := ranger.New()
	if err != nil {
		logger.NewLogger().Fatal(err.Error(), nil)
		os.Exit(1)
	}

	l := rng.Logger()
	rng.HandleRoutes(routes(l))
	if reqarg.EnvVarOrString(engineEnvVar, "") == fastHTTPEngine {
		addr := reqarg.EnvVarOrString(fastAddrEnvVar, defaultFastAddr)
		l.Info("running fasthttp server at "+addr, nil)
		if err := fasthttp.ListenAndServe(addr, fastGreet(l)); err != nil {
			l.Fatal(err.Error(), nil)
			os.Exit(1)
		}
		return
	}

	if err := rng.Guide(); err != nil {
		l.Fatal(err.Error(), nil)
		os.Exit(1)
	}
}
