package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/arg"
	"github.com/xy-planning-network/reqarg/http/req"
	"github.com/xy-planning-network/reqarg/http/router"
	"github.com/xy-planning-network/reqarg/logger"
)

type post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type search struct {
	Term string `schema:"q" json:"term"`
	Page int    `schema:"page" json:"page"`
}

type upload struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

var greetResolver = arg.New(
	[]string{"name", "greeting"},
	arg.With("greeting", arg.Query(arg.Default("hello"))),
)

// greet is shared by the net/http and fasthttp servers.
func greet(args arg.Args) (string, error) {
	return fmt.Sprintf("%s %s", args.String("greeting"), args.String("name")), nil
}

// handlers serve the net/http routes, logging failures to l.
type handlers struct {
	l logger.Logger
}

// routes are the net/http routes of the example server.
func routes(l logger.Logger) []router.Route {
	h := handlers{l}
	greetFn := arg.WrapContext(greetResolver, func(_ context.Context, args arg.Args) (string, error) {
		return greet(args)
	})

	return []router.Route{
		{
			Path:   "/hello/{name}",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				out, err := greetFn(r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				fmt.Fprint(w, out)
			}),
		},
		router.ArgsRoute(http.MethodGet, "/sum", arg.New(
			[]string{"a", "b"},
			arg.Positional(
				arg.Query(arg.As(req.Int), arg.Default(0)),
				arg.Query(arg.As(req.Int), arg.Multi()),
			),
		), h.sum),
		router.ArgsRoute(http.MethodPost, "/posts", arg.New(
			[]string{"post"},
			arg.With("post", arg.Collection(
				[]string{"title", "content", "author"},
				arg.Into(arg.StructStorage[post]()),
			)),
		), h.createPost),
		router.ArgsRoute(http.MethodPost, "/upload", arg.New(
			[]string{"docs"},
			arg.With("docs", arg.File(arg.Multi())),
		), h.uploadDocs),
		router.ArgsRoute(http.MethodGet, "/search", arg.New(
			[]string{"search", "theme"},
			arg.With("search", arg.Decode[search](reqarg.SourceQuery)),
			arg.With("theme", arg.Cookie(arg.Default("light"))),
		), h.searchPosts),
	}
}

func (h handlers) sum(w http.ResponseWriter, _ *http.Request, args arg.Args) {
	total := args.Int("a")
	bs, _ := args.Value("b").([]any)
	for _, b := range bs {
		total += b.(int)
	}

	h.writeJSON(w, http.StatusOK, map[string]int{"sum": total})
}

func (h handlers) createPost(w http.ResponseWriter, _ *http.Request, args arg.Args) {
	p := args.Value("post").(post)
	if p.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, p)
}

func (h handlers) uploadDocs(w http.ResponseWriter, _ *http.Request, args arg.Args) {
	out := make([]upload, 0)
	for _, fh := range args.Files("docs") {
		out = append(out, upload{Filename: fh.Filename, Size: fh.Size})
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h handlers) searchPosts(w http.ResponseWriter, _ *http.Request, args arg.Args) {
	h.writeJSON(w, http.StatusOK, map[string]any{"search": args.Value("search"), "theme": args.String("theme")})
}

// fastGreet serves greet over fasthttp, reading the name from the query string.
func fastGreet(l logger.Logger) fasthttp.RequestHandler {
	fn := arg.Wrap(greetResolver, greet)

	return func(rc *fasthttp.RequestCtx) {
		out, err := fn(req.FromFastHTTP(rc))
		if err != nil {
			l.Error("failed greeting", &logger.LogContext{Error: err})
			rc.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
			return
		}

		rc.SetContentType("text/plain; charset=utf-8")
		rc.SetBodyString(out)
	}
}

func (h handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.l.Error("failed writing response", &logger.LogContext{Error: err})
	}
}
