package engine

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/notifykit/notify"
)

// Engine turns a merged message list into one output format. Implementations
// are instantiated once at registry build time and shared across requests, so
// Render must not mutate engine state.
type Engine interface {
	// Setup validates and stores engine-specific options. Called at most once,
	// during registry build, and only when the registration carries a config
	// map. A failing Setup aborts startup.
	Setup(config map[string]any) error

	// Render produces format-specific output from the merged message list.
	// Output is returned verbatim to the render caller; engines writing
	// directly through the context return nil. Render must tolerate an empty
	// messages list when params is non-empty.
	Render(rctx Context, messages []notify.Message, rules Rules, params ...any) any
}

// AssetProvider is implemented by engines that need static script or style
// references. Declarations are collected into the registry's bundle at build
// time for consumption by an external asset pipeline.
type AssetProvider interface {
	Assets() Assets
}

// Assets declares an engine's static asset references.
type Assets struct {
	Scripts []string
	Styles  []string
}

// Rules is the set of flag tokens popped off a render call, mapped by name.
type Rules map[string]bool

// RuleNoAssets suppresses inline script/style emission for engines that
// normally include their own asset tags.
const RuleNoAssets = "no-assets"

// Has reports whether the named flag was supplied.
func (r Rules) Has(name string) bool {
	return r[name]
}

// Context is the request surface handed to an engine's Render. It embeds the
// request's context and exposes the HTTP pair for engines that emit output
// through the response.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext creates a render Context from an HTTP request/response pair.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// context.Context methods delegate to the request's context.
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
