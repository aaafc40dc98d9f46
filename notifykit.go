package notifykit

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/notifykit/dispatch"
	"github.com/dmitrymomot/notifykit/engine"
	"github.com/dmitrymomot/notifykit/flash"
	"github.com/dmitrymomot/notifykit/notify"
)

// Core types re-exported for convenience.
type (
	Message    = notify.Message
	Queue      = notify.Queue
	Engine     = engine.Engine
	Rules      = engine.Rules
	Assets     = engine.Assets
	Config     = engine.Config
	Registry   = engine.Registry
	Bundle     = engine.Bundle
	Store      = flash.Store
	Dispatcher = dispatch.Dispatcher
	Hook       = dispatch.Hook
)

// Notify queues a typed message for the current request. See notify.Notify.
func Notify(ctx context.Context, typ string, args ...any) {
	notify.Notify(ctx, typ, args...)
}

// Info queues an informational message.
func Info(ctx context.Context, text string) { notify.Info(ctx, text) }

// Success queues a success message.
func Success(ctx context.Context, text string) { notify.Success(ctx, text) }

// Warning queues a warning message.
func Warning(ctx context.Context, text string) { notify.Warning(ctx, text) }

// Error queues an error message.
func Error(ctx context.Context, text string) { notify.Error(ctx, text) }

// Debug queues a debug message, kept only in development environments.
func Debug(ctx context.Context, text string) { notify.Debug(ctx, text) }

// NewRegistry creates an engine registry pre-loaded with the built-in
// engines. See engine.NewRegistry.
func NewRegistry() *engine.Registry {
	return engine.NewRegistry()
}

// NewDispatcher creates a render dispatcher over a built registry. See
// dispatch.New.
func NewDispatcher(registry *engine.Registry, opts ...dispatch.Option) *dispatch.Dispatcher {
	return dispatch.New(registry, opts...)
}

// Middleware installs the notification queue and the redirect-time flash
// migration. See flash.Middleware.
func Middleware(store flash.Store, opts ...flash.MiddlewareOption) func(http.Handler) http.Handler {
	return flash.Middleware(store, opts...)
}
