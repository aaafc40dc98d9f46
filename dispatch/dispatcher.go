package dispatch

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/notifykit/engine"
	"github.com/dmitrymomot/notifykit/flash"
	"github.com/dmitrymomot/notifykit/notify"
)

// Hook observes every named-engine render attempt. It receives the request
// context and the merged message list before any engine runs, whether or not
// the list is empty and whether or not an engine call follows. Hooks do not
// fire for the asset-only path.
type Hook func(rctx engine.Context, messages []notify.Message)

// Dispatcher merges carried-over and in-request messages and hands them to a
// named engine. It holds only startup-immutable state and is safe for
// concurrent use.
type Dispatcher struct {
	registry *engine.Registry
	store    flash.Store
	log      *slog.Logger
	hooks    []Hook
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithStore sets the flash store carried batches are drained from. Without a
// store only same-request messages render.
func WithStore(store flash.Store) Option {
	return func(d *Dispatcher) {
		d.store = store
	}
}

// WithLogger sets the logger for non-fatal render errors.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithHook registers a render observer. Hooks run in registration order.
func WithHook(h Hook) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.hooks = append(d.hooks, h)
		}
	}
}

// New creates a dispatcher over a built registry. A nil registry is a wiring
// bug and panics immediately rather than at first render.
func New(registry *engine.Registry, opts ...Option) *Dispatcher {
	if registry == nil {
		panic("dispatch: registry is required")
	}

	d := &Dispatcher{
		registry: registry,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Assets returns the registry's combined asset bundle. This is the
// asset-pipeline integration path: no messages are consumed, no hooks fire.
func (d *Dispatcher) Assets() *engine.Bundle {
	return d.registry.Bundle()
}

// Render drains carried-over and in-request messages and hands them to the
// named engine, returning its output verbatim.
//
// Trailing string params prefixed with "-" are popped off as rule flags
// (e.g. "-no-assets"); the remaining params pass through to the engine
// unchanged. An empty merged list with no params short-circuits to nil
// without touching any engine. An unknown engine name logs one error and
// returns nil: a misconfigured template must not crash the response.
func (d *Dispatcher) Render(w http.ResponseWriter, r *http.Request, name string, params ...any) any {
	rctx := engine.NewContext(w, r)
	messages := d.collect(w, r)

	for _, h := range d.hooks {
		h(rctx, messages)
	}

	if len(messages) == 0 && len(params) == 0 {
		return nil
	}

	rules, rest := popFlags(params)

	eng, ok := d.registry.Get(name)
	if !ok {
		d.log.ErrorContext(r.Context(), "unknown notification engine",
			slog.String("engine", name),
		)
		return nil
	}

	return eng.Render(rctx, messages, rules, rest...)
}

// collect merges the carried batch with the request queue: carried first,
// then in-request, FIFO within each batch. Both sources are consumed.
//
// The carried batch crossed the persisted channel, so each message's type is
// re-validated and silent-dropped on failure - the session fragment is
// treated as untrusted even though this system wrote it.
func (d *Dispatcher) collect(w http.ResponseWriter, r *http.Request) []notify.Message {
	var messages []notify.Message

	carried, err := flash.TakeOnce(w, r, d.store)
	if err == nil {
		for _, m := range carried {
			if notify.ValidType(m.Type) {
				messages = append(messages, m)
			}
		}
	}

	if q, ok := notify.QueueFromContext(r.Context()); ok {
		messages = append(messages, q.Drain()...)
	}

	return messages
}
