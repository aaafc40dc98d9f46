// Package dispatch wires the notification queue, the flash store and the
// engine registry together at render time.
//
// A Dispatcher is created once at startup and shared across requests:
//
//	d := dispatch.New(registry,
//		dispatch.WithStore(store),
//		dispatch.WithLogger(log),
//		dispatch.WithHook(audit),
//	)
//
// In a handler or view layer:
//
//	fragment := d.Render(w, r, "html")                  // markup fragment
//	payload := d.Render(w, r, "json", map[string]any{}) // JSON injection
//	fragment = d.Render(w, r, "humane", "-no-assets")   // rule flag
//	bundle := d.Assets()                                // asset pipeline path
//
// Render consumes the carried-over batch (exactly once per request) and the
// in-request queue, carried messages first. Errors degrade silently: an
// unknown engine name is logged and yields nil, never a panic or a broken
// response.
package dispatch
