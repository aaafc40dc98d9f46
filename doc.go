// Package notifykit queues short-lived, typed notifications in web handlers
// and renders them through pluggable output engines.
//
// Notifications queued during a request survive exactly one redirect: at
// response-finalization time a 3xx status migrates the queue into a
// single-hop flash slot (encrypted cookie, redis, or in-memory), consumed by
// the next request's render. Delivery is best-effort: a lost session drops
// pending notifications silently.
//
// Key pieces:
//
//   - notify: the request-scoped queue and the Notify/Info/Success/Warning/
//     Error/Debug enqueue operations
//   - flash: the one-hop store implementations and the HTTP middleware
//   - engine: the render contract, the registry and the built-in engines
//     (html, json, humane, alertify, datastar)
//   - dispatch: the render-time dispatcher tying the three together
//
// Basic Usage:
//
//	store, err := flash.NewCookieStore([]string{secret})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	registry := engine.NewRegistry()
//	registry.MustBuild(engine.Config{"html": true, "json": true})
//	d := dispatch.New(registry, dispatch.WithStore(store))
//
//	mux := chi.NewRouter()
//	mux.Use(flash.Middleware(store))
//
//	mux.Post("/save", func(w http.ResponseWriter, r *http.Request) {
//		notifykit.Success(r.Context(), "Saved.")
//		http.Redirect(w, r, "/", http.StatusSeeOther)
//	})
//
//	mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		fragment := d.Render(w, r, "html")
//		// embed fragment in the page
//	})
//
// This root package re-exports the common surface so most applications only
// import notifykit plus the store constructor they need.
package notifykit
