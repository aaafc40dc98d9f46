// Package flash carries queued notifications across exactly one redirect hop.
//
// When a handler queues messages and then responds with a 3xx status, the
// in-request queue would be lost: the page the user actually sees is the
// redirect target, served by the next request. The flash bridge closes that
// gap by migrating the queue into a single persisted slot at
// response-finalization time and handing it back - exactly once - to the next
// request's render.
//
// # Stores
//
// Three Store implementations are provided:
//
//   - CookieStore: encrypted (AES-GCM) client-side cookie under the reserved
//     SlotKey. The default; requires no server-side state.
//   - RedisStore: server-side slot keyed by a session token, only the token
//     travels to the client.
//   - MemoryStore: process-local, for tests and development.
//
// # Usage
//
//	store, err := flash.NewCookieStore([]string{os.Getenv("NOTIFY_COOKIE_SECRETS")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := chi.NewRouter()
//	mux.Use(flash.Middleware(store, flash.WithEnvironment("production")))
//
// # Delivery Contract
//
// Delivery is best-effort. A failing store drops the batch silently (logged
// at debug level); two concurrent requests for one session resolve
// last-write-wins. Messages survive one redirect, nothing more.
package flash
