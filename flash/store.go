package flash

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/notifykit/notify"
)

// SlotKey is the reserved key under which the carried batch is persisted.
// Applications must not use it for their own cookies or session values.
const SlotKey = "__notifykit_flash"

// Store persists one batch of messages across exactly one redirect hop.
//
// Put overwrites any prior unconsumed batch: at most one batch is outstanding
// per user slot. Take is read-and-clear - a second Take without an
// intervening Put returns ErrBatchNotFound.
//
// A race between two concurrent requests for the same slot is resolved
// last-write-wins; Take is not transactional with a concurrent Put. This is
// an accepted hazard of the single-hop contract.
type Store interface {
	Put(ctx context.Context, w http.ResponseWriter, r *http.Request, batch []notify.Message) error
	Take(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]notify.Message, error)
}

type takeGuardKey struct{}

// takeGuard marks carried-batch consumption within one request. The cookie
// store cannot clear the inbound request's cookie, so without this guard a
// second render in the same request would re-read the batch.
type takeGuard struct {
	taken bool
}

// WithTakeGuard arms the once-per-request consumption guard on the context.
// The middleware installs it; most callers never touch it directly.
func WithTakeGuard(ctx context.Context) context.Context {
	return context.WithValue(ctx, takeGuardKey{}, &takeGuard{})
}

// TakeOnce drains the carried batch at most once per request. After the first
// call every subsequent call in the same request reports ErrBatchNotFound,
// regardless of what the underlying store would return.
func TakeOnce(w http.ResponseWriter, r *http.Request, store Store) ([]notify.Message, error) {
	if store == nil {
		return nil, ErrBatchNotFound
	}

	guard, _ := r.Context().Value(takeGuardKey{}).(*takeGuard)
	if guard != nil {
		if guard.taken {
			return nil, ErrBatchNotFound
		}
		guard.taken = true
	}

	return store.Take(r.Context(), w, r)
}

// TokenFunc extracts the per-user slot token from a request. Server-side
// stores (redis, memory) use it to key the carried batch, typically by
// session cookie.
type TokenFunc func(r *http.Request) (string, error)

// CookieToken returns a TokenFunc that reads the named cookie's value,
// usually the application's session ID cookie.
func CookieToken(name string) TokenFunc {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", ErrNoToken
		}
		return c.Value, nil
	}
}

// StaticToken returns a TokenFunc that always yields the same token.
// Useful in tests and single-user tools.
func StaticToken(token string) TokenFunc {
	return func(*http.Request) (string, error) {
		if token == "" {
			return "", ErrNoToken
		}
		return token, nil
	}
}
