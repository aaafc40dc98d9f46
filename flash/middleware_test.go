package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/flash"
	"github.com/dmitrymomot/notifykit/notify"
)

func TestMiddleware_InstallsQueue(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)
	var sawQueue bool

	h := flash.Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawQueue = notify.QueueFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.True(t, sawQueue)
}

func TestMiddleware_RedirectMigrates(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)

	h := flash.Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notify.Warning(r.Context(), "x")
		http.Redirect(w, r, "/next", http.StatusFound)
	}))

	r := httptest.NewRequest("POST", "/submit", nil)
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.Equal(t, 1, store.Len())
	got, err := store.Take(r.Context(), nil, r)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "warning", got[0].Type)
	assert.Equal(t, "x", got[0].Text())
}

func TestMiddleware_PlainResponseDoesNotMigrate(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)

	h := flash.Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notify.Info(r.Context(), "same-request render will pick this up")
		_, _ = w.Write([]byte("ok")) // implicit 200
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 0, store.Len())
}

func TestMiddleware_CookieStoreSetsHeaderBeforeRedirect(t *testing.T) {
	t.Parallel()

	store, err := flash.NewCookieStore([]string{testSecret})
	require.NoError(t, err)

	h := flash.Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notify.Success(r.Context(), "saved")
		http.Redirect(w, r, "/done", http.StatusSeeOther)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == flash.SlotKey && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "flash cookie must ride on the redirect response")
}

func TestMiddleware_EnvironmentGate(t *testing.T) {
	t.Parallel()

	t.Run("production drops debug", func(t *testing.T) {
		t.Parallel()
		var queued int
		h := flash.Middleware(flash.NewMemoryStore(nil), flash.WithEnvironment(notify.EnvProduction))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				notify.Debug(r.Context(), "secret")
				q, _ := notify.QueueFromContext(r.Context())
				queued = q.Len()
			}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, 0, queued)
	})

	t.Run("development keeps debug", func(t *testing.T) {
		t.Parallel()
		var queued int
		h := flash.Middleware(flash.NewMemoryStore(nil), flash.WithEnvironment(notify.EnvDevelopment))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				notify.Debug(r.Context(), "detail")
				q, _ := notify.QueueFromContext(r.Context())
				queued = q.Len()
			}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, 1, queued)
	})
}

func TestMiddleware_RedirectRoundTrip(t *testing.T) {
	t.Parallel()

	// Full post/redirect/get cycle against one store.
	store, err := flash.NewCookieStore([]string{testSecret})
	require.NoError(t, err)
	mw := flash.Middleware(store)

	// Request 1: queue and redirect.
	post := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notify.Warning(r.Context(), "x")
		http.Redirect(w, r, "/page", http.StatusFound)
	}))
	w1 := httptest.NewRecorder()
	post.ServeHTTP(w1, httptest.NewRequest("POST", "/submit", nil))

	// Request 2: the batch arrives exactly once, even for repeated takes
	// within the same request.
	var first, second []notify.Message
	get := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		batch, takeErr := flash.TakeOnce(w, r, store)
		if takeErr == nil {
			first = batch
		}
		batch, takeErr = flash.TakeOnce(w, r, store)
		if takeErr == nil {
			second = batch
		}
		w.WriteHeader(http.StatusOK)
	}))
	r2 := httptest.NewRequest("GET", "/page", nil)
	carryCookies(w1, r2)
	get.ServeHTTP(httptest.NewRecorder(), r2)

	require.Len(t, first, 1)
	assert.Equal(t, "warning", first[0].Type)
	assert.Equal(t, "x", first[0].Text())
	assert.Nil(t, second, "second take in the same request finds nothing new")
}
