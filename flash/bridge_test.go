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

func queuedRequest(msgs ...notify.Message) (*http.Request, *notify.Queue) {
	q := notify.NewQueue()
	for _, m := range msgs {
		q.Push(m)
	}
	r := httptest.NewRequest("GET", "/", nil)
	return r.WithContext(notify.WithQueue(r.Context(), q)), q
}

func TestMigrate_RedirectWithMessages(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)
	r, q := queuedRequest(notify.NewMessage("warning", "x"))

	flash.Migrate(httptest.NewRecorder(), r, http.StatusFound, store, nil)

	assert.Equal(t, 0, q.Len(), "queue is cleared by migration")
	require.Equal(t, 1, store.Len())

	got, err := store.Take(r.Context(), nil, r)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "warning", got[0].Type)
}

func TestMigrate_StatusClasses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		status   int
		migrated bool
	}{
		{name: "200 ok", status: http.StatusOK, migrated: false},
		{name: "201 created", status: http.StatusCreated, migrated: false},
		{name: "301 moved", status: http.StatusMovedPermanently, migrated: true},
		{name: "302 found", status: http.StatusFound, migrated: true},
		{name: "303 see other", status: http.StatusSeeOther, migrated: true},
		{name: "307 temporary", status: http.StatusTemporaryRedirect, migrated: true},
		{name: "404 not found", status: http.StatusNotFound, migrated: false},
		{name: "500 server error", status: http.StatusInternalServerError, migrated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := flash.NewMemoryStore(nil)
			r, q := queuedRequest(notify.NewMessage("info", "x"))

			flash.Migrate(httptest.NewRecorder(), r, tt.status, store, nil)

			if tt.migrated {
				assert.Equal(t, 1, store.Len())
				assert.Equal(t, 0, q.Len())
			} else {
				assert.Equal(t, 0, store.Len())
				assert.Equal(t, 1, q.Len(), "non-redirect leaves the queue for same-request render")
			}
		})
	}
}

func TestMigrate_EmptyQueueWritesNothing(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)
	r, _ := queuedRequest()

	flash.Migrate(httptest.NewRecorder(), r, http.StatusFound, store, nil)
	assert.Equal(t, 0, store.Len())
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)
	r, _ := queuedRequest(notify.NewMessage("info", "x"))
	w := httptest.NewRecorder()

	flash.Migrate(w, r, http.StatusFound, store, nil)
	require.Equal(t, 1, store.Len())

	// Consume, then evaluate the status a second time: the queue is already
	// drained, so nothing is rewritten.
	_, err := store.Take(r.Context(), nil, r)
	require.NoError(t, err)
	flash.Migrate(w, r, http.StatusFound, store, nil)
	assert.Equal(t, 0, store.Len())
}

func TestMigrate_NoQueueInContext(t *testing.T) {
	t.Parallel()

	store := flash.NewMemoryStore(nil)
	r := httptest.NewRequest("GET", "/", nil)

	assert.NotPanics(t, func() {
		flash.Migrate(httptest.NewRecorder(), r, http.StatusFound, store, nil)
	})
	assert.Equal(t, 0, store.Len())
}

func TestMigrate_StoreFailureDropsSilently(t *testing.T) {
	t.Parallel()

	// A store keyed by a missing session cookie fails on Put.
	store := flash.NewMemoryStore(flash.CookieToken("sid"))
	r, q := queuedRequest(notify.NewMessage("info", "x"))

	assert.NotPanics(t, func() {
		flash.Migrate(httptest.NewRecorder(), r, http.StatusFound, store, nil)
	})
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, q.Len(), "batch is dropped, not retried")
}
