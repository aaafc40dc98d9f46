package flash

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/notifykit/notify"
)

// Migrate moves the request queue into the store when the final response
// status belongs to the 3xx class. It is the redirect-time half of the flash
// contract:
//
//   - non-3xx status or empty queue: nothing happens, no empty batch is ever
//     written;
//   - 3xx with queued messages: the queue is drained into the store,
//     replacing any prior unconsumed batch.
//
// Draining first makes Migrate idempotent within a request - a second call
// finds the queue already empty. Store failures are best-effort by contract:
// the batch is dropped and the failure logged at debug level.
func Migrate(w http.ResponseWriter, r *http.Request, status int, store Store, log *slog.Logger) {
	if status < http.StatusMultipleChoices || status >= http.StatusBadRequest || store == nil {
		return
	}

	q, ok := notify.QueueFromContext(r.Context())
	if !ok || q.Len() == 0 {
		return
	}

	batch := q.Drain()
	if err := store.Put(r.Context(), w, r, batch); err != nil && log != nil {
		log.DebugContext(r.Context(), "flash migration failed, dropping batch",
			slog.String("error", err.Error()),
			slog.Int("messages", len(batch)),
		)
	}
}
