package flash

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrymomot/notifykit/notify"
)

// MemoryStore keeps carried batches in process memory, keyed by TokenFunc.
// Intended for tests and single-process development servers; batches do not
// survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	batches map[string][]notify.Message
	token   TokenFunc
}

// NewMemoryStore creates an in-memory flash store. A nil token function keys
// every request into one shared slot, which is only sensible in tests.
func NewMemoryStore(token TokenFunc) *MemoryStore {
	if token == nil {
		token = StaticToken("local")
	}
	return &MemoryStore{
		batches: make(map[string][]notify.Message),
		token:   token,
	}
}

// Put stores a copy of the batch, replacing any prior batch in the slot.
func (m *MemoryStore) Put(_ context.Context, _ http.ResponseWriter, r *http.Request, batch []notify.Message) error {
	token, err := m.token(r)
	if err != nil {
		return err
	}

	cp := make([]notify.Message, len(batch))
	copy(cp, batch)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches[token] = cp
	return nil
}

// Take reads and clears the slot.
func (m *MemoryStore) Take(_ context.Context, _ http.ResponseWriter, r *http.Request) ([]notify.Message, error) {
	token, err := m.token(r)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	batch, ok := m.batches[token]
	if !ok {
		return nil, ErrBatchNotFound
	}
	delete(m.batches, token)
	return batch, nil
}

// Len reports how many slots currently hold a batch.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}
