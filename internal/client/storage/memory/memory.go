package memory

import (
	"context"
	"sync"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage"
	"github.com/goccy/go-json"
)

// Backend keeps encoded records in process memory. SetFailure makes every
// subsequent call fail, which stands in for a storage that cannot be opened.
type Backend struct {
	mu      sync.Mutex
	records map[string][]byte
	fail    error
}

func New() *Backend {
	return &Backend{records: make(map[string][]byte)}
}

func (b *Backend) SetFailure(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = err
}

func (b *Backend) Get(_ context.Context, store, key string, dst any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fail != nil {
		return b.fail
	}

	val, ok := b.records[store+"/"+key]
	if !ok {
		return storage.ErrNotFound
	}
	return json.Unmarshal(val, dst)
}

func (b *Backend) Put(_ context.Context, store, key string, val any) error {
	payload, err := json.Marshal(val)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fail != nil {
		return b.fail
	}
	b.records[store+"/"+key] = payload
	return nil
}

func (b *Backend) Delete(_ context.Context, store, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fail != nil {
		return b.fail
	}
	delete(b.records, store+"/"+key)
	return nil
}
