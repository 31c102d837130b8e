package engine

import (
	"context"
	"sync"

	"github.com/mstgnz/sqlengine/dml"
)

// Handle serializes every command against a single shared Frontend.
// Unlike db.ConnectionManager's RWMutex (which legitimately allows
// concurrent readers), every Frontend call here is write-shaped, so a
// plain Mutex is the right tool: Lock and a deferred Unlock bracket the
// storage call with no suspension points inside the critical section.
type Handle struct {
	mu       sync.Mutex
	frontend Frontend
}

// NewHandle wraps a Frontend in a scoped exclusive handle.
func NewHandle(f Frontend) *Handle {
	return &Handle{frontend: f}
}

// CreateSchema acquires the handle, calls the frontend, and releases on
// every exit path.
func (h *Handle) CreateSchema(ctx context.Context, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frontend.CreateSchema(ctx, name)
}

func (h *Handle) DropSchema(ctx context.Context, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frontend.DropSchema(ctx, name)
}

func (h *Handle) UpdateAll(ctx context.Context, schema, table string, pairs []dml.Pair) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frontend.UpdateAll(ctx, schema, table, pairs)
}
