package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/zide/internal/log"
)

// WriterConfig is the configuration for the memory writer.
type WriterConfig struct {
	Logger log.Logger
}

func (c *WriterConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Writer is an in-memory implementation of storage.DocumentWriter. Useful
// for tests and dry runs where nothing should touch the disk.
type Writer struct {
	documents map[string][]byte
	order     []string
	mu        sync.RWMutex
	logger    log.Logger
}

// NewWriter creates a new memory document writer.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Writer{
		documents: map[string][]byte{},
		logger:    cfg.Logger,
	}, nil
}

// WriteDocument stores the document content under its path.
func (w *Writer) WriteDocument(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.documents[path]; !ok {
		w.order = append(w.order, path)
	}
	w.documents[path] = append([]byte(nil), content...)

	return nil
}

// Document returns a stored document's content.
func (w *Writer) Document(path string) ([]byte, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	content, ok := w.documents[path]
	return content, ok
}

// Paths returns the stored document paths in write order.
func (w *Writer) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return append([]string(nil), w.order...)
}
