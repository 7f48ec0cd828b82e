package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slok/zide/internal/log"
	"github.com/slok/zide/internal/model"
)

// WriterConfig is the configuration for the filesystem document writer.
type WriterConfig struct {
	Logger log.Logger
}

func (c *WriterConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.FS"})
	return nil
}

// Writer is a filesystem implementation of storage.DocumentWriter.
type Writer struct {
	logger log.Logger
}

// NewWriter creates a new filesystem document writer.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Writer{logger: cfg.Logger}, nil
}

// WriteDocument writes a document, creating the parent directory when absent
// (a pre-existing directory is not an error). Failures carry the target path
// and wrap model.ErrWriteFailed.
func (w *Writer) WriteDocument(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create directory for %s: %s: %w", path, err, model.ErrWriteFailed)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %s: %w", path, err, model.ErrWriteFailed)
	}

	w.logger.Debugf("Wrote %s (%d bytes)", path, len(content))

	return nil
}
