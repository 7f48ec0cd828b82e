package storage

import "context"

// DocumentWriter is the interface for persisting generated documents. It is
// the only collaborator the generation flow writes through.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, path string, content []byte) error
}
