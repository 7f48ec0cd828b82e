// Package storagemock contains mocks for the storage package.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDocumentWriter is a mock implementation of storage.DocumentWriter.
type MockDocumentWriter struct {
	mock.Mock
}

// WriteDocument satisfies storage.DocumentWriter.
func (m *MockDocumentWriter) WriteDocument(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}
