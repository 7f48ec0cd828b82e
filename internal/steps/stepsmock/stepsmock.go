// Package stepsmock contains mocks for the steps package.
package stepsmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slok/zide/internal/model"
)

// MockLister is a mock implementation of steps.Lister.
type MockLister struct {
	mock.Mock
}

// ListSteps satisfies steps.Lister.
func (m *MockLister) ListSteps(ctx context.Context) ([]model.Step, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Step)
	return s, args.Error(1)
}
