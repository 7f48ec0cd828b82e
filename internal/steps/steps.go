package steps

import (
	"context"

	"github.com/slok/zide/internal/model"
)

// Lister is the interface for discovering a project's build steps. The two
// implementations (zig CLI output parsing and in-process step collections)
// must produce equivalent step records.
type Lister interface {
	ListSteps(ctx context.Context) ([]model.Step, error)
}
