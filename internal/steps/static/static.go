// Package static implements step discovery over an in-memory step collection,
// used when the caller (e.g. Go tooling embedded in a build pipeline) already
// knows the step list and no subprocess is needed.
package static

import (
	"context"
	"fmt"

	"github.com/slok/zide/internal/log"
	"github.com/slok/zide/internal/model"
)

// Step is a named build step provided by the caller.
type Step struct {
	Name        string
	Description string
}

// ListerConfig is the configuration for the static lister.
type ListerConfig struct {
	// Steps are the known steps, in their native order.
	Steps  []Step
	Logger log.Logger
}

func (c *ListerConfig) defaults() error {
	for _, s := range c.Steps {
		if s.Name == "" {
			return fmt.Errorf("step name is required")
		}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "steps.Static"})
	return nil
}

// Lister is an in-memory implementation of steps.Lister.
type Lister struct {
	steps  []Step
	logger log.Logger
}

// NewLister creates a new static lister.
func NewLister(cfg ListerConfig) (*Lister, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Lister{
		steps:  cfg.Steps,
		logger: cfg.Logger,
	}, nil
}

// ListSteps returns the provided steps, in order, with derived categories.
func (l *Lister) ListSteps(ctx context.Context) ([]model.Step, error) {
	stepList := make([]model.Step, 0, len(l.steps))
	for _, s := range l.steps {
		stepList = append(stepList, model.NewStep(s.Name, s.Description))
	}

	return stepList, nil
}
