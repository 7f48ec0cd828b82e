package lib

import (
	"context"
	"fmt"

	"github.com/slok/zide/internal/app/generate"
	"github.com/slok/zide/internal/log"
	"github.com/slok/zide/internal/model"
	"github.com/slok/zide/internal/steps/static"
	storagefs "github.com/slok/zide/internal/storage/fs"
)

// Errors that can be inspected with errors.Is on any failure returned by
// Generate.
var (
	// ErrNotValid is returned on invalid configuration.
	ErrNotValid = model.ErrNotValid
	// ErrWriteFailed is returned when a document could not be written.
	ErrWriteFailed = model.ErrWriteFailed
)

// Step is a named build step known to the caller, in the shape the build
// graph exposes: a name and a free-text description (may be empty).
type Step struct {
	Name        string
	Description string
}

// Config configures a generation run.
type Config struct {
	// ProjectName names the project in the launch configurations. Required.
	ProjectName string

	// OutputDir is the directory the four files are written into, created
	// when absent. Required.
	OutputDir string

	// Steps are the build graph's registered steps, in registration order.
	// The order is preserved into the generated task list.
	Steps []Step

	// Executables are the artifact names for the debug launch
	// configurations. Default: the project name, as a best-effort
	// placeholder (see the package documentation).
	Executables []string

	// Logger receives structured log output. Default: noop (silent).
	// See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.ProjectName == "" {
		return fmt.Errorf("project name is required: %w", model.ErrNotValid)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output dir is required: %w", model.ErrNotValid)
	}

	if c.Executables == nil {
		c.Executables = []string{c.ProjectName}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Generate renders and writes the four VS Code configuration files
// (extensions.json, tasks.json, launch.json, settings.json) into
// Config.OutputDir from the provided steps.
func Generate(ctx context.Context, cfg Config) error {
	if err := cfg.defaults(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	stepsIn := make([]static.Step, 0, len(cfg.Steps))
	for _, s := range cfg.Steps {
		stepsIn = append(stepsIn, static.Step{Name: s.Name, Description: s.Description})
	}

	lister, err := static.NewLister(static.ListerConfig{
		Steps:  stepsIn,
		Logger: cfg.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create lister: %w", err)
	}

	writer, err := storagefs.NewWriter(storagefs.WriterConfig{
		Logger: cfg.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create writer: %w", err)
	}

	svc, err := generate.NewService(generate.ServiceConfig{
		Lister: lister,
		Writer: writer,
		Logger: cfg.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	_, err = svc.Generate(ctx, generate.GenerateOptions{
		ProjectName: cfg.ProjectName,
		OutputDir:   cfg.OutputDir,
		Executables: cfg.Executables,
	})
	if err != nil {
		return fmt.Errorf("could not generate configuration: %w", err)
	}

	return nil
}
