package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/oklog/ulid/v2"

	"github.com/slok/zide/internal/conventions"
	"github.com/slok/zide/internal/log"
	"github.com/slok/zide/internal/model"
	"github.com/slok/zide/internal/render"
	"github.com/slok/zide/internal/steps"
	"github.com/slok/zide/internal/storage"
)

// ServiceConfig is the configuration for the generate service.
type ServiceConfig struct {
	Lister steps.Lister
	Writer storage.DocumentWriter
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Lister == nil {
		return fmt.Errorf("lister is required")
	}
	if c.Writer == nil {
		return fmt.Errorf("writer is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Generate"})
	return nil
}

// Service handles the editor configuration generation business logic.
type Service struct {
	lister steps.Lister
	writer storage.DocumentWriter
	logger log.Logger
}

// NewService creates a new generate service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		lister: cfg.Lister,
		writer: cfg.Writer,
		logger: cfg.Logger,
	}, nil
}

// GenerateOptions are the options for a generation run.
type GenerateOptions struct {
	// ProjectName names the project in the launch configurations.
	ProjectName string
	// OutputDir is where the documents are written (created when absent).
	OutputDir string
	// Executables are explicit artifact names for the launch configurations.
	// When empty the run-category steps drive them.
	Executables []string
}

// GenerateResult is the outcome of a generation run.
type GenerateResult struct {
	Steps        []model.Step
	WrittenFiles []string
}

// Generate discovers the project steps and renders and writes the four
// editor configuration documents, strictly in sequence. A failed write
// aborts the run; documents already written stay on disk.
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	logger := s.logger.WithValues(log.Kv{"run": ulid.Make().String()})

	// 1. Discover steps.
	stepList, err := s.lister.ListSteps(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list steps: %w", err)
	}

	// 2. Assemble and validate the render input.
	pctx := model.ProjectContext{
		ProjectName: opts.ProjectName,
		Steps:       stepList,
		Executables: opts.Executables,
	}
	if err := pctx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project context: %w", err)
	}

	logger.Infof("Generating editor configuration for %q (%d steps)", pctx.ProjectName, len(pctx.Steps))

	// 3. Render and write every document.
	documents := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{conventions.ExtensionsFileName, render.Extensions},
		{conventions.TasksFileName, func() ([]byte, error) { return render.Tasks(pctx) }},
		{conventions.LaunchFileName, func() ([]byte, error) { return render.Launch(pctx) }},
		{conventions.SettingsFileName, render.Settings},
	}

	written := make([]string, 0, len(documents))
	for _, doc := range documents {
		content, err := doc.render()
		if err != nil {
			return nil, fmt.Errorf("could not render %s: %w", doc.name, err)
		}

		path := filepath.Join(opts.OutputDir, doc.name)
		if err := s.writer.WriteDocument(ctx, path, content); err != nil {
			return nil, fmt.Errorf("could not write %s: %w", doc.name, err)
		}

		written = append(written, path)
		logger.Debugf("Wrote %s", path)
	}

	return &GenerateResult{
		Steps:        stepList,
		WrittenFiles: written,
	}, nil
}
