package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zide/internal/app/generate"
	"github.com/slok/zide/internal/conventions"
	"github.com/slok/zide/internal/steps/zigcli"
	storagefs "github.com/slok/zide/internal/storage/fs"
	storageio "github.com/slok/zide/internal/storage/io"
)

type GenerateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectDir string
	outputDir  string
}

// NewGenerateCommand returns the generate command.
func NewGenerateCommand(rootCmd *RootCommand, app *kingpin.Application) *GenerateCommand {
	c := &GenerateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("generate", "Generate VS Code configuration files for a Zig project.")
	c.Cmd.Arg("project-dir", "Directory of the Zig project.").Required().StringVar(&c.projectDir)
	c.Cmd.Arg("output-dir", "Directory where the files are written (e.g. the project's .vscode).").Required().StringVar(&c.outputDir)

	return c
}

func (c GenerateCommand) Name() string { return c.Cmd.FullCommand() }

func (c GenerateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Project name defaults to the directory name, zide.yaml can override it
	// and provide explicit executable names for the launch configurations.
	absDir, err := filepath.Abs(c.projectDir)
	if err != nil {
		return fmt.Errorf("could not resolve project dir: %w", err)
	}
	projectName := filepath.Base(absDir)
	var executables []string

	repo := storageio.NewProjectYAMLRepository(os.DirFS(c.projectDir))
	projectCfg, err := repo.GetProjectConfig(ctx, conventions.ProjectConfigFileName)
	switch {
	case err == nil:
		projectName = projectCfg.Name
		executables = projectCfg.Executables
	case errors.Is(err, fs.ErrNotExist):
		// No zide.yaml, defaults apply.
	default:
		return fmt.Errorf("could not load %s: %w", conventions.ProjectConfigFileName, err)
	}

	// Initialize the step lister (zig CLI).
	lister, err := zigcli.NewLister(zigcli.ListerConfig{
		ProjectDir: c.projectDir,
		ZigBinary:  c.rootCmd.resolveZigBinary(ctx),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create lister: %w", err)
	}

	// Initialize the document writer (filesystem).
	writer, err := storagefs.NewWriter(storagefs.WriterConfig{
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create writer: %w", err)
	}

	// Create service.
	svc, err := generate.NewService(generate.ServiceConfig{
		Lister: lister,
		Writer: writer,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute generation.
	res, err := svc.Generate(ctx, generate.GenerateOptions{
		ProjectName: projectName,
		OutputDir:   c.outputDir,
		Executables: executables,
	})
	if err != nil {
		return fmt.Errorf("could not generate configuration: %w", err)
	}

	// Output success message.
	fmt.Fprintf(c.rootCmd.Stdout, "Generated VS Code configuration for %q (%d steps)\n", projectName, len(res.Steps))
	for _, f := range res.WrittenFiles {
		fmt.Fprintf(c.rootCmd.Stdout, "  %s\n", f)
	}

	return nil
}
