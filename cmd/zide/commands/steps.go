package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zide/internal/printer"
	"github.com/slok/zide/internal/steps/zigcli"
)

type StepsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectDir string
	format     string
}

// NewStepsCommand returns the steps command.
func NewStepsCommand(rootCmd *RootCommand, app *kingpin.Application) *StepsCommand {
	c := &StepsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("steps", "List the build steps a Zig project declares.")
	c.Cmd.Arg("project-dir", "Directory of the Zig project.").Required().StringVar(&c.projectDir)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c StepsCommand) Name() string { return c.Cmd.FullCommand() }

func (c StepsCommand) Run(ctx context.Context) error {
	lister, err := zigcli.NewLister(zigcli.ListerConfig{
		ProjectDir: c.projectDir,
		ZigBinary:  c.rootCmd.resolveZigBinary(ctx),
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create lister: %w", err)
	}

	stepList, err := lister.ListSteps(ctx)
	if err != nil {
		return fmt.Errorf("could not list steps: %w", err)
	}

	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if len(stepList) == 0 && c.format != "json" {
		return p.PrintMessage("No steps found.")
	}

	return p.PrintSteps(stepList)
}
