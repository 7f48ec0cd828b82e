package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zide/internal/model"
	"github.com/slok/zide/internal/steps/zigcli"
)

type DoctorCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectDir string
}

// NewDoctorCommand returns the doctor command.
func NewDoctorCommand(rootCmd *RootCommand, app *kingpin.Application) *DoctorCommand {
	c := &DoctorCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("doctor", "Run preflight checks for the zig environment.")
	c.Cmd.Arg("project-dir", "Directory of the Zig project.").Default(".").StringVar(&c.projectDir)

	return c
}

func (c DoctorCommand) Name() string { return c.Cmd.FullCommand() }

func (c DoctorCommand) Run(ctx context.Context) error {
	out := c.rootCmd.Stdout

	lister, err := zigcli.NewLister(zigcli.ListerConfig{
		ProjectDir: c.projectDir,
		ZigBinary:  c.rootCmd.resolveZigBinary(ctx),
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create lister: %w", err)
	}

	results := lister.Check(ctx)

	fmt.Fprintf(out, "Checking zig environment...\n")
	for _, r := range results {
		icon := getStatusIcon(r.Status)
		fmt.Fprintf(out, "  %s %-14s %s\n", icon, r.ID, r.Message)
	}

	// Summary
	_, warnings, errs := model.CountByStatus(results)
	fmt.Fprintln(out)
	if errs == 0 && warnings == 0 {
		fmt.Fprintln(out, "All checks passed!")
	} else {
		fmt.Fprintf(out, "%d error(s), %d warning(s)\n", errs, warnings)
	}

	if errs > 0 {
		return fmt.Errorf("preflight checks failed with %d error(s)", errs)
	}

	return nil
}

func getStatusIcon(status model.CheckStatus) string {
	switch status {
	case model.CheckStatusOK:
		return "OK"
	case model.CheckStatusWarning:
		return "!!"
	case model.CheckStatusError:
		return "XX"
	default:
		return "??"
	}
}
